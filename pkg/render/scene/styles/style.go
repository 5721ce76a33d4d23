package styles

import (
	"bytes"
	"strings"

	"github.com/dav88dev/skillorbit/pkg/errors"
)

// Style defines the visual appearance of a scene.
// Implementations control how nodes, edges, labels and the detail panel
// are drawn.
type Style interface {
	// Name is the identifier used on the command line.
	Name() string
	// Background returns the canvas fill color.
	Background() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderEdge writes the SVG for a connection line.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderNode writes the SVG for a skill circle.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderLabel writes the SVG for a skill's name.
	RenderLabel(buf *bytes.Buffer, n Node)
	// RenderPanel writes the SVG for the hover detail panel.
	RenderPanel(buf *bytes.Buffer, p Panel)
}

// Node contains all data needed to render a single skill. Color is
// already defaulted; Connected marks neighbors of the hovered node.
type Node struct {
	ID        int
	Name      string
	Color     string
	X, Y, R   float64
	Level     int
	Hovered   bool
	Connected bool
	Neighbors []int
}

// Edge contains positioning data for a connection line.
type Edge struct {
	From, To       int
	X1, Y1, X2, Y2 float64
	Color          string
	Highlighted    bool
}

// Panel holds the hover detail panel content and placement.
type Panel struct {
	X, Y, W, H  float64
	Name        string
	Category    string
	Level       int
	Description string
	Color       string
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple":
		return Simple{}, nil
	case "glow":
		return Glow{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want simple or glow)", name)
}

// Names lists the available styles.
func Names() []string { return []string{"simple", "glow"} }
