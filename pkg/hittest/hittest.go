package hittest

import (
	"github.com/dav88dev/skillorbit/pkg/layout"
)

// Radius model, in pixels.
const (
	BaseRadius       = 8.0
	LevelRadius      = 25.0 // added at level 100
	HoverScale       = 1.3
	ConnectedScale   = 1.1
	DefaultTolerance = 10.0
)

// VisualRadius returns the drawn radius of a node at the given level.
// Hovered nodes are enlarged by HoverScale.
func VisualRadius(level int, hovered bool) float64 {
	r := BaseRadius + float64(level)/100*LevelRadius
	if hovered {
		r *= HoverScale
	}
	return r
}

// DrawRadius is VisualRadius with the smaller enlargement renderers apply
// to neighbors of the hovered node.
func DrawRadius(level int, hovered, connected bool) float64 {
	switch {
	case hovered:
		return VisualRadius(level, true)
	case connected:
		return VisualRadius(level, false) * ConnectedScale
	}
	return VisualRadius(level, false)
}

// Positions supplies where each node is currently displayed.
// *anim.Controller satisfies it.
type Positions interface {
	Len() int
	Display(i int) (layout.Point, bool)
}

// Graph supplies levels and adjacency. *skills.Registry satisfies it
// through the adapter built by [FromRegistry].
type Graph interface {
	Level(i int) int
	IsConnected(a, b int) bool
}

// Option configures a Tester.
type Option func(*Tester)

// WithTolerance sets the extra pick distance around each node.
// Negative values are treated as zero.
func WithTolerance(tol float64) Option {
	return func(t *Tester) {
		if tol < 0 {
			tol = 0
		}
		t.tolerance = tol
	}
}

// Tester resolves pointer coordinates to nodes and tracks the hovered one.
// It is not safe for concurrent use.
type Tester struct {
	graph     Graph
	positions Positions
	tolerance float64
	hovered   int
}

// New returns a Tester with nothing hovered.
func New(g Graph, p Positions, opts ...Option) *Tester {
	t := &Tester{
		graph:     g,
		positions: p,
		tolerance: DefaultTolerance,
		hovered:   -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tolerance returns the pick tolerance in pixels.
func (t *Tester) Tolerance() float64 { return t.tolerance }

// Find returns the first node, in registration order, whose display
// position lies within its visual radius plus the tolerance. The hovered
// node is tested at its enlarged radius. Find does not change hover state.
func (t *Tester) Find(x, y float64) (int, bool) {
	ptr := layout.Point{X: x, Y: y}
	for i := 0; i < t.positions.Len(); i++ {
		p, ok := t.positions.Display(i)
		if !ok {
			return -1, false
		}
		if ptr.Dist(p) <= VisualRadius(t.graph.Level(i), t.IsHovered(i))+t.tolerance {
			return i, true
		}
	}
	return -1, false
}

// HitTest is Find that also records the result as the hovered node.
// A miss clears the hover.
func (t *Tester) HitTest(x, y float64) (int, bool) {
	i, ok := t.Find(x, y)
	t.hovered = i
	return i, ok
}

// ClearHover forgets the hovered node.
func (t *Tester) ClearHover() { t.hovered = -1 }

// Hovered returns the hovered node index.
func (t *Tester) Hovered() (int, bool) {
	return t.hovered, t.hovered >= 0
}

// IsHovered reports whether node i is the hovered node.
func (t *Tester) IsHovered(i int) bool {
	return t.hovered >= 0 && i == t.hovered
}

// IsConnectedToHovered reports whether node i is adjacent to the hovered
// node. The hovered node itself is not connected to itself.
func (t *Tester) IsConnectedToHovered(i int) bool {
	if t.hovered < 0 || i == t.hovered {
		return false
	}
	return t.graph.IsConnected(t.hovered, i)
}
