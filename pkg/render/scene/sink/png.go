package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/dav88dev/skillorbit/pkg/render/scene"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style    styles.Style
	scale    float64
	fontFile string
}

// WithPNGStyle sets the style whose background and label contrast are used.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) {
		if s != nil {
			r.style = s
		}
	}
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithFontFile loads a TrueType font for labels. Without one, the PNG
// carries shapes only.
func WithFontFile(path string) PNGOption {
	return func(r *pngRenderer) { r.fontFile = path }
}

// RenderPNG rasterizes the scene in-process with gogpu/gg.
func RenderPNG(s scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Simple{}, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Ceil(math.Max(1, s.Width) * r.scale))
	h := int(math.Ceil(math.Max(1, s.Height) * r.scale))
	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(r.style.Background()))
	dc.Scale(r.scale, r.scale)

	if err := drawEdges(dc, s.Edges); err != nil {
		return nil, err
	}
	order := s.DrawOrder()
	if err := drawNodes(dc, s.Nodes, order); err != nil {
		return nil, err
	}
	if s.Panel != nil {
		if err := drawPanel(dc, *s.Panel); err != nil {
			return nil, err
		}
	}
	if r.fontFile != "" {
		if err := drawLabels(dc, s, order, r.fontFile); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawEdges(dc *gg.Context, edges []styles.Edge) error {
	for _, e := range edges {
		c := gg.Hex(e.Color)
		width := 1.0
		if e.Highlighted {
			width = 3
		} else {
			c.A = 0.35
		}
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.SetLineWidth(width)
		dc.MoveTo(e.X1, e.Y1)
		dc.LineTo(e.X2, e.Y2)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke edge %d-%d: %w", e.From, e.To, err)
		}
	}
	return nil
}

func drawNodes(dc *gg.Context, nodes []styles.Node, order []int) error {
	for _, i := range order {
		n := nodes[i]

		dc.SetRGBA(0, 0, 0, 0.1)
		dc.DrawCircle(n.X+3, n.Y+3, n.R)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill shadow %d: %w", n.ID, err)
		}

		dc.SetHexColor(n.Color)
		dc.DrawCircle(n.X, n.Y, n.R)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill node %d: %w", n.ID, err)
		}

		border := 2.0
		if n.Hovered {
			border = 4
		}
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(border)
		dc.DrawCircle(n.X, n.Y, n.R)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke node %d: %w", n.ID, err)
		}
	}
	return nil
}

func drawPanel(dc *gg.Context, p styles.Panel) error {
	dc.SetRGBA(1, 1, 1, 0.95)
	dc.DrawRectangle(p.X, p.Y, p.W, p.H)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill panel: %w", err)
	}
	dc.SetHexColor(p.Color)
	dc.SetLineWidth(2)
	dc.DrawRectangle(p.X, p.Y, p.W, p.H)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke panel: %w", err)
	}
	return nil
}

func drawLabels(dc *gg.Context, s scene.Scene, order []int, fontFile string) error {
	src, err := text.NewFontSourceFromFile(fontFile)
	if err != nil {
		return fmt.Errorf("load font %s: %w", fontFile, err)
	}

	for _, i := range order {
		n := s.Nodes[i]
		dc.SetFont(src.Face(styles.FontSize(n)))
		dc.SetHexColor(styles.LabelColor(n.Color))
		dc.DrawStringAnchored(n.Name, n.X, n.Y, 0.5, 0.5)
	}

	if p := s.Panel; p != nil {
		dc.SetFont(src.Face(16))
		dc.SetHexColor(p.Color)
		dc.DrawString(p.Name, p.X+10, p.Y+20)
		dc.SetFont(src.Face(12))
		dc.SetHexColor("#666666")
		dc.DrawString(fmt.Sprintf("Level %d", p.Level), p.X+10, p.Y+40)
		if p.Description != "" {
			dc.DrawString(p.Description, p.X+10, p.Y+60)
		}
	}
	return nil
}
