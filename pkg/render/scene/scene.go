package scene

import (
	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
)

// Panel geometry, anchored to the bottom-left corner of the canvas.
const (
	PanelWidth  = 300.0
	PanelHeight = 80.0
	PanelMargin = 20.0
)

// Scene is a frame resolved into drawable primitives. Sinks draw scenes;
// they never look at the engine frame directly.
type Scene struct {
	Width, Height float64
	Nodes         []styles.Node
	Edges         []styles.Edge
	Panel         *styles.Panel
}

// Build resolves colors, neighbor lists, edge endpoints and panel placement
// for f. Edges are ordered so highlighted ones are drawn last.
func Build(f engine.Frame) Scene {
	s := Scene{Width: f.Width, Height: f.Height}

	neighbors := make(map[int][]int, len(f.Nodes))
	for _, e := range f.Edges {
		neighbors[e.From] = append(neighbors[e.From], e.To)
		neighbors[e.To] = append(neighbors[e.To], e.From)
	}

	s.Nodes = make([]styles.Node, len(f.Nodes))
	for i, n := range f.Nodes {
		r := n.Radius
		if n.ConnectedToHovered {
			r *= 1.1
		}
		s.Nodes[i] = styles.Node{
			ID:        n.ID,
			Name:      n.Name,
			Color:     styles.FillColor(n.Color),
			X:         n.X,
			Y:         n.Y,
			R:         r,
			Level:     n.Level,
			Hovered:   n.Hovered,
			Connected: n.ConnectedToHovered,
			Neighbors: neighbors[n.ID],
		}
	}

	var dim, lit []styles.Edge
	for _, e := range f.Edges {
		if e.From >= len(s.Nodes) || e.To >= len(s.Nodes) {
			continue
		}
		a, b := s.Nodes[e.From], s.Nodes[e.To]
		color := a.Color
		if e.Highlighted && f.Hovered != nil && *f.Hovered == e.To {
			color = b.Color
		}
		se := styles.Edge{
			From: e.From, To: e.To,
			X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
			Color:       color,
			Highlighted: e.Highlighted,
		}
		if e.Highlighted {
			lit = append(lit, se)
		} else {
			dim = append(dim, se)
		}
	}
	s.Edges = append(dim, lit...)

	if d := f.Detail; d != nil {
		s.Panel = &styles.Panel{
			X:           PanelMargin,
			Y:           f.Height - PanelHeight - PanelMargin,
			W:           PanelWidth,
			H:           PanelHeight,
			Name:        d.Name,
			Category:    d.Category,
			Level:       d.Level,
			Description: d.Description,
			Color:       styles.FillColor(d.Color),
		}
	}
	return s
}

// DrawOrder returns node indices with the hovered node last, so it is
// painted on top of anything it overlaps.
func (s Scene) DrawOrder() []int {
	order := make([]int, 0, len(s.Nodes))
	hovered := -1
	for i, n := range s.Nodes {
		if n.Hovered {
			hovered = i
			continue
		}
		order = append(order, i)
	}
	if hovered >= 0 {
		order = append(order, hovered)
	}
	return order
}
