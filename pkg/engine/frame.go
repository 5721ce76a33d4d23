package engine

import (
	"github.com/dav88dev/skillorbit/pkg/hittest"
	"github.com/dav88dev/skillorbit/pkg/layout"
)

// Frame is a render-ready snapshot of the engine. It shares no memory
// with the engine, so it may be handed to another goroutine.
type Frame struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Mode    layout.Mode `json:"mode"`
	Elapsed float64     `json:"elapsed"`
	Nodes   []NodeState `json:"nodes"`
	Edges   []EdgeState `json:"edges"`
	Hovered *int        `json:"hovered,omitempty"`
	Detail  *Detail     `json:"detail,omitempty"`
}

// NodeState is one skill as it should be drawn.
type NodeState struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category,omitempty"`
	Color              string  `json:"color,omitempty"`
	Level              int     `json:"level"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	Radius             float64 `json:"radius"`
	Hovered            bool    `json:"hovered,omitempty"`
	ConnectedToHovered bool    `json:"connected,omitempty"`
}

// EdgeState is a resolved connection. Highlighted edges touch the
// hovered node.
type EdgeState struct {
	From        int  `json:"from"`
	To          int  `json:"to"`
	Highlighted bool `json:"highlighted,omitempty"`
}

// Frame snapshots the current state. Before the engine is Ready the frame
// carries the canvas and mode but no nodes.
func (e *Engine) Frame() Frame {
	c := e.ctrl.Canvas()
	f := Frame{
		Width:   c.Width,
		Height:  c.Height,
		Mode:    e.ctrl.Mode(),
		Elapsed: e.ctrl.Elapsed(),
	}

	positions := e.ctrl.Positions()
	if positions == nil {
		return f
	}

	hovered, hasHover := e.hit.Hovered()
	f.Nodes = make([]NodeState, len(positions))
	for i, s := range e.reg.All() {
		isHovered := e.hit.IsHovered(i)
		f.Nodes[i] = NodeState{
			ID:                 s.ID,
			Name:               s.Name,
			Category:           s.Category,
			Color:              s.Color,
			Level:              s.Level,
			X:                  positions[i].X,
			Y:                  positions[i].Y,
			Radius:             hittest.VisualRadius(s.Level, isHovered),
			Hovered:            isHovered,
			ConnectedToHovered: e.hit.IsConnectedToHovered(i),
		}
	}

	edges := e.reg.Edges()
	f.Edges = make([]EdgeState, len(edges))
	for i, ed := range edges {
		f.Edges[i] = EdgeState{
			From:        ed.A,
			To:          ed.B,
			Highlighted: hasHover && (ed.A == hovered || ed.B == hovered),
		}
	}

	if hasHover {
		h := hovered
		f.Hovered = &h
		if d, ok := e.Detail(); ok {
			f.Detail = &d
		}
	}
	return f
}
