package styles

import (
	"bytes"
	"fmt"
)

// Simple draws flat circles with a white border and a drop shadow.
type Simple struct{}

func (Simple) Name() string       { return "simple" }
func (Simple) Background() string { return "#f8fafc" }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderEdge(buf *bytes.Buffer, e Edge) {
	stroke, width, opacity := "#cbd5e1", 1.0, 0.6
	if e.Highlighted {
		stroke, width, opacity = e.Color, 3, 1
	}
	fmt.Fprintf(buf, `  <line class="edge" data-from="%d" data-to="%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"/>`+"\n",
		e.From, e.To, e.X1, e.Y1, e.X2, e.Y2, EscapeXML(stroke), width, opacity)
}

func (Simple) RenderNode(buf *bytes.Buffer, n Node) {
	border := 2.0
	if n.Hovered {
		border = 4
	}
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="rgba(0,0,0,0.1)"/>`+"\n", n.X+3, n.Y+3, n.R)
	fmt.Fprintf(buf, `  <circle id="skill-%d" class="skill%s" data-neighbors="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="white" stroke-width="%.1f"/>`+"\n",
		n.ID, nodeClass(n), neighborList(n.Neighbors), n.X, n.Y, n.R, EscapeXML(n.Color), border)
}

func (Simple) RenderLabel(buf *bytes.Buffer, n Node) {
	weight := "normal"
	if n.Hovered {
		weight = "bold"
	}
	fmt.Fprintf(buf, `  <text class="skill-label" data-skill="%d" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="Arial, sans-serif" font-size="%.0f" font-weight="%s" fill="%s">%s</text>`+"\n",
		n.ID, n.X, n.Y, FontSize(n), weight, LabelColor(n.Color), EscapeXML(n.Name))
}

func (Simple) RenderPanel(buf *bytes.Buffer, p Panel) {
	fmt.Fprintf(buf, `  <g class="detail-panel">`+"\n")
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="rgba(255,255,255,0.95)" stroke="%s" stroke-width="2"/>`+"\n",
		p.X, p.Y, p.W, p.H, EscapeXML(p.Color))
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Arial, sans-serif" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
		p.X+10, p.Y+20, EscapeXML(p.Color), EscapeXML(p.Name))
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Arial, sans-serif" font-size="12" fill="#666">%s</text>`+"\n",
		p.X+10, p.Y+40, EscapeXML(panelSubtitle(p)))
	if p.Description != "" {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Arial, sans-serif" font-size="12" fill="#666">%s</text>`+"\n",
			p.X+10, p.Y+60, EscapeXML(p.Description))
	}
	buf.WriteString("  </g>\n")
}

func nodeClass(n Node) string {
	switch {
	case n.Hovered:
		return " hovered"
	case n.Connected:
		return " connected"
	}
	return ""
}

func neighborList(ids []int) string {
	var b bytes.Buffer
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	return b.String()
}

func panelSubtitle(p Panel) string {
	if p.Category == "" {
		return fmt.Sprintf("Level %d", p.Level)
	}
	return fmt.Sprintf("%s · Level %d", p.Category, p.Level)
}
