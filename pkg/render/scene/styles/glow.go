package styles

import (
	"bytes"
	"fmt"
)

// Glow draws nodes on a dark background with a soft halo and gradient
// edges, closer to the animated site widget.
type Glow struct{}

func (Glow) Name() string       { return "glow" }
func (Glow) Background() string { return "#0f172a" }

func (Glow) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="6" result="blur"/>
      <feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
    </filter>
  </defs>
`)
}

func (Glow) RenderEdge(buf *bytes.Buffer, e Edge) {
	opacity, width := 0.15, 1.0
	if e.Highlighted {
		opacity, width = 0.9, 2.5
	}
	fmt.Fprintf(buf, `  <line class="edge" data-from="%d" data-to="%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f" stroke-linecap="round"/>`+"\n",
		e.From, e.To, e.X1, e.Y1, e.X2, e.Y2, EscapeXML(e.Color), width, opacity)
}

func (Glow) RenderNode(buf *bytes.Buffer, n Node) {
	filter := ""
	if n.Hovered || n.Connected {
		filter = ` filter="url(#glow)"`
	}
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.25"/>`+"\n",
		n.X, n.Y, n.R*1.35, EscapeXML(n.Color))
	fmt.Fprintf(buf, `  <circle id="skill-%d" class="skill%s" data-neighbors="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="rgba(255,255,255,0.6)" stroke-width="1.5"%s/>`+"\n",
		n.ID, nodeClass(n), neighborList(n.Neighbors), n.X, n.Y, n.R, EscapeXML(n.Color), filter)
}

func (Glow) RenderLabel(buf *bytes.Buffer, n Node) {
	// Labels sit below the node so they stay readable on the dark canvas.
	fmt.Fprintf(buf, `  <text class="skill-label" data-skill="%d" x="%.2f" y="%.2f" text-anchor="middle" font-family="Inter, Arial, sans-serif" font-size="%.0f" fill="#e2e8f0">%s</text>`+"\n",
		n.ID, n.X, n.Y+n.R+14, FontSize(n), EscapeXML(n.Name))
}

func (Glow) RenderPanel(buf *bytes.Buffer, p Panel) {
	fmt.Fprintf(buf, `  <g class="detail-panel">`+"\n")
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="8" fill="rgba(15,23,42,0.9)" stroke="%s" stroke-width="1.5"/>`+"\n",
		p.X, p.Y, p.W, p.H, EscapeXML(p.Color))
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Inter, Arial, sans-serif" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
		p.X+12, p.Y+22, EscapeXML(p.Color), EscapeXML(p.Name))
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Inter, Arial, sans-serif" font-size="12" fill="#94a3b8">%s</text>`+"\n",
		p.X+12, p.Y+42, EscapeXML(panelSubtitle(p)))
	if p.Description != "" {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Inter, Arial, sans-serif" font-size="12" fill="#cbd5e1">%s</text>`+"\n",
			p.X+12, p.Y+62, EscapeXML(p.Description))
	}
	buf.WriteString("  </g>\n")
}
