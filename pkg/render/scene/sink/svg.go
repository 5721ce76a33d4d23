package sink

import (
	"bytes"
	"fmt"

	"github.com/dav88dev/skillorbit/pkg/render/scene"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
)

const skillInteractionCSS = `
    .skill { transition: r 0.2s ease, stroke-width 0.2s ease; cursor: pointer; }
    .skill.highlight { stroke-width: 4; }
    .edge { transition: stroke-opacity 0.2s ease; }
    .edge.highlight { stroke-opacity: 1; stroke-width: 3; }
    .skill-label { pointer-events: none; }`

const skillInteractionJS = `
    function highlight(id) {
      const el = document.getElementById('skill-' + id);
      const ids = [String(id)].concat((el.dataset.neighbors || '').split(' ').filter(Boolean));
      document.querySelectorAll('.skill').forEach(s => s.classList.toggle('highlight', ids.includes(s.id.replace('skill-', ''))));
      document.querySelectorAll('.edge').forEach(e => e.classList.toggle('highlight', e.dataset.from == id || e.dataset.to == id));
    }
    function clearHighlight() {
      document.querySelectorAll('.skill, .edge').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.skill').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.id.replace('skill-', '')));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	showEdges   bool
	showPanel   bool
	interactive bool
}

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption {
	return func(r *svgRenderer) {
		if s != nil {
			r.style = s
		}
	}
}

// WithoutEdges skips connection lines.
func WithoutEdges() SVGOption { return func(r *svgRenderer) { r.showEdges = false } }

// WithoutPanel skips the hover detail panel.
func WithoutPanel() SVGOption { return func(r *svgRenderer) { r.showPanel = false } }

// WithInteraction embeds CSS and a script that highlight a skill and its
// neighbors on mouse hover when the SVG is opened in a browser.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG draws s as a standalone SVG document.
func RenderSVG(s scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, showEdges: true, showPanel: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)

	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(r.style.Background()))

	if r.showEdges {
		for _, e := range s.Edges {
			r.style.RenderEdge(&buf, e)
		}
	}
	order := s.DrawOrder()
	for _, i := range order {
		r.style.RenderNode(&buf, s.Nodes[i])
	}
	for _, i := range order {
		r.style.RenderLabel(&buf, s.Nodes[i])
	}
	if r.showPanel && s.Panel != nil {
		r.style.RenderPanel(&buf, *s.Panel)
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", skillInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", skillInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
