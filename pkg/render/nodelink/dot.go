package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dav88dev/skillorbit/pkg/render"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// Options configures connection diagram rendering.
type Options struct {
	// Detailed includes category and level in node labels.
	// When false, only the skill name is shown.
	Detailed bool

	// Cluster groups skills of the same category into subgraphs.
	Cluster bool

	// ShowDangling draws unresolved connections as dashed edges to
	// placeholder nodes.
	ShowDangling bool
}

// ToDOT converts a skill registry to an undirected Graphviz graph.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(reg *skills.Registry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  edge [color=\"#94a3b8\"];\n")
	buf.WriteString("\n")

	all := reg.All()
	if opts.Cluster {
		for ci, cat := range categories(all) {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", ci)
			fmt.Fprintf(&buf, "    label=%q;\n", cat)
			buf.WriteString("    style=dashed;\n")
			for _, s := range all {
				if s.Category == cat {
					fmt.Fprintf(&buf, "    %q [%s];\n", s.Name, strings.Join(fmtAttrs(s, opts.Detailed), ", "))
				}
			}
			buf.WriteString("  }\n")
		}
	} else {
		for _, s := range all {
			fmt.Fprintf(&buf, "  %q [%s];\n", s.Name, strings.Join(fmtAttrs(s, opts.Detailed), ", "))
		}
	}

	buf.WriteString("\n")
	for _, e := range reg.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", all[e.A].Name, all[e.B].Name)
	}

	if opts.ShowDangling {
		for _, d := range reg.Dangling() {
			fmt.Fprintf(&buf, "  %q [style=dashed, fillcolor=lightgrey, fontcolor=\"#64748b\"];\n", d.To)
			fmt.Fprintf(&buf, "  %q -- %q [style=dashed];\n", all[d.From].Name, d.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func categories(all []skills.Skill) []string {
	var out []string
	for _, s := range all {
		if !slices.Contains(out, s.Category) {
			out = append(out, s.Category)
		}
	}
	return out
}

func fmtLabel(s skills.Skill, detailed bool) string {
	if !detailed {
		return s.Name
	}
	parts := []string{s.Name}
	if s.Category != "" {
		parts = append(parts, s.Category)
	}
	parts = append(parts, fmt.Sprintf("level %d", s.Level))
	return strings.Join(parts, "\n")
}

func fmtAttrs(s skills.Skill, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(s, detailed))}
	// Graphviz treats width as inches; scale so level 100 is about 1.5in.
	attrs = append(attrs, fmt.Sprintf("width=%.2f", 0.6+float64(s.Level)/100*0.9))
	if s.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.Color))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with a
// pixel-sized one so the diagram scales like scene output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
