// Package nodelink renders the skill connection graph as a static diagram.
//
// # Overview
//
// Where the scene renderer shows where skills are at one instant of the
// animation, this package shows only who is connected to whom. Edges are
// undirected, matching the registry's adjacency, and nodes are sized by
// level and filled with the skill color.
//
// # Usage
//
//	dot := nodelink.ToDOT(reg, nodelink.Options{Cluster: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// PDF and PNG go through librsvg:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering (neato layout). PDF and PNG conversion requires rsvg-convert.
package nodelink
