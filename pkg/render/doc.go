// Package render turns engine frames and skill graphs into files.
//
// # Overview
//
// The engine never draws; it hands out [engine.Frame] snapshots. This
// package tree provides the renderers that consume them:
//
//   - Scene rendering of a frame (in [scene] and its sink subpackage): SVG, PNG, PDF, JSON
//   - Connection graph diagrams (in [nodelink] subpackage) via Graphviz
//   - Generic format conversion (SVG to PDF/PNG) in this package
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(scene.Build(frame), sink.WithStyle(styles.Glow{}))
//	pdf, err := render.ToPDF(ctx, svg)
//
// Scene PNGs are rasterized in-process and do not need librsvg.
//
// [engine.Frame]: github.com/dav88dev/skillorbit/pkg/engine.Frame
// [scene]: github.com/dav88dev/skillorbit/pkg/render/scene
// [nodelink]: github.com/dav88dev/skillorbit/pkg/render/nodelink
package render
