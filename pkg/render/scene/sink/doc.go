// Package sink writes scenes to output formats.
//
// # Formats
//
//   - [RenderSVG]: standalone SVG, optionally with hover interaction
//   - [RenderPNG]: in-process raster via gogpu/gg, no external tools
//   - [RenderPDF]: SVG converted with rsvg-convert
//   - [RenderJSON]: the engine frame itself
//
// Visual choices come from a [styles.Style]:
//
//	svg := sink.RenderSVG(sc, sink.WithStyle(styles.Glow{}), sink.WithInteraction())
//	png, err := sink.RenderPNG(sc, sink.WithPNGStyle(styles.Glow{}), sink.WithScale(2))
//
// PNG labels need a TrueType font ([WithFontFile]); without one the PNG
// shows shapes and the detail panel frame only.
package sink
