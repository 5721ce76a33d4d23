// Package scene renders engine frames.
//
// # Overview
//
// [Build] turns an [engine.Frame] into a [Scene]: resolved fill colors,
// edge endpoints, neighbor lists for interaction scripts, and the placement
// of the hover detail panel. The sink subpackage writes scenes as SVG,
// PNG or JSON, and the styles subpackage controls their look.
//
//	f := eng.Frame()
//	svg := sink.RenderSVG(scene.Build(f), sink.WithStyle(styles.Glow{}))
//
// Neighbors of the hovered node are drawn 10% larger and edges touching it
// are highlighted in its color.
//
// [engine.Frame]: github.com/dav88dev/skillorbit/pkg/engine.Frame
package scene
