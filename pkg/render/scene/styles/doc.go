// Package styles defines how a scene frame looks.
//
// A [Style] writes SVG fragments for each element of a frame into a
// buffer supplied by the sink. Two styles ship with skillorbit:
//
//   - [Simple]: flat colored circles on a light background, white borders,
//     labels centered on the node
//   - [Glow]: dark background, haloed nodes, labels under the node
//
// Color helpers ([LabelColor], [Luminance], [ParseHex]) are shared with
// the raster sink so both outputs pick the same label contrast.
package styles
