// Package layout computes target positions for skill nodes.
//
// Each layout [Mode] is a [Strategy]: a pure function of node index, node
// count, elapsed time and canvas size. Strategies hold no state, so the
// animation controller can switch between them at any tick and the new
// targets are immediately well defined.
//
//	s, ok := layout.Lookup("Grid")   // case-insensitive
//	p := s.Target(2, 9, elapsed, layout.Canvas{Width: 800, Height: 600})
//
// # Modes
//
//   - orbit: evenly spaced on a circle of radius [Canvas.Radius], rotating
//     at 0.2 rad/s
//   - float: independent drifting paths seeded by index
//   - grid: cell centers of a ceil(sqrt(n)) column grid inside a margin
//   - wave: spread across the width, bobbing on a sine wave
//   - spiral: outward spiral, radius capped at [Canvas.Radius]
//
// Every strategy returns the canvas center for n <= 0 or an index outside
// [0, n), so callers never see a division by zero.
package layout
