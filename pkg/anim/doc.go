// Package anim advances skill node positions over time.
//
// A [Controller] moves through three states:
//
//	Uninitialized --Attach+Resize--> Ready --Tick--> Running
//
// Attach and Resize may come in either order. On entering Ready every
// node is seeded at the canvas center. Each [Controller.Tick] then:
//
//  1. adds dt to the elapsed time
//  2. asks the active [layout.Strategy] for every target
//  3. blends Current toward Target by the [Smoothing] alpha
//
// Display positions add a vertical [Bob] of A*sin(elapsed*f + i*phase)
// on top of Current. The bob is never blended, so with a fixed target the
// distance from Current to Target shrinks strictly on every tick.
//
// # Smoothing
//
// [FixedSmoothing] (the default, alpha 0.05) moves a fixed fraction per
// tick, so perceived speed depends on frame rate. [ExponentialSmoothing]
// derives alpha from dt and gives the same motion at any frame rate.
//
// # Resizing
//
// Resize recomputes targets and snaps Current to them, so a resize shows
// up as a one-frame jump rather than a slide.
package anim
