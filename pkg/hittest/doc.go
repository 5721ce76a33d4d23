// Package hittest maps pointer coordinates to skill nodes.
//
// A node's visual radius grows with its level, from [BaseRadius] at level
// 0 to BaseRadius+[LevelRadius] at level 100, and is scaled by
// [HoverScale] while hovered. A pointer hits a node when it lies within its
// current visual radius plus a tolerance (10px by default) of the node's
// display position, the same position the renderer draws. The hovered node
// is tested at the enlarged radius. When nodes overlap, the
// lowest registration index wins.
//
// [Tester.HitTest] updates hover state; [Tester.Find] is the same query
// without side effects.
package hittest
