// Package engine is the host-facing boundary of the skills visualization.
//
// An [Engine] owns a skill registry, an animation controller and a hit
// tester. A host drives it from its frame loop:
//
//	e, err := engine.New(inputs, engine.WithCanvas(800, 600))
//	if err != nil {
//	    return err // duplicate names, bad levels
//	}
//	for {
//	    e.Tick(dt)
//	    e.PointerMove(mouseX, mouseY)
//	    renderer.Draw(e.Frame())
//	}
//
// [Engine.Frame] returns a self-contained snapshot: node positions (with
// bob applied), radii, hover and adjacency flags, and the detail panel
// for the hovered skill. Renderers never call back into the engine.
//
// The engine does no I/O and never blocks. It reports mode, resize, hover
// and tick events through [observability.EngineHooks].
package engine
