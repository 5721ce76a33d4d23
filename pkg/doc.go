// Package pkg provides the core libraries for skillorbit, an animated
// skills-graph layout and hit-testing engine.
//
// # Overview
//
// Skillorbit places a small set of skills on a canvas as moving nodes,
// eases them toward layout targets every frame, and answers "which skill is
// under the pointer?". The pkg directory is organized into these areas:
//
//  1. [skills] - The immutable skill registry and document loading
//  2. [layout], [anim], [hittest], [engine] - The animation engine
//  3. [render] - Frame and graph renderers (SVG, PNG, PDF, JSON, Graphviz)
//  4. [pipeline] - Orchestration (load → simulate → render) with caching
//  5. [cache], [observability], [errors], [buildinfo] - Supporting packages
//
// # Architecture
//
// The typical data flow:
//
//	skills.json / skills.toml / skills.yaml
//	         ↓
//	    [skills] package (decode, validate, resolve connections)
//	         ↓
//	    [engine] package (layout targets → smoothing → bob → hover)
//	         ↓
//	    engine.Frame snapshot
//	         ↓
//	    [render] packages → SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Drive the engine from a host frame loop:
//
//	eng, err := engine.New(inputs, engine.WithMode("orbit"))
//	if err != nil {
//	    return err // e.g. DUPLICATE_NAME
//	}
//	eng.Resize(800, 600)
//	for range ticker.C {
//	    eng.Tick(1.0 / 60)
//	    draw(eng.Frame())
//	}
//
// Or run the batch pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "skills.yaml",
//	    Mode:    "grid",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// [skills] - Registration-ordered catalog. IDs are registration indices;
// connections are resolved by name into undirected edges, and names that
// match nothing are kept as dangling connections.
//
// [layout] - The five layout strategies (orbit, float, grid, wave, spiral),
// each a pure function of index, count, time and canvas.
//
// [anim] - The animation controller: lifecycle, smoothing toward targets
// and the vertical bob applied at display time.
//
// [hittest] - Pointer hit testing over display positions with hover state.
//
// [engine] - The host-facing facade and render-ready [engine.Frame]
// snapshots, including the hover detail panel.
//
// [render/scene] - Frame to drawable scene, with sinks for SVG, PNG, PDF
// and JSON and the simple and glow styles.
//
// [render/nodelink] - Static connection diagrams using Graphviz.
//
// [pipeline] - Batch runs used by the CLI with frame and artifact caching.
//
// [cache] - Cache interface with file and no-op implementations and
// content-addressed keys.
//
// [observability] - Optional hooks for engine, pipeline and cache events.
//
// [skills]: github.com/dav88dev/skillorbit/pkg/skills
// [layout]: github.com/dav88dev/skillorbit/pkg/layout
// [anim]: github.com/dav88dev/skillorbit/pkg/anim
// [hittest]: github.com/dav88dev/skillorbit/pkg/hittest
// [engine]: github.com/dav88dev/skillorbit/pkg/engine
// [engine.Frame]: github.com/dav88dev/skillorbit/pkg/engine.Frame
// [render]: github.com/dav88dev/skillorbit/pkg/render
// [render/scene]: github.com/dav88dev/skillorbit/pkg/render/scene
// [render/nodelink]: github.com/dav88dev/skillorbit/pkg/render/nodelink
// [pipeline]: github.com/dav88dev/skillorbit/pkg/pipeline
// [cache]: github.com/dav88dev/skillorbit/pkg/cache
// [observability]: github.com/dav88dev/skillorbit/pkg/observability
// [errors]: github.com/dav88dev/skillorbit/pkg/errors
// [buildinfo]: github.com/dav88dev/skillorbit/pkg/buildinfo
package pkg
