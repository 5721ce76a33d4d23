package pipeline

import (
	"context"
	"time"

	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/observability"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// Load resolves the skills named by opts and builds the registry.
func Load(ctx context.Context, opts Options) (reg *skills.Registry, err error) {
	source := opts.Source
	if opts.Inputs != nil {
		source = "inputs"
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)
	defer func() {
		n := 0
		if reg != nil {
			n = reg.Len()
		}
		observability.Pipeline().OnLoadComplete(ctx, source, n, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inputs := opts.Inputs
	if inputs == nil {
		inputs, err = skills.LoadFile(opts.Source)
		if err != nil {
			return nil, err
		}
	}
	return skills.Build(inputs)
}

// Simulate builds an engine over reg, runs opts.Frames ticks of 1/opts.FPS
// seconds and returns the final frame. If opts.Pointer is set the pointer
// is moved there after the last tick, so the frame carries hover state.
//
// The context is checked between ticks.
func Simulate(ctx context.Context, reg *skills.Registry, opts Options) (f engine.Frame, err error) {
	opts.SetSimulateDefaults()
	start := time.Now()
	observability.Pipeline().OnSimulateStart(ctx, opts.Mode, opts.Frames)
	defer func() {
		observability.Pipeline().OnSimulateComplete(ctx, opts.Mode, time.Since(start), err)
	}()

	eng := engine.FromRegistry(reg, opts.EngineOptions()...)

	dt := 1 / opts.FPS
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return engine.Frame{}, err
		}
		eng.Tick(dt)
	}

	if len(opts.Pointer) == 2 {
		if _, ok := eng.PointerMove(opts.Pointer[0], opts.Pointer[1]); ok {
			opts.Logger.Debug("pointer hit", "x", opts.Pointer[0], "y", opts.Pointer[1])
		}
	}

	if reg.Len() == 0 {
		opts.Logger.Warn("no skills to simulate")
	}
	return eng.Frame(), nil
}
