package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dav88dev/skillorbit/pkg/cache"
	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/observability"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → simulate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	reg, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Registry = reg
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SkillCount = reg.Len()
	result.Stats.EdgeCount = len(reg.Edges())
	result.Stats.Dangling = len(reg.Dangling())

	hash, err := SkillsHash(reg)
	if err != nil {
		return nil, fmt.Errorf("hash skills: %w", err)
	}
	result.SkillsHash = hash

	r.Logger.Info("loaded skills",
		"skills", reg.Len(),
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)
	for _, d := range reg.Dangling() {
		from, _ := reg.ByIndex(d.From)
		r.Logger.Warn("unknown connection", "skill", from.Name, "target", d.To)
	}

	// Stage 2: Simulate
	simStart := time.Now()
	frame, simHit, err := r.SimulateWithCacheInfo(ctx, reg, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	result.Frame = frame
	result.Stats.SimulateTime = time.Since(simStart)
	result.CacheInfo.SimulateHit = simHit

	r.Logger.Info("simulated frames",
		"mode", opts.Mode,
		"frames", opts.Frames,
		"cached", simHit,
		"duration", result.Stats.SimulateTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, frame, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads opts.Source (or uses opts.Inputs) and builds the registry.
func (r *Runner) Load(ctx context.Context, opts Options) (*skills.Registry, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	return Load(ctx, opts)
}

// SimulateWithCacheInfo runs the engine with caching and returns cache hit info.
// skillsHash identifies the registry content; see [SkillsHash].
func (r *Runner) SimulateWithCacheInfo(ctx context.Context, reg *skills.Registry, skillsHash string, opts Options) (engine.Frame, bool, error) {
	if err := opts.ValidateForSimulate(); err != nil {
		return engine.Frame{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.FrameKey(skillsHash, opts.FrameKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var f engine.Frame
			if err := json.Unmarshal(data, &f); err == nil {
				observability.Cache().OnCacheHit(ctx, "frame")
				return f, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "frame")
	}

	f, err := Simulate(ctx, reg, opts)
	if err != nil {
		return engine.Frame{}, false, err
	}

	if data, err := json.Marshal(f); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.FrameTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "frame", len(data))
		} else {
			r.Logger.Debug("cache frame", "error", err)
		}
	}

	return f, false, nil // Cache miss
}

// Simulate is a convenience wrapper that calls SimulateWithCacheInfo and discards the cache hit info.
func (r *Runner) Simulate(ctx context.Context, reg *skills.Registry, skillsHash string, opts Options) (engine.Frame, error) {
	f, _, err := r.SimulateWithCacheInfo(ctx, reg, skillsHash, opts)
	return f, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f engine.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	frameData, err := json.Marshal(f)
	if err != nil {
		return nil, false, fmt.Errorf("serialize frame for cache key: %w", err)
	}
	frameHash := cache.Hash(frameData)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil // All artifacts from cache
	}

	partial := opts
	partial.Formats = missing
	rendered, err := Render(ctx, f, partial)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		} else {
			r.Logger.Debug("cache artifact", "format", format, "error", err)
		}
		artifacts[format] = data
	}

	return artifacts, false, nil // At least one artifact rendered
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, f engine.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, f, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// SkillsHash returns a content hash of the registry. Two files that decode
// to the same skills hash identically regardless of format.
func SkillsHash(reg *skills.Registry) (string, error) {
	data, err := json.Marshal(reg.Inputs())
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
