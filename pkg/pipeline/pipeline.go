// Package pipeline provides the batch load → simulate → render pipeline for
// skillorbit.
//
// The interactive engine is driven by a host's frame loop. The pipeline is
// the headless counterpart: it loads a skills document, runs the engine for
// a fixed number of ticks, optionally places a pointer, and encodes the
// final frame in one or more formats. The CLI's render command is a thin
// wrapper around [Runner.Execute].
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a skills file (JSON, TOML or YAML) and build the registry
//  2. Simulate: Tick the engine and snapshot a [engine.Frame]
//  3. Render: Encode the frame as SVG, PNG, PDF or JSON
//
// Simulated frames and rendered artifacts are cached under keys derived
// from the skills content and every option that affects the output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "skills.yaml",
//	    Mode:    "grid",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dav88dev/skillorbit/pkg/anim"
	"github.com/dav88dev/skillorbit/pkg/cache"
	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/hittest"
	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultFrames is the number of ticks simulated before the snapshot.
	// Five seconds at 60 fps is enough for fixed smoothing to settle.
	DefaultFrames = 300

	// DefaultFPS is the simulated frame rate.
	DefaultFPS = 60.0

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Smoothing policy names.
const (
	SmoothingFixed       = "fixed"
	SmoothingExponential = "exponential"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidSmoothing is the set of supported smoothing policies.
var ValidSmoothing = map[string]bool{
	SmoothingFixed:       true,
	SmoothingExponential: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options. Inputs takes precedence over Source when both are set.
	Source string         `json:"source,omitempty"`
	Inputs []skills.Input `json:"-"`

	// Simulate options
	Mode      string    `json:"mode,omitempty"`
	Width     float64   `json:"width,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Frames    int       `json:"frames,omitempty"`
	FPS       float64   `json:"fps,omitempty"`
	Smoothing string    `json:"smoothing,omitempty"`
	Alpha     float64   `json:"alpha,omitempty"`
	Rate      float64   `json:"rate,omitempty"` // exponential rate in 1/s; zero derives it from Alpha and FPS
	Bob       anim.Bob  `json:"bob,omitempty"`  // zero value selects anim.DefaultBob
	NoBob     bool      `json:"no_bob,omitempty"`
	Tolerance float64   `json:"tolerance,omitempty"`
	Pointer   []float64 `json:"pointer,omitempty"` // x, y after the last tick
	Refresh   bool      `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	FontFile    string   `json:"font_file,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Registry is the validated skill catalog.
	Registry *skills.Registry

	// SkillsHash is the content hash of the loaded skills.
	SkillsHash string

	// Frame is the snapshot after the last simulated tick.
	Frame engine.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SkillCount   int
	EdgeCount    int
	Dangling     int
	LoadTime     time.Duration
	SimulateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SimulateHit bool // Whether the frame came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Lookup(style)
	return err
}

// ValidateMode checks that a layout mode name is known. The engine itself
// ignores unknown modes; batch runs reject them up front.
func ValidateMode(mode string) error {
	if _, ok := layout.ParseMode(mode); !ok {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: %s)", mode, modeList())
	}
	return nil
}

// ValidateSmoothing checks that a smoothing policy name is known.
func ValidateSmoothing(name string) error {
	if !ValidSmoothing[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid smoothing: %q (must be one of: fixed, exponential)", name)
	}
	return nil
}

func modeList() string {
	modes := layout.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForSimulate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that there is something to load.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Inputs == nil {
		return errors.New(errors.ErrCodeInvalidInput, "source or inputs is required")
	}
	o.setLogger()
	return nil
}

// SetSimulateDefaults sets default values for simulation.
func (o *Options) SetSimulateDefaults() {
	if o.Mode == "" {
		o.Mode = string(layout.DefaultMode)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Frames == 0 {
		o.Frames = DefaultFrames
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.Smoothing == "" {
		o.Smoothing = SmoothingFixed
	}
	if o.Alpha == 0 {
		o.Alpha = anim.DefaultAlpha
	}
	if o.Bob == (anim.Bob{}) && !o.NoBob {
		o.Bob = anim.DefaultBob
	}
	if o.NoBob {
		o.Bob = anim.Bob{}
	}
	if o.Tolerance == 0 {
		o.Tolerance = hittest.DefaultTolerance
	}
	o.setLogger()
}

// ValidateForSimulate validates and sets defaults for simulation.
func (o *Options) ValidateForSimulate() error {
	o.SetSimulateDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if m, _ := layout.ParseMode(o.Mode); string(m) != o.Mode {
		o.Mode = string(m)
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if o.Frames < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frames must not be negative (got %d)", o.Frames)
	}
	if o.FPS < 0 || math.IsNaN(o.FPS) || math.IsInf(o.FPS, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be a positive number (got %g)", o.FPS)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "alpha must lie in (0, 1] (got %g)", o.Alpha)
	}
	if o.Rate < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rate must not be negative (got %g)", o.Rate)
	}
	if len(o.Pointer) != 0 && len(o.Pointer) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "pointer needs exactly two coordinates (got %d)", len(o.Pointer))
	}
	return ValidateSmoothing(o.Smoothing)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive (got %g)", o.Scale)
	}
	return ValidateStyle(o.Style)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SmoothingPolicy returns the blend policy described by the options.
func (o *Options) SmoothingPolicy() anim.Smoothing {
	if o.Smoothing == SmoothingExponential {
		if o.Rate > 0 {
			return anim.ExponentialSmoothing(o.Rate)
		}
		return anim.RateForAlpha(o.Alpha, 1/o.FPS)
	}
	return anim.FixedSmoothing(o.Alpha)
}

// EngineOptions returns the engine options described by the simulate
// settings.
func (o *Options) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithMode(o.Mode),
		engine.WithSmoothing(o.SmoothingPolicy()),
		engine.WithBob(o.Bob),
		engine.WithTolerance(o.Tolerance),
		engine.WithCanvas(o.Width, o.Height),
	}
}

// FrameKeyOpts returns cache key options for simulation.
func (o *Options) FrameKeyOpts() cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		Mode:      o.Mode,
		Width:     o.Width,
		Height:    o.Height,
		Frames:    o.Frames,
		FPS:       o.FPS,
		Smoothing: o.Smoothing,
		Alpha:     o.Alpha,
		Rate:      o.Rate,
		Bob:       [3]float64{o.Bob.Amplitude, o.Bob.Frequency, o.Bob.Phase},
		Tolerance: o.Tolerance,
		Pointer:   slices.Clone(o.Pointer),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Style: o.Style}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
		k.Font = o.FontFile
	case FormatSVG, FormatPDF:
		k.Interactive = o.Interactive
	}
	return k
}
