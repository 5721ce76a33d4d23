// Package config loads persistent skillorbit settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional config file (.skillorbit.yaml in the working directory, or the
// file named by --config), and SKILLORBIT_* environment variables such as
// SKILLORBIT_ENGINE_MODE=grid. Command-line flags override all of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/dav88dev/skillorbit/pkg/anim"
	"github.com/dav88dev/skillorbit/pkg/engine"
	skerrors "github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/hittest"
	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "SKILLORBIT"

// FileName is the config file looked up in the working directory.
const FileName = ".skillorbit"

// Config represents the full skillorbit configuration
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Canvas CanvasConfig `mapstructure:"canvas"`
	Render RenderConfig `mapstructure:"render"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// EngineConfig contains animation and hit-test settings
type EngineConfig struct {
	Mode         string  `mapstructure:"mode"`
	Smoothing    string  `mapstructure:"smoothing"` // fixed or exponential
	Alpha        float64 `mapstructure:"alpha"`
	Rate         float64 `mapstructure:"rate"`
	BobAmplitude float64 `mapstructure:"bob_amplitude"`
	BobFrequency float64 `mapstructure:"bob_frequency"`
	BobPhase     float64 `mapstructure:"bob_phase"`
	HitTolerance float64 `mapstructure:"hit_tolerance"`
	Frames       int     `mapstructure:"frames"`
	FPS          float64 `mapstructure:"fps"`
}

// CanvasConfig contains the default canvas size for batch renders
type CanvasConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// RenderConfig contains output settings
type RenderConfig struct {
	Style       string   `mapstructure:"style"`
	Formats     []string `mapstructure:"formats"`
	Scale       float64  `mapstructure:"scale"`
	FontFile    string   `mapstructure:"font_file"`
	Interactive bool     `mapstructure:"interactive"`
}

// Load reads configuration. An empty path searches the working directory
// for .skillorbit.{yaml,toml,json}; a missing file there is not an error.
// A path that was given explicitly must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		v.AddConfigPath(cwd)
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, skerrors.Wrap(skerrors.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return nil, skerrors.Wrap(skerrors.ErrCodeParse, err, "read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeParse, err, "failed to unmarshal config")
	}
	cfg.File = v.ConfigFileUsed()

	applyDefaults(cfg)

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Engine.BobAmplitude = anim.DefaultBob.Amplitude
	cfg.Engine.BobFrequency = anim.DefaultBob.Frequency
	cfg.Engine.BobPhase = anim.DefaultBob.Phase
	return cfg
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.mode", string(layout.DefaultMode))
	v.SetDefault("engine.smoothing", pipeline.SmoothingFixed)
	v.SetDefault("engine.alpha", anim.DefaultAlpha)
	v.SetDefault("engine.rate", 0.0)
	v.SetDefault("engine.bob_amplitude", anim.DefaultBob.Amplitude)
	v.SetDefault("engine.bob_frequency", anim.DefaultBob.Frequency)
	v.SetDefault("engine.bob_phase", anim.DefaultBob.Phase)
	v.SetDefault("engine.hit_tolerance", hittest.DefaultTolerance)
	v.SetDefault("engine.frames", pipeline.DefaultFrames)
	v.SetDefault("engine.fps", pipeline.DefaultFPS)
	v.SetDefault("canvas.width", pipeline.DefaultWidth)
	v.SetDefault("canvas.height", pipeline.DefaultHeight)
	v.SetDefault("render.style", pipeline.DefaultStyle)
	v.SetDefault("render.formats", []string{pipeline.FormatSVG})
	v.SetDefault("render.scale", pipeline.DefaultScale)
	v.SetDefault("render.font_file", "")
	v.SetDefault("render.interactive", false)
}

// applyDefaults fills values a config file may have blanked.
func applyDefaults(cfg *Config) {
	if cfg.Engine.Mode == "" {
		cfg.Engine.Mode = string(layout.DefaultMode)
	}
	if cfg.Engine.Smoothing == "" {
		cfg.Engine.Smoothing = pipeline.SmoothingFixed
	}
	if cfg.Engine.Alpha == 0 {
		cfg.Engine.Alpha = anim.DefaultAlpha
	}
	if cfg.Engine.HitTolerance == 0 {
		cfg.Engine.HitTolerance = hittest.DefaultTolerance
	}
	if cfg.Engine.Frames == 0 {
		cfg.Engine.Frames = pipeline.DefaultFrames
	}
	if cfg.Engine.FPS == 0 {
		cfg.Engine.FPS = pipeline.DefaultFPS
	}
	if cfg.Canvas.Width == 0 {
		cfg.Canvas.Width = pipeline.DefaultWidth
	}
	if cfg.Canvas.Height == 0 {
		cfg.Canvas.Height = pipeline.DefaultHeight
	}
	if cfg.Render.Style == "" {
		cfg.Render.Style = pipeline.DefaultStyle
	}
	if len(cfg.Render.Formats) == 0 {
		cfg.Render.Formats = []string{pipeline.FormatSVG}
	}
	if cfg.Render.Scale == 0 {
		cfg.Render.Scale = pipeline.DefaultScale
	}
}

// Validate checks that every enumerated setting names something real.
func (c *Config) Validate() error {
	if err := pipeline.ValidateMode(c.Engine.Mode); err != nil {
		return err
	}
	if err := pipeline.ValidateSmoothing(c.Engine.Smoothing); err != nil {
		return err
	}
	if c.Engine.Alpha <= 0 || c.Engine.Alpha > 1 {
		return skerrors.New(skerrors.ErrCodeInvalidInput, "engine.alpha must lie in (0, 1] (got %g)", c.Engine.Alpha)
	}
	if c.Engine.FPS <= 0 {
		return skerrors.New(skerrors.ErrCodeInvalidInput, "engine.fps must be positive (got %g)", c.Engine.FPS)
	}
	if err := skerrors.ValidateDimension("canvas.width", c.Canvas.Width); err != nil {
		return err
	}
	if err := skerrors.ValidateDimension("canvas.height", c.Canvas.Height); err != nil {
		return err
	}
	if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
		return err
	}
	return pipeline.ValidateFormats(c.Render.Formats)
}

// Bob returns the configured oscillation.
func (c *Config) Bob() anim.Bob {
	return anim.Bob{
		Amplitude: c.Engine.BobAmplitude,
		Frequency: c.Engine.BobFrequency,
		Phase:     c.Engine.BobPhase,
	}
}

// Pipeline returns pipeline options seeded from the configuration. The
// caller fills in the source and any flag overrides.
func (c *Config) Pipeline() pipeline.Options {
	bob := c.Bob()
	return pipeline.Options{
		Mode:        c.Engine.Mode,
		Width:       c.Canvas.Width,
		Height:      c.Canvas.Height,
		Frames:      c.Engine.Frames,
		FPS:         c.Engine.FPS,
		Smoothing:   c.Engine.Smoothing,
		Alpha:       c.Engine.Alpha,
		Rate:        c.Engine.Rate,
		Bob:         bob,
		NoBob:       bob.Amplitude == 0,
		Tolerance:   c.Engine.HitTolerance,
		Formats:     append([]string(nil), c.Render.Formats...),
		Style:       c.Render.Style,
		Scale:       c.Render.Scale,
		FontFile:    c.Render.FontFile,
		Interactive: c.Render.Interactive,
	}
}

// EngineOptions returns options for an interactive engine. The canvas is
// left to the host, which sizes it with Resize.
func (c *Config) EngineOptions() []engine.Option {
	opts := c.Pipeline()
	opts.SetSimulateDefaults()
	return []engine.Option{
		engine.WithMode(opts.Mode),
		engine.WithSmoothing(opts.SmoothingPolicy()),
		engine.WithBob(opts.Bob),
		engine.WithTolerance(opts.Tolerance),
	}
}
