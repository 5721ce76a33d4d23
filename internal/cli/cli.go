// Package cli implements the skillorbit command-line interface.
//
// The CLI loads skills documents, drives the animation engine headlessly
// for batch renders, and hosts the engine interactively in the terminal.
// It is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Simulate and write SVG, PNG, PDF or JSON frames
//   - simulate: Print node positions over time
//   - graph: Draw the connection graph with Graphviz
//   - validate: Check a skills file and report unknown connections
//   - view: Interactive terminal view (mouse hover, mode keys)
//   - modes: List layout modes
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes engine and pipeline events to the log.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/internal/config"
	"github.com/dav88dev/skillorbit/pkg/buildinfo"
	"github.com/dav88dev/skillorbit/pkg/cache"
	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "skillorbit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level. At debug level engine and
// pipeline events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		installLogHooks(c.Logger)
	}
}

// Config returns the loaded configuration, or the defaults before
// PersistentPreRun has run.
func (c *CLI) Config() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Skillorbit animates skill graphs and renders them",
		Long: `Skillorbit lays out a set of skills as animated nodes (orbit, float, grid,
wave or spiral), tracks the pointer over them, and renders frames to SVG,
PNG, PDF or JSON. Skills are read from JSON, TOML or YAML files.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default is ./.skillorbit.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.modesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerCompletions(root)

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.File != "" {
		c.Logger.Debug("using config file", "path", cfg.File)
	}
	c.cfg = cfg
	return nil
}

// ExitCode maps a command error to a process exit status: 0 on success,
// 130 when interrupted, 2 for rejected options and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, context.Canceled) {
		return 130
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidMode:
		return 2
	}
	return 1
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped
// to the build so entries never cross versions.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/skillorbit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns w wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string, w io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{w}, nil
	}
	return os.Create(path)
}

// =============================================================================
// Flag Parsing
// =============================================================================

// splitList parses a comma-separated flag into trimmed, non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

// parsePoint parses "x,y" into two finite coordinates.
func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "pointer must be x,y (got %q)", s)
	}
	pt := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "pointer coordinate %q", p)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pointer coordinate %q is not finite", p)
		}
		pt[i] = v
	}
	return pt, nil
}
