package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dav88dev/skillorbit/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 artifacts (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Log-backed Observability Hooks
// =============================================================================

// logHooks forwards observability events to a logger at debug level.
// Tick events are sampled: one line per second of simulated time.
type logHooks struct {
	logger   *log.Logger
	lastTick float64
}

// installLogHooks registers logHooks for engine, pipeline and cache events.
func installLogHooks(l *log.Logger) {
	h := &logHooks{logger: l.WithPrefix("hooks")}
	observability.SetEngineHooks(h)
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnModeChange(from, to string) {
	h.logger.Debug("mode change", "from", from, "to", to)
}

func (h *logHooks) OnResize(width, height float64) {
	h.logger.Debug("resize", "width", width, "height", height)
}

func (h *logHooks) OnHoverChange(from, to int) {
	h.logger.Debug("hover change", "from", from, "to", to)
}

func (h *logHooks) OnTick(dt, elapsed float64) {
	if elapsed < h.lastTick || elapsed-h.lastTick >= 1 {
		h.lastTick = elapsed
		h.logger.Debug("tick", "dt", dt, "elapsed", elapsed)
	}
}

func (h *logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load start", "source", source)
}

func (h *logHooks) OnLoadComplete(_ context.Context, source string, skillCount int, d time.Duration, err error) {
	h.logger.Debug("load complete", "source", source, "skills", skillCount, "duration", d, "error", err)
}

func (h *logHooks) OnSimulateStart(_ context.Context, mode string, frames int) {
	h.logger.Debug("simulate start", "mode", mode, "frames", frames)
}

func (h *logHooks) OnSimulateComplete(_ context.Context, mode string, d time.Duration, err error) {
	h.logger.Debug("simulate complete", "mode", mode, "duration", d, "error", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render complete", "formats", formats, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
