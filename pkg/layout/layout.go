package layout

import (
	"math"
	"strings"
)

// Mode names a layout algorithm.
type Mode string

// Layout modes in canonical order.
const (
	ModeOrbit  Mode = "orbit"
	ModeFloat  Mode = "float"
	ModeGrid   Mode = "grid"
	ModeWave   Mode = "wave"
	ModeSpiral Mode = "spiral"
)

// DefaultMode is the mode an engine starts in.
const DefaultMode = ModeOrbit

// MaxRadius caps the shared layout radius on large canvases.
const MaxRadius = 200

// Point is a position in canvas pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Lerp moves p toward q by fraction a.
func (p Point) Lerp(q Point, a float64) Point {
	return Point{p.X + (q.X-p.X)*a, p.Y + (q.Y-p.Y)*a}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Canvas is the drawable area in pixels.
type Canvas struct {
	Width, Height float64
}

// Center returns the middle of the canvas.
func (c Canvas) Center() Point { return Point{c.Width / 2, c.Height / 2} }

// Radius returns the shared layout radius: 30% of the shorter side,
// capped at [MaxRadius].
func (c Canvas) Radius() float64 {
	return math.Min(math.Min(c.Width, c.Height)*0.3, MaxRadius)
}

// Strategy computes where node i of n should be at time t.
//
// Implementations are pure: the same arguments always yield the same
// point, and any i outside [0, n) yields the canvas center.
type Strategy interface {
	Mode() Mode
	Target(i, n int, t float64, c Canvas) Point
}

// =============================================================================
// Registry
// =============================================================================

var strategies = []Strategy{
	Orbit{},
	Float{},
	Grid{},
	Wave{},
	Spiral{},
}

// Modes lists every registered mode in canonical order.
func Modes() []Mode {
	out := make([]Mode, len(strategies))
	for i, s := range strategies {
		out[i] = s.Mode()
	}
	return out
}

// ParseMode normalizes name and reports whether it names a registered mode.
// Matching ignores case and surrounding whitespace.
func ParseMode(name string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range strategies {
		if s.Mode() == m {
			return m, true
		}
	}
	return "", false
}

// Lookup returns the strategy registered for name.
func Lookup(name string) (Strategy, bool) {
	m, ok := ParseMode(name)
	if !ok {
		return nil, false
	}
	return ForMode(m), true
}

// ForMode returns the strategy for m, falling back to [DefaultMode].
func ForMode(m Mode) Strategy {
	for _, s := range strategies {
		if s.Mode() == m {
			return s
		}
	}
	return Orbit{}
}

// Targets fills dst with the targets of all n nodes and returns it,
// growing dst if needed.
func Targets(s Strategy, n int, t float64, c Canvas, dst []Point) []Point {
	if cap(dst) < n {
		dst = make([]Point, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = s.Target(i, n, t, c)
	}
	return dst
}

func outOfRange(i, n int) bool { return n <= 0 || i < 0 || i >= n }
