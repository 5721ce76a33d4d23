package anim

import (
	"math"

	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/observability"
)

// State is the controller lifecycle.
type State int

const (
	// Uninitialized: no nodes attached or no canvas size yet. Ticks are ignored.
	Uninitialized State = iota
	// Ready: positions are seeded at the canvas center, no tick has run.
	Ready
	// Running: at least one tick has advanced time.
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Running:
		return "running"
	}
	return "unknown"
}

// Nodes is the part of a skill registry the controller needs.
type Nodes interface {
	Len() int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSmoothing sets the blend policy. Nil keeps the default.
func WithSmoothing(s Smoothing) Option {
	return func(c *Controller) {
		if s != nil {
			c.smoothing = s
		}
	}
}

// WithBob sets the vertical oscillation. Use Bob{} to disable it.
func WithBob(b Bob) Option {
	return func(c *Controller) { c.bob = b }
}

// WithMode sets the initial layout mode. Unknown names keep the default.
func WithMode(name string) Option {
	return func(c *Controller) {
		if s, ok := layout.Lookup(name); ok {
			c.strategy = s
		}
	}
}

// Controller owns per-node position state and advances it over time.
//
// Current positions are blended toward the active strategy's targets on
// every tick; the bob offset is applied only when reading display
// positions, so it never feeds back into smoothing.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	state     State
	strategy  layout.Strategy
	smoothing Smoothing
	bob       Bob

	canvas   layout.Canvas
	sized    bool
	attached bool
	n        int

	elapsed float64
	current []layout.Point
	target  []layout.Point
}

// New returns an Uninitialized controller in orbit mode with fixed smoothing.
func New(opts ...Option) *Controller {
	c := &Controller{
		strategy:  layout.ForMode(layout.DefaultMode),
		smoothing: FixedSmoothing(DefaultAlpha),
		bob:       DefaultBob,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach sets the nodes to animate. Attaching again re-seeds every node at
// the canvas center and restarts time.
func (c *Controller) Attach(nodes Nodes) {
	c.n = 0
	if nodes != nil {
		c.n = nodes.Len()
	}
	c.attached = true
	c.current = make([]layout.Point, c.n)
	c.target = make([]layout.Point, c.n)
	c.elapsed = 0
	c.state = Uninitialized
	c.maybeReady()
}

// Resize sets the canvas size. Dimensions below 1 (or NaN) are clamped
// to 1. Once positions exist, targets are recomputed and current
// positions jump straight to them.
func (c *Controller) Resize(width, height float64) {
	c.canvas = layout.Canvas{Width: clampDim(width), Height: clampDim(height)}
	c.sized = true

	switch c.state {
	case Uninitialized:
		c.maybeReady()
	case Ready, Running:
		c.retarget()
		copy(c.current, c.target)
	}
	observability.Engine().OnResize(c.canvas.Width, c.canvas.Height)
}

// SetMode switches the layout strategy. It returns false and keeps the
// current mode when name is not a known mode.
func (c *Controller) SetMode(name string) bool {
	s, ok := layout.Lookup(name)
	if !ok {
		return false
	}
	prev := c.strategy.Mode()
	c.strategy = s
	if c.state != Uninitialized {
		c.retarget()
	}
	if prev != s.Mode() {
		observability.Engine().OnModeChange(string(prev), string(s.Mode()))
	}
	return true
}

// Tick advances time by dt seconds and blends every node toward its target.
// It does nothing before initialization or when dt is negative, NaN or
// infinite. A zero dt starts the controller without moving anything.
func (c *Controller) Tick(dt float64) {
	if c.state == Uninitialized || !(dt >= 0) || math.IsInf(dt, 0) {
		return
	}
	if dt == 0 {
		c.state = Running
		return
	}
	c.elapsed += dt
	c.retarget()
	a := c.smoothing.Alpha(dt)
	for i := range c.current {
		c.current[i] = c.current[i].Lerp(c.target[i], a)
	}
	c.state = Running
	observability.Engine().OnTick(dt, c.elapsed)
}

func (c *Controller) maybeReady() {
	if !c.attached || !c.sized {
		return
	}
	center := c.canvas.Center()
	for i := range c.current {
		c.current[i] = center
	}
	c.retarget()
	c.state = Ready
}

func (c *Controller) retarget() {
	c.target = layout.Targets(c.strategy, c.n, c.elapsed, c.canvas, c.target)
}

func clampDim(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}

// =============================================================================
// Accessors
// =============================================================================

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Mode returns the active layout mode.
func (c *Controller) Mode() layout.Mode { return c.strategy.Mode() }

// Elapsed returns the accumulated animation time in seconds.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Canvas returns the clamped canvas size.
func (c *Controller) Canvas() layout.Canvas { return c.canvas }

// Len returns the number of animated nodes.
func (c *Controller) Len() int { return len(c.current) }

// Bob returns the oscillation settings.
func (c *Controller) Bob() Bob { return c.bob }

// Current returns the smoothed position of node i, without bob.
func (c *Controller) Current(i int) (layout.Point, bool) {
	if c.state == Uninitialized || i < 0 || i >= len(c.current) {
		return layout.Point{}, false
	}
	return c.current[i], true
}

// Target returns the strategy target of node i at the current time.
func (c *Controller) Target(i int) (layout.Point, bool) {
	if c.state == Uninitialized || i < 0 || i >= len(c.target) {
		return layout.Point{}, false
	}
	return c.target[i], true
}

// Display returns the position node i is drawn at: Current plus bob.
func (c *Controller) Display(i int) (layout.Point, bool) {
	p, ok := c.Current(i)
	if !ok {
		return p, false
	}
	p.Y += c.bob.Offset(i, c.elapsed)
	return p, true
}

// Positions returns a copy of all display positions, or nil before
// initialization.
func (c *Controller) Positions() []layout.Point {
	if c.state == Uninitialized {
		return nil
	}
	out := make([]layout.Point, len(c.current))
	for i := range out {
		out[i], _ = c.Display(i)
	}
	return out
}
