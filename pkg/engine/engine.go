package engine

import (
	"github.com/dav88dev/skillorbit/pkg/anim"
	"github.com/dav88dev/skillorbit/pkg/hittest"
	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/observability"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	anim      []anim.Option
	hit       []hittest.Option
	width     float64
	height    float64
	hasCanvas bool
}

// WithMode sets the initial layout mode. Unknown names keep orbit.
func WithMode(name string) Option {
	return func(c *config) { c.anim = append(c.anim, anim.WithMode(name)) }
}

// WithSmoothing sets the blend policy of the animation controller.
func WithSmoothing(s anim.Smoothing) Option {
	return func(c *config) { c.anim = append(c.anim, anim.WithSmoothing(s)) }
}

// WithBob sets the vertical oscillation.
func WithBob(b anim.Bob) Option {
	return func(c *config) { c.anim = append(c.anim, anim.WithBob(b)) }
}

// WithTolerance sets the pointer pick tolerance in pixels.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.hit = append(c.hit, hittest.WithTolerance(tol)) }
}

// WithCanvas sizes the canvas at construction so the engine starts Ready.
func WithCanvas(width, height float64) Option {
	return func(c *config) {
		c.width, c.height, c.hasCanvas = width, height, true
	}
}

// Engine ties a skill registry, an animation controller and a hit tester
// together behind the host-facing API.
//
// Engine is single-threaded: all methods must be called from one goroutine
// (typically the host's frame loop).
type Engine struct {
	reg  *skills.Registry
	ctrl *anim.Controller
	hit  *hittest.Tester
}

// New builds the registry from inputs and returns an engine. On error no
// engine is returned.
func New(inputs []skills.Input, opts ...Option) (*Engine, error) {
	reg, err := skills.Build(inputs)
	if err != nil {
		return nil, err
	}
	return FromRegistry(reg, opts...), nil
}

// FromRegistry returns an engine over an already built registry.
func FromRegistry(reg *skills.Registry, opts ...Option) *Engine {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	ctrl := anim.New(cfg.anim...)
	ctrl.Attach(reg)
	if cfg.hasCanvas {
		ctrl.Resize(cfg.width, cfg.height)
	}
	return &Engine{
		reg:  reg,
		ctrl: ctrl,
		hit:  hittest.New(hittest.FromRegistry(reg), ctrl, cfg.hit...),
	}
}

// Registry returns the skill catalog.
func (e *Engine) Registry() *skills.Registry { return e.reg }

// State returns the animation lifecycle state.
func (e *Engine) State() anim.State { return e.ctrl.State() }

// Mode returns the active layout mode.
func (e *Engine) Mode() layout.Mode { return e.ctrl.Mode() }

// Elapsed returns animation time in seconds.
func (e *Engine) Elapsed() float64 { return e.ctrl.Elapsed() }

// Canvas returns the current canvas size.
func (e *Engine) Canvas() layout.Canvas { return e.ctrl.Canvas() }

// Positions returns display positions aligned with registry order.
func (e *Engine) Positions() []layout.Point { return e.ctrl.Positions() }

// Resize sets the canvas size; see [anim.Controller.Resize].
func (e *Engine) Resize(width, height float64) { e.ctrl.Resize(width, height) }

// SetMode switches layout mode. Unknown names are ignored and return false.
func (e *Engine) SetMode(name string) bool { return e.ctrl.SetMode(name) }

// Tick advances the animation by dt seconds.
func (e *Engine) Tick(dt float64) { e.ctrl.Tick(dt) }

// PointerMove hit-tests the pointer and updates the hovered skill.
func (e *Engine) PointerMove(x, y float64) (int, bool) {
	prev, _ := e.hit.Hovered()
	i, ok := e.hit.HitTest(x, y)
	if i != prev {
		observability.Engine().OnHoverChange(prev, i)
	}
	return i, ok
}

// PointerLeave clears the hovered skill.
func (e *Engine) PointerLeave() {
	prev, ok := e.hit.Hovered()
	e.hit.ClearHover()
	if ok {
		observability.Engine().OnHoverChange(prev, -1)
	}
}

// Find reports the skill under (x, y) without changing hover state.
func (e *Engine) Find(x, y float64) (int, bool) { return e.hit.Find(x, y) }

// Hovered returns the hovered skill index.
func (e *Engine) Hovered() (int, bool) { return e.hit.Hovered() }

// HoveredSkill returns the hovered skill record for a detail panel.
func (e *Engine) HoveredSkill() (skills.Skill, bool) {
	i, ok := e.hit.Hovered()
	if !ok {
		return skills.Skill{}, false
	}
	return e.reg.ByIndex(i)
}

// Skill returns the skill with the given ID.
func (e *Engine) Skill(id int) (skills.Skill, bool) { return e.reg.ByIndex(id) }
