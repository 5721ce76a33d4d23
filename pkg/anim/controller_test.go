package anim

import (
	"math"
	"testing"

	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/observability"
)

type count int

func (c count) Len() int { return int(c) }

func ready(t *testing.T, n int, w, h float64, opts ...Option) *Controller {
	t.Helper()
	c := New(opts...)
	c.Attach(count(n))
	c.Resize(w, h)
	if c.State() != Ready {
		t.Fatalf("State() = %v, want ready", c.State())
	}
	return c
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
	}{
		{"attach then resize", func(c *Controller) { c.Attach(count(3)); c.Resize(400, 300) }},
		{"resize then attach", func(c *Controller) { c.Resize(400, 300); c.Attach(count(3)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if c.State() != Uninitialized {
				t.Fatalf("State() = %v, want uninitialized", c.State())
			}
			tt.setup(c)
			if c.State() != Ready {
				t.Fatalf("State() = %v, want ready", c.State())
			}
			for i := 0; i < 3; i++ {
				p, _ := c.Current(i)
				if p != (layout.Point{X: 200, Y: 150}) {
					t.Errorf("Current(%d) = %v, want canvas center", i, p)
				}
			}
			c.Tick(1.0 / 60)
			if c.State() != Running {
				t.Errorf("State() = %v, want running", c.State())
			}
		})
	}
}

func TestTickIgnoredWhenUninitialized(t *testing.T) {
	c := New()
	c.Attach(count(2))
	c.Tick(1)
	if c.Elapsed() != 0 || c.State() != Uninitialized {
		t.Errorf("Tick before Resize: elapsed = %v, state = %v", c.Elapsed(), c.State())
	}
	if _, ok := c.Current(0); ok {
		t.Error("Current(0) ok before initialization")
	}
	if c.Positions() != nil {
		t.Error("Positions() non-nil before initialization")
	}
}

func TestTickInvalidDt(t *testing.T) {
	c := ready(t, 3, 400, 400)
	before := c.Positions()
	for _, dt := range []float64{-0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		c.Tick(dt)
	}
	if c.Elapsed() != 0 || c.State() != Ready {
		t.Errorf("elapsed = %v, state = %v, want 0/ready", c.Elapsed(), c.State())
	}
	after := c.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("node %d moved on ignored tick: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestTickZeroDtStartsRunning(t *testing.T) {
	c := ready(t, 3, 400, 400)
	before := c.Positions()
	c.Tick(0)
	if c.State() != Running {
		t.Errorf("State() after Tick(0) = %v, want running", c.State())
	}
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after Tick(0) = %v, want 0", c.Elapsed())
	}
	after := c.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("node %d moved on Tick(0): %v -> %v", i, before[i], after[i])
		}
	}
}

func TestDistanceStrictlyDecreases(t *testing.T) {
	// Grid targets do not depend on time.
	c := ready(t, 5, 800, 600, WithMode("grid"))
	prev := make([]float64, c.Len())
	for i := range prev {
		cur, _ := c.Current(i)
		tgt, _ := c.Target(i)
		prev[i] = cur.Dist(tgt)
	}
	for tick := 0; tick < 100; tick++ {
		c.Tick(1.0 / 60)
		for i := range prev {
			cur, _ := c.Current(i)
			tgt, _ := c.Target(i)
			d := cur.Dist(tgt)
			if prev[i] > 0 && d >= prev[i] {
				t.Fatalf("tick %d node %d: distance %v did not shrink from %v", tick, i, d, prev[i])
			}
			prev[i] = d
		}
	}
}

func TestFixedSmoothingStep(t *testing.T) {
	c := ready(t, 4, 400, 400, WithMode("grid"), WithBob(Bob{}))
	c.Tick(0.016)
	// Center (200,200) toward (140,140) by 5%.
	p, _ := c.Current(0)
	if math.Abs(p.X-197) > 1e-9 || math.Abs(p.Y-197) > 1e-9 {
		t.Errorf("Current(0) = %v, want (197,197)", p)
	}
}

func TestModeSwitchDeltaBounded(t *testing.T) {
	const dt = 1.0 / 60
	c := ready(t, 8, 800, 600)
	for i := 0; i < 30; i++ {
		c.Tick(dt)
	}
	before := c.Positions()
	if !c.SetMode("spiral") {
		t.Fatal("SetMode(spiral) = false")
	}
	c.Tick(dt)
	after := c.Positions()

	diag := math.Hypot(800, 600)
	bob := DefaultBob
	bound := DefaultAlpha*diag + bob.Amplitude*bob.Frequency*dt
	for i := range before {
		if d := before[i].Dist(after[i]); d > bound {
			t.Errorf("node %d moved %v after mode switch, bound %v", i, d, bound)
		}
	}
}

func TestSetMode(t *testing.T) {
	c := New()
	if c.Mode() != layout.ModeOrbit {
		t.Errorf("default Mode() = %v, want orbit", c.Mode())
	}
	if !c.SetMode("WAVE") || c.Mode() != layout.ModeWave {
		t.Errorf("SetMode(WAVE): mode = %v", c.Mode())
	}
	if c.SetMode("tower") {
		t.Error("SetMode(tower) = true, want false")
	}
	if c.Mode() != layout.ModeWave {
		t.Errorf("Mode() after unknown = %v, want wave", c.Mode())
	}
}

func TestResizeClampsAndSnaps(t *testing.T) {
	c := ready(t, 6, 400, 400)
	c.Resize(0, 0)
	if got := c.Canvas(); got != (layout.Canvas{Width: 1, Height: 1}) {
		t.Errorf("Canvas() = %v, want 1x1", got)
	}
	for i := 0; i < c.Len(); i++ {
		cur, _ := c.Current(i)
		tgt, _ := c.Target(i)
		if cur != tgt {
			t.Errorf("node %d not snapped: %v vs %v", i, cur, tgt)
		}
	}
	c.Tick(1.0 / 60)
	for i, p := range c.Positions() {
		if !p.IsFinite() {
			t.Errorf("Positions()[%d] = %v, want finite", i, p)
		}
	}

	c.Resize(math.NaN(), -20)
	if got := c.Canvas(); got != (layout.Canvas{Width: 1, Height: 1}) {
		t.Errorf("Canvas() = %v, want 1x1", got)
	}
}

func TestDisplayAddsBob(t *testing.T) {
	c := ready(t, 3, 400, 400)
	c.Tick(0.25)
	for i := 0; i < 3; i++ {
		cur, _ := c.Current(i)
		disp, _ := c.Display(i)
		want := 10 * math.Sin(0.25*2+float64(i)*0.5)
		if disp.X != cur.X || math.Abs(disp.Y-cur.Y-want) > 1e-9 {
			t.Errorf("Display(%d) = %v, Current = %v, want bob %v", i, disp, cur, want)
		}
	}
	if _, ok := c.Display(3); ok {
		t.Error("Display(3) ok for out-of-range index")
	}
}

func TestExponentialSmoothing(t *testing.T) {
	k := RateForAlpha(DefaultAlpha, 1.0/60)
	if a := k.Alpha(1.0 / 60); math.Abs(a-DefaultAlpha) > 1e-12 {
		t.Errorf("Alpha(1/60) = %v, want %v", a, DefaultAlpha)
	}

	// Two half ticks land where one full tick does.
	one := ready(t, 4, 400, 400, WithMode("grid"), WithSmoothing(k))
	two := ready(t, 4, 400, 400, WithMode("grid"), WithSmoothing(k))
	one.Tick(0.1)
	two.Tick(0.05)
	two.Tick(0.05)
	for i := 0; i < 4; i++ {
		a, _ := one.Current(i)
		b, _ := two.Current(i)
		if a.Dist(b) > 1e-9 {
			t.Errorf("node %d: one tick %v, two ticks %v", i, a, b)
		}
	}
}

func TestSmoothingClamp(t *testing.T) {
	tests := []struct {
		s    Smoothing
		dt   float64
		want float64
	}{
		{FixedSmoothing(0.05), 1, 0.05},
		{FixedSmoothing(3), 1, 1},
		{ExponentialSmoothing(1e9), 1, 1},
	}
	for _, tt := range tests {
		if got := tt.s.Alpha(tt.dt); got != tt.want {
			t.Errorf("%T(%v).Alpha(%v) = %v, want %v", tt.s, tt.s, tt.dt, got, tt.want)
		}
	}
	if got := FixedSmoothing(0).Alpha(1); got <= 0 {
		t.Errorf("FixedSmoothing(0).Alpha = %v, want > 0", got)
	}
}

func TestAttachEmpty(t *testing.T) {
	c := ready(t, 0, 400, 400)
	c.Tick(1)
	if c.Len() != 0 || len(c.Positions()) != 0 {
		t.Errorf("empty controller Len = %d", c.Len())
	}
}

func TestHooksFire(t *testing.T) {
	h := &recordingHooks{}
	observability.SetEngineHooks(h)
	defer observability.Reset()

	c := ready(t, 2, 300, 200)
	c.SetMode("orbit") // unchanged
	c.SetMode("grid")
	c.Tick(0.1)

	if h.resizes != 1 || h.modes != 1 || h.ticks != 1 {
		t.Errorf("hooks = %+v, want 1 resize, 1 mode change, 1 tick", *h)
	}
}

type recordingHooks struct {
	observability.NoopEngineHooks
	resizes, modes, ticks int
}

func (r *recordingHooks) OnResize(float64, float64)   { r.resizes++ }
func (r *recordingHooks) OnModeChange(string, string) { r.modes++ }
func (r *recordingHooks) OnTick(float64, float64)     { r.ticks++ }
