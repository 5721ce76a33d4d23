package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestCanvasRadius(t *testing.T) {
	tests := []struct {
		c    Canvas
		want float64
	}{
		{Canvas{400, 400}, 120},
		{Canvas{800, 300}, 90},
		{Canvas{2000, 1500}, MaxRadius},
		{Canvas{1, 1}, 0.3},
	}
	for _, tt := range tests {
		if got := tt.c.Radius(); !near(got, tt.want) {
			t.Errorf("Canvas%v.Radius() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestOrbitRadius(t *testing.T) {
	c := Canvas{Width: 800, Height: 600}
	center := c.Center()
	for _, n := range []int{1, 3, 7, 20} {
		for _, tm := range []float64{0, 1.5, 42} {
			for i := 0; i < n; i++ {
				p := Orbit{}.Target(i, n, tm, c)
				if d := p.Dist(center); !near(d, c.Radius()) {
					t.Errorf("orbit n=%d i=%d t=%v: dist = %v, want %v", n, i, tm, d, c.Radius())
				}
			}
		}
	}
}

func TestOrbitFirstNode(t *testing.T) {
	c := Canvas{Width: 400, Height: 400}
	p := Orbit{}.Target(0, 4, 0, c)
	if !near(p.X, 320) || !near(p.Y, 200) {
		t.Errorf("orbit(0,4,0) = %v, want (320,200)", p)
	}
}

func TestGridDistinct(t *testing.T) {
	c := Canvas{Width: 1024, Height: 768}
	for n := 1; n <= 30; n++ {
		seen := make(map[Point]int, n)
		for i := 0; i < n; i++ {
			p := Grid{}.Target(i, n, 0, c)
			if j, dup := seen[p]; dup {
				t.Fatalf("grid n=%d: nodes %d and %d share %v", n, j, i, p)
			}
			seen[p] = i
		}
	}
}

func TestGridFourOn400(t *testing.T) {
	c := Canvas{Width: 400, Height: 400}
	want := []Point{{140, 140}, {260, 140}, {140, 260}, {260, 260}}
	for i, w := range want {
		got := Grid{}.Target(i, 4, 0, c)
		if !near(got.X, w.X) || !near(got.Y, w.Y) {
			t.Errorf("grid(%d,4) = %v, want %v", i, got, w)
		}
	}
}

func TestGridShape(t *testing.T) {
	tests := []struct {
		n          int
		cols, rows int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 1},
		{4, 2, 2},
		{5, 3, 2},
		{10, 4, 3},
	}
	for _, tt := range tests {
		cols, rows := GridShape(tt.n)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("GridShape(%d) = (%d,%d), want (%d,%d)", tt.n, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestWave(t *testing.T) {
	c := Canvas{Width: 500, Height: 400}
	p := Wave{}.Target(0, 5, 0, c)
	if !near(p.X, 50) || !near(p.Y, 200) {
		t.Errorf("wave(0,5,0) = %v, want (50,200)", p)
	}
	for i := 0; i < 5; i++ {
		p := Wave{}.Target(i, 5, 3.3, c)
		if math.Abs(p.Y-200) > c.Radius()/2+eps {
			t.Errorf("wave(%d) y = %v outside amplitude", i, p.Y)
		}
	}
}

func TestSpiralRadiusCapped(t *testing.T) {
	c := Canvas{Width: 400, Height: 400}
	center := c.Center()
	for i := 0; i < 12; i++ {
		d := Spiral{}.Target(i, 12, 7, c).Dist(center)
		want := math.Min(50+20*float64(i), c.Radius())
		if !near(d, want) {
			t.Errorf("spiral(%d) dist = %v, want %v", i, d, want)
		}
	}
}

func TestFloatDeterministic(t *testing.T) {
	c := Canvas{Width: 640, Height: 480}
	a := Float{}.Target(3, 8, 12.5, c)
	b := Float{}.Target(3, 8, 12.5, c)
	if a != b {
		t.Errorf("float not deterministic: %v != %v", a, b)
	}
	if math.Abs(a.X-320) > 0.35*640+eps || math.Abs(a.Y-240) > 0.35*480+eps {
		t.Errorf("float(3) = %v outside drift box", a)
	}
}

func TestDegenerateInputs(t *testing.T) {
	c := Canvas{Width: 300, Height: 200}
	center := c.Center()
	cases := []struct{ i, n int }{{0, 0}, {0, -1}, {-1, 5}, {5, 5}, {9, 3}}
	for _, s := range strategies {
		for _, tc := range cases {
			if p := s.Target(tc.i, tc.n, 1, c); p != center {
				t.Errorf("%s.Target(%d,%d) = %v, want center %v", s.Mode(), tc.i, tc.n, p, center)
			}
		}
	}
}

func TestAllModesFinite(t *testing.T) {
	for _, c := range []Canvas{{1, 1}, {1, 900}, {1920, 1080}} {
		for _, s := range strategies {
			for i := 0; i < 17; i++ {
				if p := s.Target(i, 17, 99.9, c); !p.IsFinite() {
					t.Errorf("%s on %v: node %d = %v", s.Mode(), c, i, p)
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Mode
		ok   bool
	}{
		{"orbit", ModeOrbit, true},
		{"GRID", ModeGrid, true},
		{"  Spiral ", ModeSpiral, true},
		{"wave", ModeWave, true},
		{"float", ModeFloat, true},
		{"tower", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		s, ok := Lookup(tt.name)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && s.Mode() != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.name, s.Mode(), tt.want)
		}
	}
}

func TestModes(t *testing.T) {
	want := []Mode{ModeOrbit, ModeFloat, ModeGrid, ModeWave, ModeSpiral}
	got := Modes()
	if len(got) != len(want) {
		t.Fatalf("Modes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if ForMode("bogus").Mode() != DefaultMode {
		t.Errorf("ForMode(bogus) = %v, want %v", ForMode("bogus").Mode(), DefaultMode)
	}
}

func TestTargetsReusesBuffer(t *testing.T) {
	buf := make([]Point, 0, 8)
	got := Targets(Grid{}, 4, 0, Canvas{400, 400}, buf)
	if len(got) != 4 || &got[0] != &buf[:1][0] {
		t.Errorf("Targets did not reuse buffer")
	}
	if got[3] != (Point{260, 260}) {
		t.Errorf("Targets()[3] = %v, want (260,260)", got[3])
	}
}
