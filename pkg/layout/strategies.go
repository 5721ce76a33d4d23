package layout

import "math"

// Orbit places nodes evenly on a slowly rotating circle.
type Orbit struct{}

func (Orbit) Mode() Mode { return ModeOrbit }

func (Orbit) Target(i, n int, t float64, c Canvas) Point {
	center := c.Center()
	if outOfRange(i, n) {
		return center
	}
	r := c.Radius()
	angle := 2*math.Pi*float64(i)/float64(n) + 0.2*t
	return Point{center.X + r*math.Cos(angle), center.Y + r*math.Sin(angle)}
}

// Float drifts each node along its own Lissajous-like path. The phase is
// derived from the index so motion is deterministic.
type Float struct{}

func (Float) Mode() Mode { return ModeFloat }

func (Float) Target(i, n int, t float64, c Canvas) Point {
	center := c.Center()
	if outOfRange(i, n) {
		return center
	}
	seed := float64(i) * 0.1
	return Point{
		X: center.X + math.Sin(seed*13.7+t*0.3)*c.Width*0.35,
		Y: center.Y + math.Cos(seed*17.3+t*0.2)*c.Height*0.35,
	}
}

// Grid places nodes at cell centers of a near-square grid, row-major.
type Grid struct{}

func (Grid) Mode() Mode { return ModeGrid }

// GridMargin returns the inset kept around the grid on canvas c.
func GridMargin(c Canvas) float64 {
	return math.Min(80, 0.2*math.Min(c.Width, c.Height))
}

// GridShape returns the column and row counts used for n nodes.
func GridShape(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

func (Grid) Target(i, n int, _ float64, c Canvas) Point {
	if outOfRange(i, n) {
		return c.Center()
	}
	cols, rows := GridShape(n)
	m := GridMargin(c)
	cellW := (c.Width - 2*m) / float64(cols)
	cellH := (c.Height - 2*m) / float64(rows)
	col, row := i%cols, i/cols
	return Point{
		X: m + (float64(col)+0.5)*cellW,
		Y: m + (float64(row)+0.5)*cellH,
	}
}

// Wave spreads nodes across the width on a travelling sine wave.
type Wave struct{}

func (Wave) Mode() Mode { return ModeWave }

func (Wave) Target(i, n int, t float64, c Canvas) Point {
	center := c.Center()
	if outOfRange(i, n) {
		return center
	}
	spacing := c.Width / float64(n)
	return Point{
		X: float64(i)*spacing + spacing/2,
		Y: center.Y + math.Sin(float64(i)*0.8+t)*c.Radius()/2,
	}
}

// Spiral winds nodes outward from the center, capped at the shared radius.
type Spiral struct{}

func (Spiral) Mode() Mode { return ModeSpiral }

func (Spiral) Target(i, n int, t float64, c Canvas) Point {
	center := c.Center()
	if outOfRange(i, n) {
		return center
	}
	angle := float64(i)*0.5 + t*0.1
	r := math.Min(50+float64(i)*20, c.Radius())
	return Point{center.X + r*math.Cos(angle), center.Y + r*math.Sin(angle)}
}
