package anim

import "math"

// DefaultAlpha is the per-tick blend fraction used by [FixedSmoothing].
const DefaultAlpha = 0.05

// Smoothing decides how far Current moves toward Target on a tick of
// length dt. Alpha must return a value in (0, 1].
type Smoothing interface {
	Alpha(dt float64) float64
}

// FixedSmoothing blends by the same fraction every tick regardless of dt.
// Motion therefore speeds up with the frame rate; this matches the
// classic 60 fps behavior.
type FixedSmoothing float64

// Alpha returns the fixed fraction clamped to (0, 1].
func (f FixedSmoothing) Alpha(float64) float64 {
	return clampAlpha(float64(f))
}

// ExponentialSmoothing is frame-rate independent: two ticks of dt/2 move
// a node exactly as far as one tick of dt. The value is the rate k in 1/s;
// a rate of about 3.08 reproduces DefaultAlpha at 60 fps.
type ExponentialSmoothing float64

// Alpha returns 1 - exp(-k*dt).
func (k ExponentialSmoothing) Alpha(dt float64) float64 {
	return clampAlpha(1 - math.Exp(-float64(k)*dt))
}

// RateForAlpha returns the exponential rate that yields alpha on ticks of
// length dt.
func RateForAlpha(alpha, dt float64) ExponentialSmoothing {
	if dt <= 0 || alpha <= 0 || alpha >= 1 {
		return ExponentialSmoothing(0)
	}
	return ExponentialSmoothing(-math.Log(1-alpha) / dt)
}

func clampAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a) || a <= 0:
		return math.SmallestNonzeroFloat64
	case a > 1:
		return 1
	}
	return a
}

// Bob is the vertical oscillation layered on top of smoothed positions.
type Bob struct {
	Amplitude float64 // pixels
	Frequency float64 // radians per second
	Phase     float64 // radians added per node index
}

// DefaultBob is the gentle float applied to every node.
var DefaultBob = Bob{Amplitude: 10, Frequency: 2, Phase: 0.5}

// Offset returns the vertical displacement of node i at time elapsed.
func (b Bob) Offset(i int, elapsed float64) float64 {
	return b.Amplitude * math.Sin(elapsed*b.Frequency+float64(i)*b.Phase)
}
