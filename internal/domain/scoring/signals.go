package scoring

import "math"

// sigmoid maps any real value into (0,1).
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// risingStep is a smooth step that activates as x climbs past mid.
// steep controls how sharp the transition is.
func risingStep(x, mid, steep float64) float64 { return sigmoid((x - mid) * steep) }

// fallingStep is a smooth step that activates as x drops below mid.
func fallingStep(x, mid, steep float64) float64 { return sigmoid((mid - x) * steep) }

// bell is a Gaussian bump peaking at 1.0 when x == center.
func bell(x, center, width float64) float64 {
	d := x - center
	return math.Exp(-(d * d) / (2 * width * width))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

// round4 rounds to 4 decimal places so repeated scoring of the same snapshot
// is byte-identical across platforms.
func round4(x float64) float64 { return math.Round(x*10000) / 10000 }
