package progression

import "math"

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// SnapNearest returns the member of weights closest to v. With an empty
// list it falls back to plain 2.5-unit rounding.
func SnapNearest(v float64, weights []float64) float64 {
	if len(weights) == 0 {
		return RoundTo(v, 2.5)
	}
	best := weights[0]
	for _, w := range weights[1:] {
		if math.Abs(w-v) < math.Abs(best-v) {
			best = w
		}
	}
	return best
}

// NextBelow returns the largest member of weights strictly below v.
func NextBelow(v float64, weights []float64) (float64, bool) {
	found := false
	best := 0.0
	for _, w := range weights {
		if w < v && (!found || w > best) {
			best = w
			found = true
		}
	}
	return best, found
}

// NextAbove returns the smallest member of weights strictly above v.
func NextAbove(v float64, weights []float64) (float64, bool) {
	found := false
	best := 0.0
	for _, w := range weights {
		if w > v && (!found || w < best) {
			best = w
			found = true
		}
	}
	return best, found
}

// SnapDown returns the largest member of weights at or below v. With no
// qualifying member it returns the smallest weight in the list; with an
// empty list it rounds to 2.5.
func SnapDown(v float64, weights []float64) float64 {
	if len(weights) == 0 {
		return RoundTo(v, 2.5)
	}
	found := false
	best := 0.0
	smallest := weights[0]
	for _, w := range weights {
		if w < smallest {
			smallest = w
		}
		if w <= v && (!found || w > best) {
			best = w
			found = true
		}
	}
	if !found {
		return smallest
	}
	return best
}
