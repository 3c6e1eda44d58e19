package core

import "math"

// EpsilonDefault is float64 machine epsilon, the default tolerance for every
// tolerant comparison in this package except ray/segment intersection.
const EpsilonDefault = 2.220446049250313e-16

// EpsilonIntersection is the looser tolerance used by Ray.Intersects. It is
// deliberately larger than EpsilonDefault so that grazing endpoint hits are
// not lost; tightening it silently breaks the main sweep loop's invariant
// that the nearest state segment always intersects the current ray.
const EpsilonIntersection = 1e-4

// ApproxEqual reports whether a and b are equal within a relative tolerance.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= math.Max(math.Abs(a), math.Abs(b))*eps
}

// StrictlyLess reports whether a is less than b by more than the relative
// tolerance, i.e. whether the two are distinguishable at this tolerance and
// a is the smaller of the pair.
func StrictlyLess(a, b, eps float64) bool {
	return (b - a) > math.Max(math.Abs(a), math.Abs(b))*eps
}

func signEps(x float64) int {
	lo := 0
	if StrictlyLess(0, x, EpsilonDefault) {
		lo = 1
	}
	hi := 0
	if StrictlyLess(x, 0, EpsilonDefault) {
		hi = 1
	}
	return lo - hi
}
