package core

// Intersects finds the nearest intersection point of r with segment s, using
// EpsilonIntersection for its own tolerant comparisons (the collinearity
// check in the parallel case goes through Orient, which uses
// EpsilonDefault). It never fails with an
// error; absence of an intersection is reported by the boolean result, and
// point is unspecified when ok is false.
func (r Ray) Intersects(s Segment) (point Vector, ok bool) {
	const eps = EpsilonIntersection

	ao := r.Origin.Sub(s.A)
	ab := s.B.Sub(s.A)
	det := Cross(ab, r.Direction)

	if ApproxEqual(det, 0, eps) {
		// r's direction is parallel to s. The only way r can still hit s is
		// if the two are collinear, in which case the hit (if any) is r's
		// origin when s straddles it, or otherwise whichever of s's endpoints
		// is nearest along r's direction.
		if Orient(s.A, s.B, r.Origin) != Collinear {
			return Vector{}, false
		}

		distA := Dot(ao, r.Direction)
		distB := Dot(r.Origin.Sub(s.B), r.Direction)

		switch {
		case distA > 0 && distB > 0:
			return Vector{}, false
		case (distA > 0) != (distB > 0):
			return r.Origin, true
		case distA > distB:
			return s.A, true
		default:
			return s.B, true
		}
	}

	u := Cross(ao, r.Direction) / det
	if StrictlyLess(u, 0, eps) || StrictlyLess(1, u, eps) {
		return Vector{}, false
	}

	t := -Cross(ab, ao) / det
	point = r.Origin.Add(r.Direction.Scale(t))
	ok = ApproxEqual(t, 0, eps) || t > 0
	return point, ok
}
