package core

// angleLess returns a strict total pre-order over points around observer,
// increasing clockwise starting from the ray pointing in the +y direction.
// The returned function is the angular comparator of the distilled spec
// (cmp_ang); it is a closure rather than a struct since it is only ever used
// as a sort predicate for the lifetime of a single sweep.
func angleLess(observer Vector) func(a, b Vector) bool {
	return func(a, b Vector) bool {
		isALeft := StrictlyLess(a.X, observer.X, EpsilonDefault)
		isBLeft := StrictlyLess(b.X, observer.X, EpsilonDefault)
		if isALeft != isBLeft {
			return isBLeft
		}

		if ApproxEqual(a.X, observer.X, EpsilonDefault) && ApproxEqual(b.X, observer.X, EpsilonDefault) {
			if !StrictlyLess(a.Y, observer.Y, EpsilonDefault) || !StrictlyLess(b.Y, observer.Y, EpsilonDefault) {
				return StrictlyLess(b.Y, a.Y, EpsilonDefault)
			}
			return StrictlyLess(a.Y, b.Y, EpsilonDefault)
		}

		oa := a.Sub(observer)
		ob := b.Sub(observer)
		det := Cross(oa, ob)
		if ApproxEqual(det, 0, EpsilonDefault) {
			return LengthSquared(oa) < LengthSquared(ob)
		}
		return det < 0
	}
}
