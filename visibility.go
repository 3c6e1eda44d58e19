// A 2D visibility polygon package for Go.
//
// This package computes the visibility polygon of a point observer amid a
// set of opaque line-segment obstacles: the maximal simple polygon around
// the observer such that every interior point is reachable by an
// unobstructed straight segment from the observer.
package visibility

import "github.com/brinkwell/visibility/core"

type Point = core.Vector
type Segment = core.Segment

// Polygon computes the visibility polygon of observer amid obstacles and
// returns its vertices in clockwise order, starting at the angular sweep's
// initial ray (straight up from observer). It returns an empty slice, with
// no error, if obstacles is empty or every segment in it is collinear with
// observer.
//
// Obstacles need not form a closed shape and may be disjoint. Obstacles that
// cross or overlap away from a shared endpoint violate an internal
// precondition of the sweep. Polygon returns an error when the sweep detects
// such a violation (a ray cast toward an event point misses the nearest
// active obstacle); otherwise such input is not checked and the returned
// polygon may be wrong.
func Polygon(observer Point, obstacles []Segment) (result []Point, err error) {
	defer func() {
		recoveredErr := core.HandlePolygonPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return core.Polygon(observer, obstacles), nil
}
