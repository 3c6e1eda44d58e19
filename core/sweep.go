package core

import (
	"sort"

	"github.com/brinkwell/visibility/dbg"
)

type eventType int8

const (
	startEvent eventType = iota
	endEvent
)

// event is a sweep stopping-point at either the clockwise-first (start) or
// clockwise-second (end) endpoint of an obstacle. segment.A is always the
// event's own point; an end event carries its segment reversed so that its
// point() is the second-swept endpoint, while Erase still finds the matching
// element because distLess is symmetric under endpoint swap (see state.go).
type event struct {
	typ     eventType
	segment Segment
}

func (e event) point() Vector {
	return e.segment.A
}

// generateEvents produces the two sweep events for each non-collinear
// obstacle and seeds the initial active state with whatever obstacles the
// upward vertical ray from observer already crosses. Segments collinear
// with observer are dropped entirely; they can neither occlude nor be seen
// edge-on.
func generateEvents(observer Vector, obstacles []Segment, state *sweepState) []event {
	events := make([]event, 0, len(obstacles)*2)

	for _, seg := range obstacles {
		o := Orient(observer, seg.A, seg.B)
		if o == Collinear {
			continue
		}

		var startSeg, endSeg Segment
		if o == Right {
			startSeg = seg
			endSeg = Segment{A: seg.B, B: seg.A}
		} else {
			startSeg = Segment{A: seg.B, B: seg.A}
			endSeg = seg
		}
		events = append(events,
			event{typ: startEvent, segment: startSeg},
			event{typ: endEvent, segment: endSeg},
		)

		a, b := seg.A, seg.B
		if a.X > b.X {
			a, b = b, a
		}
		crossesVertical := ApproxEqual(b.X, observer.X, EpsilonDefault) ||
			(a.X < observer.X && observer.X < b.X)
		if crossesVertical && Orient(a, b, observer) == Right {
			state.Insert(seg)
		}
	}

	return events
}

// sortEvents orders events by clockwise angle around observer, breaking ties
// between coincident points by putting end events before start events (an
// outgoing segment at a shared corner must be added to the state only after
// the incoming one has been removed, so distLess is never queried outside
// its preconditions).
func sortEvents(observer Vector, events []event) {
	angleCmp := angleLess(observer)
	sort.Slice(events, func(i, j int) bool {
		pi, pj := events[i].point(), events[j].point()
		if ApproxEqualVec(pi, pj, EpsilonDefault) {
			return events[i].typ == endEvent && events[j].typ == startEvent
		}
		return angleCmp(pi, pj)
	})
}

// Polygon computes the visibility polygon of observer amid obstacles and
// returns its vertices in clockwise order. It panics with an InvariantError
// (see errors.go) if an internal invariant is violated; callers that want a
// returned error instead should go through the root visibility package.
func Polygon(observer Vector, obstacles []Segment) []Vector {
	distCmp := distLess(observer)
	state := newSweepState(distCmp)
	events := generateEvents(observer, obstacles, state)
	sortEvents(observer, events)

	vertices := make([]Vector, 0, len(events)+2)
	for _, e := range events {
		if e.typ == endEvent {
			state.Erase(e.segment)
		}

		switch {
		case state.Empty():
			vertices = append(vertices, e.point())
		case distCmp(e.segment, state.Min()):
			nearest := state.Min()
			ray := Ray{Origin: observer, Direction: e.point().Sub(observer)}
			intersection, ok := ray.Intersects(nearest)
			assertf(ok, "ray from observer to %v did not hit nearest state segment %s (%v)", e.point(), dbg.Name(&nearest), nearest)

			if e.typ == startEvent {
				vertices = append(vertices, intersection, e.point())
			} else {
				vertices = append(vertices, e.point(), intersection)
			}
		}

		if e.typ == startEvent {
			state.Insert(e.segment)
		}
	}

	return removeCollinear(vertices)
}

// removeCollinear compacts vertices in place, cyclically dropping any vertex
// whose neighbors (the previously kept vertex and the next raw vertex) are
// collinear with it. The first kept vertex is tested against the last raw
// vertex as its "previous". The last vertex's "next" is whatever index 0
// holds by then: the first kept vertex, or the first raw vertex if none has
// been kept yet.
func removeCollinear(vertices []Vector) []Vector {
	n := len(vertices)
	if n < 3 {
		return vertices
	}

	top := 0
	for i := 0; i < n; i++ {
		prevIdx := top - 1
		if top == 0 {
			prevIdx = n - 1
		}
		nextIdx := i + 1
		if nextIdx == n {
			nextIdx = 0
		}

		if Orient(vertices[prevIdx], vertices[i], vertices[nextIdx]) != Collinear {
			vertices[top] = vertices[i]
			top++
		}
	}

	return vertices[:top]
}
