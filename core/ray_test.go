package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rayTo(dir Vector) Ray {
	return Ray{Origin: Vector{0, 0}, Direction: dir}
}

func TestRayIntersectsMissesBehindXAxisSegment(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{-1, -1}, B: Vector{-1, 1}}
	_, ok := r.Intersects(s)
	assert.False(t, ok)
}

func TestRayIntersectsMissesJustBehindOrigin(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{-1e-3, -1}, B: Vector{-1e-3, 1}}
	_, ok := r.Intersects(s)
	assert.False(t, ok)
}

func TestRayIntersectsMissesCollinearSegmentEntirelyBehind(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{-2, 0}, B: Vector{-1, 0}}
	_, ok := r.Intersects(s)
	assert.False(t, ok)
}

func TestRayIntersectsHitsSegmentStraddlingOrigin(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{0, -1}, B: Vector{0, 1}}
	point, ok := r.Intersects(s)
	assert.True(t, ok)
	assert.True(t, ApproxEqualVec(point, Vector{0, 0}, EpsilonIntersection))
}

func TestRayIntersectsHitsAtNearEndpoint(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{-1, 0}, B: Vector{0, 0}}
	point, ok := r.Intersects(s)
	assert.True(t, ok)
	assert.True(t, ApproxEqualVec(point, Vector{0, 0}, EpsilonIntersection))
}

func TestRayIntersectsHitsPerpendicularSegment(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{2, 1}, B: Vector{2, -1}}
	point, ok := r.Intersects(s)
	assert.True(t, ok)
	assert.True(t, ApproxEqualVec(point, Vector{2, 0}, EpsilonIntersection))
}

func TestRayIntersectsHitsCollinearSegmentAhead(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{2, 0}, B: Vector{3, 0}}
	point, ok := r.Intersects(s)
	assert.True(t, ok)
	assert.True(t, ApproxEqualVec(point, Vector{2, 0}, EpsilonIntersection))
}

func TestRayIntersectsHitsOffAxisSegment(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{1, 0}, B: Vector{1, -1}}
	point, ok := r.Intersects(s)
	assert.True(t, ok)
	assert.True(t, ApproxEqualVec(point, Vector{1, 0}, EpsilonIntersection))
}

func TestRayIntersectsInvariantUnderSegmentReversal(t *testing.T) {
	r := rayTo(Vector{1, 0})
	s := Segment{A: Vector{2, 1}, B: Vector{2, -1}}
	reversed := Segment{A: s.B, B: s.A}

	p1, ok1 := r.Intersects(s)
	p2, ok2 := r.Intersects(reversed)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, p1, p2)
}
