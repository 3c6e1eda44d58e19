package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistLessSharedEndpointCloserWins(t *testing.T) {
	observer := Vector{0, 0}
	less := distLess(observer)

	// x and y share endpoint (5,0); y's far endpoint is farther from observer
	// along the same side of line x.
	x := Segment{A: Vector{5, 0}, B: Vector{5, 5}}
	y := Segment{A: Vector{5, 0}, B: Vector{10, 10}}

	assert.True(t, less(x, y))
	assert.False(t, less(y, x))
}

func TestDistLessIdenticalSegmentsNeitherCloser(t *testing.T) {
	observer := Vector{0, 0}
	less := distLess(observer)
	x := Segment{A: Vector{1, 1}, B: Vector{1, -1}}
	y := Segment{A: Vector{1, -1}, B: Vector{1, 1}}

	assert.False(t, less(x, y))
	assert.False(t, less(y, x))
}

func TestDistLessNoSharedEndpointNearerSegmentWins(t *testing.T) {
	observer := Vector{0, 0}
	less := distLess(observer)

	near := Segment{A: Vector{1, 1}, B: Vector{1, -1}}
	far := Segment{A: Vector{2, 1}, B: Vector{2, -1}}

	assert.True(t, less(near, far))
	assert.False(t, less(far, near))
}

func TestDistLessCollinearFallsBackToEuclidean(t *testing.T) {
	observer := Vector{0, 0}
	less := distLess(observer)

	near := Segment{A: Vector{1, 0}, B: Vector{2, 0}}
	far := Segment{A: Vector{3, 0}, B: Vector{4, 0}}

	assert.True(t, less(near, far))
	assert.False(t, less(far, near))
}
