package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestPolygon(t *testing.T) {
	observer := Point{X: 0, Y: 0}
	box := []Segment{
		{A: Point{X: -250, Y: -250}, B: Point{X: -250, Y: 250}},
		{A: Point{X: -250, Y: 250}, B: Point{X: 250, Y: 250}},
		{A: Point{X: 250, Y: 250}, B: Point{X: 250, Y: -250}},
		{A: Point{X: 250, Y: -250}, B: Point{X: -250, Y: -250}},
	}

	vertices, err := Polygon(observer, box)
	assert.NoError(t, err)
	assert.Len(t, vertices, 4)
}

func TestPolygonEmpty(t *testing.T) {
	vertices, err := Polygon(Point{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, vertices)
}
