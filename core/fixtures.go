package core

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses obstacle fixtures out of SVGs. It is not a full (or even
// correct) SVG parser: it looks only at <polygon> and <polyline> elements'
// points attributes, ignoring style, transforms, and everything else. If
// anything goes wrong it logs and exits, since fixtures are test/demo data,
// never user input.
//
// Fixtures are available by name in testdata/, sans extension.

//go:embed testdata
var fixtures embed.FS

// LoadFixture parses every <polygon> and <polyline> element of the named
// fixture into obstacle Segments: a <polygon> closes its last point back to
// its first, a <polyline> does not.
func LoadFixture(name string) []Segment {
	fixture, err := fixtures.Open("testdata/" + name + ".svg")
	if err != nil {
		log.Fatalf("could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("failed to parse fixture %q: %v", name, err)
	}

	var segments []Segment
	for _, el := range rootEl.FindAll("polygon") {
		segments = append(segments, pointsToSegments(name, el.Attributes["points"], true)...)
	}
	for _, el := range rootEl.FindAll("polyline") {
		segments = append(segments, pointsToSegments(name, el.Attributes["points"], false)...)
	}
	return segments
}

func pointsToSegments(fixtureName, pointString string, closed bool) []Segment {
	points := parsePoints(fixtureName, pointString)
	if len(points) < 2 {
		log.Fatalf("fixture %q: need at least 2 points, got %d", fixtureName, len(points))
	}

	segments := make([]Segment, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		segments = append(segments, Segment{A: points[i], B: points[i+1]})
	}
	if closed {
		segments = append(segments, Segment{A: points[len(points)-1], B: points[0]})
	}
	return segments
}

func parsePoints(fixtureName, pointString string) []Vector {
	pointStrings := strings.Fields(pointString)
	points := make([]Vector, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("fixture %q: invalid point string %q", fixtureName, pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("fixture %q: invalid x value %q: %v", fixtureName, coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("fixture %q: invalid y value %q: %v", fixtureName, coords[1], err)
		}
		points = append(points, Vector{X: x, Y: y})
	}
	return points
}
