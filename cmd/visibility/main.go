// Demo CLI for the visibility package. Input on stdin is the observer point
// ("x y") followed by a blank line, then one or more blank-line-separated
// blocks of whitespace-separated points ("x y" per line), each block read
// pairwise into Segments: a two-point block is a single obstacle segment, a
// longer block is an open polyline of segments.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/brinkwell/visibility"
	"github.com/brinkwell/visibility/core"
	"github.com/brinkwell/visibility/render"
)

var (
	renderPath = kingpin.Flag("render", "write a PNG of the scene and computed polygon to this path").String()
	svgFixture = kingpin.Flag("svg", "load obstacles from a bundled core/testdata fixture instead of stdin").String()
	scale      = kingpin.Flag("scale", "pixels per unit when rendering").Default("1").Float64()
)

func main() {
	kingpin.Parse()

	var observer core.Vector
	var obstacles []core.Segment

	if *svgFixture != "" {
		obstacles = core.LoadFixture(*svgFixture)
		observer = core.Vector{X: 0, Y: 0}
	} else {
		observer, obstacles = readScene(os.Stdin)
	}

	polygon, err := visibility.Polygon(observer, obstacles)
	if err != nil {
		log.Fatalf("computing visibility polygon: %v", err)
	}

	printVertices(polygon)

	if *renderPath != "" {
		scene := render.Scene{Observer: observer, Obstacles: obstacles, Polygon: polygon}
		if err := scene.SavePNG(*renderPath, *scale); err != nil {
			log.Fatalf("rendering scene: %v", err)
		}
	}
}

func printVertices(vertices []core.Vector) {
	color := isTerminal(os.Stdout)
	for _, p := range vertices {
		x, y := formatFloat(p.X), formatFloat(p.Y)
		if color {
			x = aurora.Cyan(x).String()
			y = aurora.Cyan(y).String()
		}
		fmt.Printf("%s %s\n", x, y)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func readScene(in *os.File) (core.Vector, []core.Segment) {
	scanner := bufio.NewScanner(in)

	observer, ok := readPoint(scanner)
	if !ok {
		log.Fatalf("expected an observer point on the first line")
	}
	skipBlank(scanner)

	var obstacles []core.Segment
	for {
		points, more := readBlock(scanner)
		obstacles = append(obstacles, blockToSegments(points)...)
		if !more {
			break
		}
	}
	return observer, obstacles
}

func readPoint(scanner *bufio.Scanner) (core.Vector, bool) {
	if !scanner.Scan() {
		return core.Vector{}, false
	}
	return parsePoint(scanner.Text()), true
}

func skipBlank(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if scanner.Text() == "" {
			return
		}
	}
}

// readBlock reads lines up to the next blank line or EOF, returning the
// parsed points and whether more input remains.
func readBlock(scanner *bufio.Scanner) ([]core.Vector, bool) {
	var points []core.Vector
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			return points, true
		}
		points = append(points, parsePoint(line))
	}
	return points, false
}

func blockToSegments(points []core.Vector) []core.Segment {
	segments := make([]core.Segment, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		segments = append(segments, core.Segment{A: points[i], B: points[i+1]})
	}
	return segments
}

func parsePoint(line string) core.Vector {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return core.Vector{X: x, Y: y}
}
