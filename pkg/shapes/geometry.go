// Package shapes rasterises the cookie shapes used by the tracing minigames.
//
// Shapes are described as polylines in a unit space and rendered with
// golang.org/x/image/vector into straight-alpha RGBA images: a honey-coloured
// cookie disc with a dark outline for Dalgona, or a thick dark boundary with a
// bright inner fill for the boundary game.
package shapes

import (
	"fmt"
	"math"
)

// Kind identifies a cookie shape.
type Kind int

const (
	Circle Kind = iota
	Triangle
	Umbrella
	Star
)

var kindNames = map[Kind]string{
	Circle:   "circle",
	Triangle: "triangle",
	Umbrella: "umbrella",
	Star:     "star",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Circle, fmt.Errorf("unknown shape %q", name)
}

// Kinds returns every shape in a stable order.
func Kinds() []Kind {
	return []Kind{Circle, Triangle, Umbrella, Star}
}

// point is a coordinate in unit space: the cookie spans [-1, 1] on both axes,
// y grows downwards like image coordinates.
type point struct{ X, Y float64 }

// path is a polyline; closed paths connect the last point back to the first.
type path struct {
	points []point
	closed bool
}

// outline returns the unit-space polylines of a shape.
func outline(k Kind) []path {
	switch k {
	case Triangle:
		return []path{regularPolygon(3, 0.62, -math.Pi/2)}
	case Star:
		return []path{starPolygon(5, 0.66, 0.28)}
	case Umbrella:
		return umbrellaPaths()
	default:
		return []path{regularPolygon(72, 0.58, 0)}
	}
}

func regularPolygon(n int, radius, phase float64) path {
	pts := make([]point, n)
	for i := 0; i < n; i++ {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = point{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return path{points: pts, closed: true}
}

func starPolygon(spikes int, outer, inner float64) path {
	pts := make([]point, 0, spikes*2)
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(spikes)
		pts = append(pts, point{r * math.Cos(a), r * math.Sin(a)})
	}
	return path{points: pts, closed: true}
}

// umbrellaPaths returns a scalloped canopy and a hooked handle.
func umbrellaPaths() []path {
	const (
		canopyR  = 0.6
		canopyCY = 0.02
		scallops = 4
	)

	var canopy []point
	// Dome from the left rim over the top to the right rim.
	for i := 0; i <= 36; i++ {
		a := math.Pi + math.Pi*float64(i)/36
		canopy = append(canopy, point{canopyR * math.Cos(a), canopyCY + canopyR*math.Sin(a)})
	}
	// Scallops back along the rim, bulging upwards.
	width := 2 * canopyR / scallops
	for s := 0; s < scallops; s++ {
		cx := canopyR - width*(float64(s)+0.5)
		for i := 1; i <= 8; i++ {
			a := math.Pi * float64(i) / 8
			canopy = append(canopy, point{cx + width/2*math.Cos(a), canopyCY - width/2*0.6*math.Sin(a)})
		}
	}

	handle := []point{{0, canopyCY - 0.05}, {0, 0.5}}
	// Hook curling to the left.
	for i := 1; i <= 10; i++ {
		a := math.Pi * float64(i) / 10
		handle = append(handle, point{-0.1 + 0.1*math.Cos(a), 0.5 + 0.1*math.Sin(a)})
	}

	return []path{
		{points: canopy, closed: true},
		{points: handle, closed: false},
	}
}
