package gps

import "math"

// WorldBounds covers all valid longitudes (x) and latitudes (y).
var WorldBounds = Rect{-180, -90, 180, 90}

type Rect [4]float64

func RectFrom(x0, y0, x1, y1 float64) Rect {
	return Rect([4]float64{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)})
}

// BoundsOf returns the smallest Rect containing all points, or the empty
// Rect if none are given.
func BoundsOf(points ...Spherical) (r Rect) {
	for i, p := range points {
		if i == 0 {
			r = Rect{p.long, p.lat, p.long, p.lat}
			continue
		}
		r = RectFrom(math.Min(r[0], p.long), math.Min(r[1], p.lat), math.Max(r[2], p.long), math.Max(r[3], p.lat))
	}
	return
}

func (r Rect) W() float64 {
	return r[2] - r[0]
}

func (r Rect) H() float64 {
	return r[3] - r[1]
}

func (r Rect) X0() float64 {
	return r[0]
}

func (r Rect) Y0() float64 {
	return r[1]
}

func (r Rect) X1() float64 {
	return r[2]
}

func (r Rect) Y1() float64 {
	return r[3]
}

// Grow returns r extended by margin on every side.
func (r Rect) Grow(margin float64) Rect {
	return Rect{r[0] - margin, r[1] - margin, r[2] + margin, r[3] + margin}
}

// Contains is inclusive on all edges.
func (r Rect) Contains(p Point) bool {
	return p[0] >= r[0] && p[0] <= r[2] && p[1] >= r[1] && p[1] <= r[3]
}

// Clip returns the part of r that lies within bounds, or the empty Rect if
// they do not overlap.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := math.Max(r[0], bounds[0]), math.Max(r[1], bounds[1])
	x1, y1 := math.Min(r[2], bounds[2]), math.Min(r[3], bounds[3])
	if x0 > x1 || y0 > y1 {
		return Rect{}
	}
	return Rect{x0, y0, x1, y1}
}

// Point is a position on a longitude (x) / latitude (y) plane.
type Point [2]float64

func PointFromLatLon(lat, lon float64) Point {
	return Point{lon, lat}
}

func (p Point) X() float64 {
	return p[0]
}

func (p Point) Y() float64 {
	return p[1]
}
