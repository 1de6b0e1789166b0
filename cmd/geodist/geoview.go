package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"bitbucket.org/kleinnic74/geocoords/domain/gps"
	svg "github.com/ajstarks/svgo"
)

var (
	strokeGrid  = []string{`stroke="gray"`, `stroke-width="0.5%"`, `fill="none"`, `vector-effect="non-scaling-stroke"`}
	strokePath  = []string{`stroke="blue"`, `stroke-width="1px"`, `fill="none"`, `vector-effect="non-scaling-stroke"`}
	strokePoint = []string{`stroke="red"`, `stroke-width="1px"`, `fill="none"`, `vector-effect="non-scaling-stroke"`}
)

// GeoView draws coordinates on an equirectangular projection, longitude on
// the x axis and latitude on the y axis.
type GeoView struct {
	canvas *svg.SVG
	marker float64
}

func NewGeoView(out io.Writer, bounds gps.Rect) *GeoView {
	size := math.Max(math.Max(bounds.W(), bounds.H()), 1e-4)
	bounds = bounds.Grow(size * 0.05).Clip(gps.WorldBounds)
	canvas := svg.New(out)
	// y is flipped below, so the view box starts at -y1
	canvas.Startpercent(100, 100, fmt.Sprintf(`viewBox="%f %f %f %f"`, bounds.X0(), -bounds.Y1(), bounds.W(), bounds.H()))
	canvas.Gtransform("scale(1,-1)")
	canvas.Path(rectPath(bounds), strokeGrid...)
	return &GeoView{
		canvas: canvas,
		marker: size * 0.01,
	}
}

func rectPath(bounds gps.Rect) string {
	return fmt.Sprintf("M %f %f l 0 %f l %f 0 l 0 %f Z", bounds.X0(), bounds.Y0(), bounds.H(), bounds.W(), -bounds.H())
}

func linePath(points []gps.Spherical) string {
	var b strings.Builder
	cmd := "M"
	for _, p := range points {
		fmt.Fprintf(&b, "%s %f %f ", cmd, p.Longitude(), p.Latitude())
		cmd = "L"
	}
	return strings.TrimSpace(b.String())
}

// Path draws the points connected in order, each with a marker.
func (g *GeoView) Path(points []gps.Spherical) {
	g.canvas.Group()
	if len(points) > 1 {
		g.canvas.Path(linePath(points), strokePath...)
	}
	for _, p := range points {
		c := p.Point()
		g.canvas.Path(rectPath(gps.RectFrom(c.X()-g.marker, c.Y()-g.marker, c.X()+g.marker, c.Y()+g.marker)), strokePoint...)
	}
	g.canvas.Gend()
}

func (g *GeoView) Close() error {
	g.canvas.Gend()
	g.canvas.End()
	return nil
}
