package gps

import (
	"fmt"
	"math"
)

// EarthRadius is the mean radius of the earth in meters, used when no
// radius is given.
const EarthRadius = 6371000.0

// Spherical is an immutable coordinate given by latitude and longitude in
// degrees and a radius in meters.
//
// For example (49.575103, 11.030055) is the Mensa in Erlangen.
type Spherical struct {
	lat    float64
	long   float64
	radius float64
}

// NewSpherical returns the coordinate at lat/long on a sphere of EarthRadius.
func NewSpherical(lat, long float64) (Spherical, error) {
	return NewSphericalWithRadius(lat, long, EarthRadius)
}

// NewSphericalWithRadius validates that -90 <= lat <= 90,
// -180 <= long <= 180 and radius > 0.
func NewSphericalWithRadius(lat, long, radius float64) (Spherical, error) {
	if !(lat >= -90 && lat <= 90) {
		return Spherical{}, fmt.Errorf("latitude must be in the range -90 <= latitude <= 90, got %v: %w", lat, ErrInvalidCoordinate)
	}
	if !(long >= -180 && long <= 180) {
		return Spherical{}, fmt.Errorf("longitude must be in the range -180 <= longitude <= 180, got %v: %w", long, ErrInvalidCoordinate)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return Spherical{}, fmt.Errorf("radius must be a finite number greater than 0, got %v: %w", radius, ErrInvalidCoordinate)
	}
	return Spherical{lat: lat, long: long, radius: radius}, nil
}

// MustNewSpherical is like NewSpherical but panics on invalid input.
func MustNewSpherical(lat, long float64) Spherical {
	s, err := NewSpherical(lat, long)
	if err != nil {
		panic(err)
	}
	return s
}

// Latitude (abbreviation: Lat., φ, or phi)
func (s Spherical) Latitude() float64 {
	return s.lat
}

// Longitude (abbreviation: Long., λ, or lambda)
func (s Spherical) Longitude() float64 {
	return s.long
}

func (s Spherical) Radius() float64 {
	return s.radius
}

// AsCartesian uses x = r·cos(φ)·cos(λ), y = r·cos(φ)·sin(λ), z = r·sin(φ).
func (s Spherical) AsCartesian() (Cartesian, error) {
	lat := toRadians(s.lat)
	long := toRadians(s.long)
	return Cartesian{
		x: s.radius * math.Cos(lat) * math.Cos(long),
		y: s.radius * math.Cos(lat) * math.Sin(long),
		z: s.radius * math.Sin(lat),
	}, nil
}

// DistanceTo returns the chord length, not the distance along the surface.
// See GreatCircleDistance for the latter.
func (s Spherical) DistanceTo(other Coordinate) (float64, error) {
	return Distance(s, other)
}

func (s Spherical) IsEqual(other Coordinate) bool {
	return Equal(s, other)
}

// GreatCircleDistance returns the length of the shortest arc between s and
// other along the surface of their sphere, using the spherical law of
// cosines. Both coordinates must share the same radius.
func (s Spherical) GreatCircleDistance(other Spherical) (float64, error) {
	if s.radius != other.radius {
		return 0, fmt.Errorf("great circle between radius %v and %v: %w", s.radius, other.radius, ErrUnsupportedConversion)
	}
	latA, latB := toRadians(s.lat), toRadians(other.lat)
	deltaLong := toRadians(s.long - other.long)
	cosSigma := math.Sin(latA)*math.Sin(latB) + math.Cos(latA)*math.Cos(latB)*math.Cos(deltaLong)
	return s.radius * math.Acos(clamp(cosSigma, -1, 1)), nil
}

// Point returns the position of s on a longitude/latitude plane.
func (s Spherical) Point() Point {
	return PointFromLatLon(s.lat, s.long)
}

func (s Spherical) String() string {
	return fmt.Sprintf("[%f;%f]", s.lat, s.long)
}

// ISO6709 formats latitude and longitude as ±DD.DDDDDD±DDD.DDDDDD/
func (s Spherical) ISO6709() string {
	return fmt.Sprintf("%+010.6f%+011.6f/", s.lat, s.long)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
