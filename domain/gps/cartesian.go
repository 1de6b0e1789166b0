package gps

import (
	"fmt"
	"math"
)

// Cartesian is an immutable point (X, Y, Z) in meters from the origin. It is
// the canonical representation all other coordinates convert to.
type Cartesian struct {
	x, y, z float64
}

func NewCartesian(x, y, z float64) (Cartesian, error) {
	for _, axis := range []struct {
		name  string
		value float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if math.IsNaN(axis.value) || math.IsInf(axis.value, 0) {
			return Cartesian{}, fmt.Errorf("%s must be a finite number, got %v: %w", axis.name, axis.value, ErrInvalidCoordinate)
		}
	}
	return Cartesian{x: x, y: y, z: z}, nil
}

// MustNewCartesian is like NewCartesian but panics on invalid input.
func MustNewCartesian(x, y, z float64) Cartesian {
	c, err := NewCartesian(x, y, z)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cartesian) X() float64 {
	return c.x
}

func (c Cartesian) Y() float64 {
	return c.y
}

func (c Cartesian) Z() float64 {
	return c.z
}

// AsCartesian returns c itself.
func (c Cartesian) AsCartesian() (Cartesian, error) {
	return c, nil
}

func (c Cartesian) DistanceTo(other Coordinate) (float64, error) {
	return Distance(c, other)
}

func (c Cartesian) IsEqual(other Coordinate) bool {
	return Equal(c, other)
}

// AsSpherical converts c into latitude, longitude and radius. The origin
// has no direction and cannot be converted.
func (c Cartesian) AsSpherical() (Spherical, error) {
	r := math.Hypot(math.Hypot(c.x, c.y), c.z)
	if r == 0 {
		return Spherical{}, fmt.Errorf("origin has no spherical form: %w", ErrInvalidCoordinate)
	}
	lat := toDegrees(math.Asin(clamp(c.z/r, -1, 1)))
	lon := toDegrees(math.Atan2(c.y, c.x))
	return NewSphericalWithRadius(lat, lon, r)
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%f;%f;%f)", c.x, c.y, c.z)
}
