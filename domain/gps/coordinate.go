package gps

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCoordinate is returned when a coordinate is constructed from
	// values outside of its legal domain.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrUnsupportedConversion is returned by representations that have no
	// cartesian form.
	ErrUnsupportedConversion = errors.New("coordinate conversion not supported")
)

// Coordinate is a position in space that supports distance calculation and
// comparison with any other Coordinate, regardless of its representation.
//
// New representations only need to provide AsCartesian and can implement the
// remaining methods by delegating to Distance and Equal.
type Coordinate interface {
	// AsCartesian converts the coordinate to its canonical representation.
	AsCartesian() (Cartesian, error)
	// DistanceTo returns the straight line distance in meters.
	DistanceTo(other Coordinate) (float64, error)
	// IsEqual reports whether both coordinates denote the same point.
	IsEqual(other Coordinate) bool
}

var (
	_ Coordinate = Cartesian{}
	_ Coordinate = Spherical{}
	_ Coordinate = UnsupportedCoordinate{}
)

// Distance calculates the euclidean distance in meters between the
// cartesian forms of a and b. The result is +Inf only when the difference
// along a single axis exceeds the float64 range.
func Distance(a, b Coordinate) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("distance to nil coordinate: %w", ErrInvalidCoordinate)
	}
	ca, err := a.AsCartesian()
	if err != nil {
		return 0, err
	}
	cb, err := b.AsCartesian()
	if err != nil {
		return 0, err
	}
	dx := cb.x - ca.x
	dy := cb.y - ca.y
	dz := cb.z - ca.z
	return math.Hypot(math.Hypot(dx, dy), dz), nil
}

// Equal reports whether the cartesian forms of a and b are identical. A
// coordinate that cannot be converted is never equal to anything.
func Equal(a, b Coordinate) bool {
	if a == nil || b == nil {
		return false
	}
	ca, err := a.AsCartesian()
	if err != nil {
		return false
	}
	cb, err := b.AsCartesian()
	if err != nil {
		return false
	}
	return ca == cb
}

// UnsupportedCoordinate stands for a representation that cannot be
// expressed in cartesian space, e.g. a named place that has not been
// geocoded yet.
type UnsupportedCoordinate struct {
	Kind string
}

func (u UnsupportedCoordinate) AsCartesian() (Cartesian, error) {
	return Cartesian{}, fmt.Errorf("%s: %w", u.Kind, ErrUnsupportedConversion)
}

func (u UnsupportedCoordinate) DistanceTo(other Coordinate) (float64, error) {
	return Distance(u, other)
}

func (u UnsupportedCoordinate) IsEqual(other Coordinate) bool {
	return Equal(u, other)
}
