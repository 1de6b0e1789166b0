package gps

import "fmt"

// Location is an immutable place identified by a coordinate.
type Location struct {
	coordinate Coordinate
}

func NewLocation(c Coordinate) (Location, error) {
	if c == nil {
		return Location{}, fmt.Errorf("location without coordinate: %w", ErrInvalidCoordinate)
	}
	return Location{coordinate: c}, nil
}

func (l Location) Coordinate() Coordinate {
	return l.coordinate
}

func (l Location) DistanceTo(other Location) (float64, error) {
	return Distance(l.coordinate, other.coordinate)
}

func (l Location) String() string {
	return fmt.Sprintf("Location{%v}", l.coordinate)
}
