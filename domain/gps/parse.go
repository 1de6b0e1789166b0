package gps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate is returned by Parse when the text is not of the
// form "<latitude>,<longitude>".
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// Parse reads a coordinate in the format "latitude,longitude", e.g.
// "49.575103, 11.030055", on a sphere of EarthRadius.
func Parse(text string) (Spherical, error) {
	if text == "" {
		return Spherical{}, fmt.Errorf("empty input: %w", ErrMalformedCoordinate)
	}
	// trailing empty fields are ignored, "44,55," is the same as "44,55"
	fields := strings.Split(strings.TrimRight(text, ","), ",")
	if len(fields) != 2 {
		return Spherical{}, fmt.Errorf("'%s': expected 2 comma separated fields, got %d: %w", text, len(fields), ErrMalformedCoordinate)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Spherical{}, fmt.Errorf("'%s': bad latitude: %v: %w", text, err, ErrMalformedCoordinate)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Spherical{}, fmt.Errorf("'%s': bad longitude: %v: %w", text, err, ErrMalformedCoordinate)
	}
	return NewSpherical(lat, long)
}

// TryParse is like Parse but only reports whether text held a valid
// coordinate.
func TryParse(text string) (Spherical, bool) {
	s, err := Parse(text)
	if err != nil {
		return Spherical{}, false
	}
	return s, true
}
