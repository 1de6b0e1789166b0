package logging

import (
	"bitbucket.org/kleinnic74/geocoords/domain/gps"

	"go.uber.org/zap/zapcore"
)

// Points logs a list of coordinates in ISO 6709 notation.
type Points []gps.Spherical

func (a Points) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, p := range a {
		enc.AppendString(p.ISO6709())
	}
	return nil
}

// Cartesian logs the axes of a cartesian coordinate as an object.
type Cartesian gps.Cartesian

func (c Cartesian) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", gps.Cartesian(c).X())
	enc.AddFloat64("y", gps.Cartesian(c).Y())
	enc.AddFloat64("z", gps.Cartesian(c).Z())
	return nil
}
