package gps

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpherical(t *testing.T) {
	s, err := NewSpherical(45, 45)
	require.NoError(t, err)
	assert.Equal(t, 45., s.Latitude())
	assert.Equal(t, 45., s.Longitude())
	assert.Equal(t, EarthRadius, s.Radius())
}

func TestNewSphericalRejectsInvalid(t *testing.T) {
	var data = []struct {
		lat, long, radius float64
		field             string
	}{
		{94, 20, EarthRadius, "latitude"},
		{-90.0001, 20, EarthRadius, "latitude"},
		{math.NaN(), 20, EarthRadius, "latitude"},
		{45, 200, EarthRadius, "longitude"},
		{45, -180.5, EarthRadius, "longitude"},
		{45, math.Inf(1), EarthRadius, "longitude"},
		{44, 43, -10, "radius"},
		{44, 43, 0, "radius"},
		{44, 43, math.NaN(), "radius"},
		{44, 43, math.Inf(1), "radius"},
	}
	for i, d := range data {
		_, err := NewSphericalWithRadius(d.lat, d.long, d.radius)
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("#%d: expected ErrInvalidCoordinate, got %v", i, err)
			continue
		}
		assert.Contains(t, err.Error(), d.field, "#%d", i)
	}
	_, err := NewSpherical(94, 20)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
	assert.Panics(t, func() { MustNewSpherical(45, 200) })
}

func TestNewSphericalAcceptsBounds(t *testing.T) {
	for _, c := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		_, err := NewSpherical(c[0], c[1])
		assert.NoError(t, err, "%v", c)
	}
}

func TestSphericalAsCartesian(t *testing.T) {
	var data = []struct {
		lat, long, radius float64
		x, y, z           float64
	}{
		{0, 0, 1, 1, 0, 0},
		{0, 90, 1, 0, 1, 0},
		{90, 0, 1, 0, 0, 1},
		{0, 180, 2, -2, 0, 0},
		{-90, 0, 3, 0, 0, -3},
	}
	for i, d := range data {
		c, err := mustSphericalWithRadius(t, d.lat, d.long, d.radius).AsCartesian()
		require.NoError(t, err)
		assert.InDelta(t, d.x, c.X(), 1e-12, "#%d: x", i)
		assert.InDelta(t, d.y, c.Y(), 1e-12, "#%d: y", i)
		assert.InDelta(t, d.z, c.Z(), 1e-12, "#%d: z", i)
	}
}

func TestSphericalEqualsItsCartesian(t *testing.T) {
	c, err := mensa.AsCartesian()
	require.NoError(t, err)
	assert.True(t, c.IsEqual(mensa))
	assert.True(t, mensa.IsEqual(c))
}

func TestSphericalEqualityIsExact(t *testing.T) {
	// same place, but different cartesian forms after rounding
	var data = []struct {
		a, b Spherical
	}{
		{MustNewSpherical(10, 180), MustNewSpherical(10, -180)},
		{MustNewSpherical(90, 0), MustNewSpherical(90, 90)},
		{MustNewSpherical(-90, 45), MustNewSpherical(-90, -135)},
	}
	for i, d := range data {
		assert.False(t, d.a.IsEqual(d.b), "#%d: %v equal to %v", i, d.a, d.b)
		dist, err := d.a.DistanceTo(d.b)
		require.NoError(t, err)
		assert.InDelta(t, 0, dist, 1e-6, "#%d", i)
	}
}

func TestGreatCircleDistance(t *testing.T) {
	arc, err := room.GreatCircleDistance(mensa)
	require.NoError(t, err)
	assert.InDelta(t, 225.3, arc, tolerance)

	chord, _ := room.DistanceTo(mensa)
	assert.InDelta(t, chord, arc, tolerance)

	northPole := MustNewSpherical(90, 0)
	equator := MustNewSpherical(0, 0)
	arc, err = northPole.GreatCircleDistance(equator)
	require.NoError(t, err)
	assert.InDelta(t, EarthRadius*math.Pi/2, arc, tolerance)
	chord, _ = northPole.DistanceTo(equator)
	assert.InDelta(t, EarthRadius*math.Sqrt2, chord, tolerance)

	arc, err = room.GreatCircleDistance(room)
	require.NoError(t, err)
	assert.Equal(t, 0., arc)

	_, err = room.GreatCircleDistance(mustSphericalWithRadius(t, 1, 1, 10))
	assert.True(t, errors.Is(err, ErrUnsupportedConversion))
}

func TestCoordinatesToISO6709(t *testing.T) {
	var data = []struct {
		lat  float64
		long float64
		iso  string
	}{
		{lat: 45.3, long: 2.443, iso: "+45.300000+002.443000/"},
		{lat: 45.3, long: -43.2344, iso: "+45.300000-043.234400/"},
	}
	for _, tt := range data {
		iso := MustNewSpherical(tt.lat, tt.long).ISO6709()
		if iso != tt.iso {
			t.Errorf("Bad ISO6709 value, expected %s, got %s", tt.iso, iso)
		}
	}
}

func TestSphericalString(t *testing.T) {
	assert.Equal(t, "[45.123130;47.123445]", MustNewSpherical(45.12313, 47.123445).String())
	assert.Equal(t, Point{47.123445, 45.12313}, MustNewSpherical(45.12313, 47.123445).Point())
}

func BenchmarkSphericalDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := room.DistanceTo(mensa); err != nil {
			b.Error(err)
		}
	}
}
