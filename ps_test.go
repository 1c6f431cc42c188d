package gctp_test

import (
	"testing"

	"github.com/landproj/gctp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polarProjection(latTrueScale float64) gctp.Projection {
	p := gctp.Projection{
		Code:     gctp.PolarStereographic,
		Units:    gctp.Meters,
		Spheroid: gctp.WGS84,
	}
	p.Parameters[4] = -45000000.0 // 45 degrees west
	p.Parameters[5] = latTrueScale
	return p
}

func TestPolarStereographicRoundTripNorth(t *testing.T) {
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), polarProjection(70000000.0))
	require.NoError(t, err)
	defer trans.Destroy()

	for lat := 55.0; lat <= 89.5; lat += 2.5 {
		for lon := -172.5; lon < 180.0; lon += 15.0 {
			x, y, err := trans.Transform(lon, lat, gctp.Forward)
			require.NoError(t, err, "(%f, %f)", lon, lat)
			lon2, lat2, err := trans.Transform(x, y, gctp.Inverse)
			require.NoError(t, err, "(%f, %f)", lon, lat)
			assert.InDelta(t, lon, lon2, 1e-7, "longitude at (%f, %f)", lon, lat)
			assert.InDelta(t, lat, lat2, 1e-7, "latitude at (%f, %f)", lon, lat)
		}
	}
}

func TestPolarStereographicRoundTripSouth(t *testing.T) {
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), polarProjection(-71000000.0))
	require.NoError(t, err)
	defer trans.Destroy()

	for lat := -89.5; lat <= -55.0; lat += 2.5 {
		for lon := -172.5; lon < 180.0; lon += 15.0 {
			x, y, err := trans.Transform(lon, lat, gctp.Forward)
			require.NoError(t, err, "(%f, %f)", lon, lat)
			lon2, lat2, err := trans.Transform(x, y, gctp.Inverse)
			require.NoError(t, err, "(%f, %f)", lon, lat)
			assert.InDelta(t, lon, lon2, 1e-7, "longitude at (%f, %f)", lon, lat)
			assert.InDelta(t, lat, lat2, 1e-7, "latitude at (%f, %f)", lon, lat)
		}
	}
}

// With the true-scale latitude at the pole the radius formula switches to
// the e4 form; the pole itself maps to the false origin.
func TestPolarStereographicPole(t *testing.T) {
	p := polarProjection(90000000.0)
	p.Parameters[6] = 2000000.0
	p.Parameters[7] = 2000000.0

	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), p)
	require.NoError(t, err)
	defer trans.Destroy()

	x, y, err := trans.Transform(120.0, 90.0, gctp.Forward)
	require.NoError(t, err)
	assert.InDelta(t, 2000000.0, x, 1e-6)
	assert.InDelta(t, 2000000.0, y, 1e-6)

	// Inverting the false origin recovers the pole and falls back to the
	// central meridian for the indeterminate longitude.
	lon, lat, err := trans.Transform(2000000.0, 2000000.0, gctp.Inverse)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, lat, 1e-7)
	assert.InDelta(t, -45.0, lon, 1e-7)

	x, y, err = trans.Transform(-45.0, 75.0, gctp.Forward)
	require.NoError(t, err)
	// Along the central meridian the point lies due "south" of the pole on
	// the map.
	assert.InDelta(t, 2000000.0, x, 1e-6)
	assert.Less(t, y, 2000000.0)
}
