package gctp_test

import (
	"errors"
	"testing"

	"github.com/landproj/gctp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statePlaneProjection(zone int, spheroid gctp.SpheroidCode) gctp.Projection {
	return gctp.Projection{
		Code:     gctp.StatePlane,
		Zone:     zone,
		Units:    gctp.Meters,
		Spheroid: spheroid,
	}
}

// Colorado North is a Lambert zone; a Denver-area point must round trip.
func TestStatePlaneLambertZone(t *testing.T) {
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
		statePlaneProjection(501, gctp.GRS80))
	require.NoError(t, err)
	defer trans.Destroy()

	x, y, err := trans.Transform(-105.2705, 40.0150, gctp.Forward) // Boulder
	require.NoError(t, err)
	assert.Greater(t, x, 0.0)
	assert.Greater(t, y, 0.0)

	lon, lat, err := trans.Transform(x, y, gctp.Inverse)
	require.NoError(t, err)
	assert.InDelta(t, -105.2705, lon, 1e-7)
	assert.InDelta(t, 40.0150, lat, 1e-7)
}

// Alabama East is a Transverse Mercator zone.
func TestStatePlaneTransverseMercatorZone(t *testing.T) {
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
		statePlaneProjection(101, gctp.GRS80))
	require.NoError(t, err)
	defer trans.Destroy()

	x, y, err := trans.Transform(-86.3, 32.38, gctp.Forward) // Montgomery
	require.NoError(t, err)
	assert.Greater(t, x, 0.0)
	assert.Greater(t, y, 0.0)

	lon, lat, err := trans.Transform(x, y, gctp.Inverse)
	require.NoError(t, err)
	assert.InDelta(t, -86.3, lon, 1e-7)
	assert.InDelta(t, 32.38, lat, 1e-7)
}

func TestStatePlaneNAD27Zones(t *testing.T) {
	tests := []struct {
		name     string
		zone     int
		lon, lat float64
	}{
		{"Alabama East TM", 101, -86.3, 32.38},
		{"California V Lambert", 405, -118.24, 34.05},
		{"Texas Central Lambert", 4203, -97.74, 30.27},
		{"New York Central TM", 3102, -76.15, 43.05},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trans, err := gctp.NewTransformation(geographicDegrees(gctp.Clarke1866),
				statePlaneProjection(tc.zone, gctp.Clarke1866))
			require.NoError(t, err)
			defer trans.Destroy()

			x, y, err := trans.Transform(tc.lon, tc.lat, gctp.Forward)
			require.NoError(t, err)
			lon, lat, err := trans.Transform(x, y, gctp.Inverse)
			require.NoError(t, err)
			assert.InDelta(t, tc.lon, lon, 1e-7)
			assert.InDelta(t, tc.lat, lat, 1e-7)
		})
	}
}

// Zone ids that only exist on one datum must be rejected on the other.
func TestStatePlaneDatumZoneMismatch(t *testing.T) {
	// Montana collapsed to the single zone 2500 for NAD83.
	_, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
		statePlaneProjection(2501, gctp.GRS80))
	require.Error(t, err)

	_, err = gctp.NewTransformation(geographicDegrees(gctp.Clarke1866),
		statePlaneProjection(2500, gctp.Clarke1866))
	require.Error(t, err)

	trans, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
		statePlaneProjection(2500, gctp.GRS80))
	require.NoError(t, err)
	trans.Destroy()
}

func TestStatePlaneUnknownZone(t *testing.T) {
	_, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
		statePlaneProjection(9999, gctp.GRS80))
	require.Error(t, err)
	var cfgErr *gctp.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

// State Plane is defined for the NAD27 and NAD83 datums only.
func TestStatePlaneRejectsOtherSpheroids(t *testing.T) {
	_, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84),
		statePlaneProjection(501, gctp.WGS84))
	require.Error(t, err)
	var cfgErr *gctp.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

// Oblique Mercator and Polyconic zones are recognized but not supported.
func TestStatePlaneUnsupportedZoneKinds(t *testing.T) {
	for _, zone := range []int{5001, 5400} {
		_, err := gctp.NewTransformation(geographicDegrees(gctp.GRS80),
			statePlaneProjection(zone, gctp.GRS80))
		require.Error(t, err, "zone %d", zone)
		var cfgErr *gctp.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "zone %d", zone)
	}
}
