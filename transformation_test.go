package gctp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/landproj/gctp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransformationRejectsInvalidCodes(t *testing.T) {
	for _, code := range []gctp.ProjCode{-1, 32, 99} {
		p := gctp.Projection{Code: code, Units: gctp.Meters, Spheroid: gctp.WGS84}
		_, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), p)
		require.Error(t, err, "code %d", code)
		var cfgErr *gctp.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "code %d", code)
	}
}

func TestNewTransformationRejectsUnimplementedCodes(t *testing.T) {
	for _, code := range []gctp.ProjCode{
		gctp.Mercator,
		gctp.Polyconic,
		gctp.ObliqueMercator,
		gctp.SpaceObliqueMercator,
		gctp.Sinusoidal,
	} {
		p := gctp.Projection{Code: code, Units: gctp.Meters, Spheroid: gctp.WGS84}
		_, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), p)
		require.Error(t, err, "code %d", code)
		var cfgErr *gctp.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "code %d", code)
	}
}

func TestNewTransformationRejectsIncompatibleUnits(t *testing.T) {
	// Angular units on a planar projection.
	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Degrees, Spheroid: gctp.WGS84}
	_, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), utm)
	require.Error(t, err)
	var cfgErr *gctp.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	// Linear units on the geographic side.
	geo := gctp.Projection{Code: gctp.Geographic, Units: gctp.Meters, Spheroid: gctp.WGS84}
	utm.Units = gctp.Meters
	_, err = gctp.NewTransformation(geo, utm)
	require.Error(t, err)
}

// Geographic to Geographic conversions reduce to unit conversion.
func TestGeographicUnitConversion(t *testing.T) {
	seconds := gctp.Projection{Code: gctp.Geographic, Units: gctp.Seconds, Spheroid: gctp.WGS84}
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), seconds)
	require.NoError(t, err)
	defer trans.Destroy()

	x, y, err := trans.Transform(1.5, -2.25, gctp.Forward)
	require.NoError(t, err)
	assert.InDelta(t, 5400.0, x, 1e-6)
	assert.InDelta(t, -8100.0, y, 1e-6)

	lon, lat, err := trans.Transform(x, y, gctp.Inverse)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, lon, 1e-9)
	assert.InDelta(t, -2.25, lat, 1e-9)
}

// The Inverse direction of one handle matches the Forward direction of
// the swapped handle.
func TestInverseMatchesSwappedForward(t *testing.T) {
	geo := geographicDegrees(gctp.WGS84)
	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}

	geoToUTM, err := gctp.NewTransformation(geo, utm)
	require.NoError(t, err)
	defer geoToUTM.Destroy()
	utmToGeo, err := gctp.NewTransformation(utm, geo)
	require.NoError(t, err)
	defer utmToGeo.Destroy()

	x, y, err := geoToUTM.Transform(-104.9903, 39.7392, gctp.Forward)
	require.NoError(t, err)

	lon1, lat1, err := geoToUTM.Transform(x, y, gctp.Inverse)
	require.NoError(t, err)
	lon2, lat2, err := utmToGeo.Transform(x, y, gctp.Forward)
	require.NoError(t, err)
	assert.Equal(t, lon1, lon2)
	assert.Equal(t, lat1, lat2)
}

func TestLatLngHelpers(t *testing.T) {
	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), utm)
	require.NoError(t, err)
	defer trans.Destroy()

	ll := s2.LatLngFromDegrees(39.7392, -104.9903)
	x, y, err := trans.ForwardLatLng(ll)
	require.NoError(t, err)

	// The two paths use slightly different degree-to-radian constants
	// (s2's exact pi/180 versus the unit table factor), so agreement is
	// only to the micron.
	wantX, wantY, err := trans.Transform(-104.9903, 39.7392, gctp.Forward)
	require.NoError(t, err)
	assert.InDelta(t, wantX, x, 1e-6)
	assert.InDelta(t, wantY, y, 1e-6)

	back, err := trans.InverseLatLng(x, y)
	require.NoError(t, err)
	assert.InDelta(t, ll.Lat.Degrees(), back.Lat.Degrees(), 1e-7)
	assert.InDelta(t, ll.Lng.Degrees(), back.Lng.Degrees(), 1e-7)

	// The helpers require a geographic input projection.
	swapped, err := gctp.NewTransformation(utm, geographicDegrees(gctp.WGS84))
	require.NoError(t, err)
	defer swapped.Destroy()
	_, _, err = swapped.ForwardLatLng(ll)
	require.Error(t, err)
	_, err = swapped.InverseLatLng(x, y)
	require.Error(t, err)
}

func TestProjectionAccessors(t *testing.T) {
	geo := geographicDegrees(gctp.WGS84)
	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}
	trans, err := gctp.NewTransformation(geo, utm)
	require.NoError(t, err)
	defer trans.Destroy()

	assert.Equal(t, geo, trans.InputProjection())
	assert.Equal(t, utm, trans.OutputProjection())
}

func TestPrintInfoUsesMessageCallback(t *testing.T) {
	var lines []string
	gctp.SetMessageCallback(func(_ gctp.MessageType, message string) {
		lines = append(lines, message)
	})
	defer gctp.SetMessageCallback(nil)

	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), utm)
	require.NoError(t, err)
	defer trans.Destroy()

	trans.PrintInfo()
	require.NotEmpty(t, lines)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "GEOGRAPHIC")
	assert.Contains(t, joined, "UNIVERSAL TRANSVERSE MERCATOR")
	assert.Contains(t, joined, "Zone")
}

func TestOnlyAllowThreadsafeTransforms(t *testing.T) {
	gctp.OnlyAllowThreadsafeTransforms()

	utm := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}
	trans, err := gctp.NewTransformation(geographicDegrees(gctp.WGS84), utm)
	require.NoError(t, err)
	trans.Destroy()
}
