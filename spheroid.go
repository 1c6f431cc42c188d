package gctp

import "math"

// sphereRadius is the radius of the reference sphere used for spherical
// forms of the projections.
const sphereRadius = 6370997.0

// spheroidAxes lists the semi-major and semi-minor axes, in meters, for
// the supported spheroid codes.
var spheroidAxes = [...][2]float64{
	Clarke1866:          {6378206.4, 6356583.8},
	Clarke1880:          {6378249.145, 6356514.86955},
	Bessel:              {6377397.155, 6356078.96284},
	International1967:   {6378157.5, 6356772.2},
	International1909:   {6378388.0, 6356911.94613},
	WGS72:               {6378135.0, 6356750.519915},
	Everest:             {6377276.3452, 6356075.4133},
	WGS66:               {6378145.0, 6356759.769356},
	GRS80:               {6378137.0, 6356752.31414},
	Airy:                {6377563.396, 6356256.91},
	ModifiedEverest:     {6377304.063, 6356103.039},
	ModifiedAiry:        {6377340.189, 6356034.448},
	WGS84:               {6378137.0, 6356752.314245},
	SoutheastAsia:       {6378155.0, 6356773.3205},
	AustralianNational:  {6378160.0, 6356774.719},
	Krassovsky:          {6378245.0, 6356863.0188},
	Hough:               {6378270.0, 6356794.343479},
	Mercury1960:         {6378166.0, 6356784.283666},
	ModifiedMercury1968: {6378150.0, 6356768.337303},
	NormalSphere:        {sphereRadius, sphereRadius},
}

// spheroidAxesFor resolves the semi-major and semi-minor axes for a
// projection.  A negative spheroid code takes the axes from
// parameters[0..1]: parameters[1] greater than one is the semi-minor axis,
// a value in (0, 1] is the eccentricity squared, and zero selects a
// sphere of radius parameters[0].  When parameters[0] is not positive the
// default Clarke 1866 spheroid is used.
func spheroidAxesFor(code SpheroidCode, parameters *[ParameterCount]float64) (rMajor, rMinor float64, err error) {
	if code >= 0 {
		if int(code) >= len(spheroidAxes) {
			return 0, 0, configErrorf("unsupported spheroid code %d", code)
		}
		return spheroidAxes[code][0], spheroidAxes[code][1], nil
	}

	major := math.Abs(parameters[0])
	minor := math.Abs(parameters[1])
	switch {
	case major <= 0:
		return spheroidAxes[Clarke1866][0], spheroidAxes[Clarke1866][1], nil
	case minor > 1:
		return major, minor, nil
	case minor > 0:
		return major, major * math.Sqrt(1.0-minor), nil
	default:
		return major, major, nil
	}
}
