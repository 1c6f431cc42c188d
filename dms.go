package gctp

import "math"

// DMSToDegrees converts an angle in packed DMS format, (sign)DDDMMSSS.SSS,
// to decimal degrees.  The degrees, minutes and seconds fields are
// validated individually; an out-of-range field yields a
// ConfigurationError.
func DMSToDegrees(packed float64) (float64, error) {
	fac := 1.0
	if packed < 0 {
		fac = -1.0
	}
	sec := math.Abs(packed)

	deg := math.Trunc(sec / 1000000.0)
	if deg > 360 {
		return 0, configErrorf("illegal DMS degrees field %.0f in angle %f", deg, packed)
	}
	sec -= deg * 1000000.0

	min := math.Trunc(sec / 1000.0)
	if min > 60 {
		return 0, configErrorf("illegal DMS minutes field %.0f in angle %f", min, packed)
	}
	sec -= min * 1000.0

	if sec > 60 {
		return 0, configErrorf("illegal DMS seconds field %f in angle %f", sec, packed)
	}

	return fac * (deg*3600.0 + min*60.0 + sec) / 3600.0, nil
}

// DegreesToDMS converts an angle in decimal degrees to packed DMS format,
// (sign)DDDMMSSS.SSS.  Angles outside [-360, 360] yield a
// ConfigurationError.
func DegreesToDMS(deg float64) (float64, error) {
	if math.Abs(deg) > 360 {
		return 0, configErrorf("angle %f out of range for DMS conversion", deg)
	}
	fac := 1.0
	if deg < 0 {
		fac = -1.0
	}

	a := math.Abs(deg)
	d := math.Trunc(a)
	rem := (a - d) * 60.0
	m := math.Trunc(rem)
	s := (rem - m) * 60.0

	// Absorb roundoff that pushes the seconds or minutes field to 60.
	if s >= 60.0-1e-9 {
		s = 0
		m++
	}
	if m >= 60 {
		m = 0
		d++
	}

	return fac * (d*1000000.0 + m*1000.0 + s), nil
}

// dmsRadians converts a packed DMS angle to radians.
func dmsRadians(packed float64) (float64, error) {
	deg, err := DMSToDegrees(packed)
	if err != nil {
		return 0, err
	}
	return deg * 3600.0 * secondsToRadians, nil
}

// dms2To3 widens a two-digit packed DMS angle, (sign)DDDMMSS.SSS, to the
// three-digit format used by the projection parameters.  The State Plane
// zone tables store their angles in the two-digit form.
func dms2To3(packed float64) float64 {
	fac := 1.0
	if packed < 0 {
		fac = -1.0
	}
	con := math.Abs(packed)

	degs := math.Trunc(con/10000.0 + 0.001)
	con -= degs * 10000.0
	mins := math.Trunc(con/100.0 + 0.001)
	secs := con - mins*100.0

	return fac * (degs*1000000.0 + mins*1000.0 + secs)
}
