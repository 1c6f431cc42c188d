package gctp

const unitCount = 6

// unitFactors[in][out] is the multiplier converting unit code in to unit
// code out.  A zero entry marks an angular/linear mismatch, which is a
// configuration error.
var unitFactors = [unitCount][unitCount]float64{
	// radians
	{1.0, 0.0, 0.0, 206264.8062470963, 57.295779513082323, 0.0},
	// US survey feet
	{0.0, 1.0, 0.3048006096012192, 0.0, 0.0, 1.000002000004},
	// meters
	{0.0, 3.280833333333333, 1.0, 0.0, 0.0, 3.280839895013124},
	// arc seconds
	{0.484813681109536e-5, 0.0, 0.0, 1.0, 0.27777777777778e-3, 0.0},
	// degrees
	{0.01745329251994329, 0.0, 0.0, 3600.0, 1.0, 0.0},
	// international feet
	{0.0, 0.999998, 0.3048, 0.0, 0.0, 1.0},
}

// unitConversionFactor returns the multiplier converting coordinates in
// units in to units out.
func unitConversionFactor(in, out UnitCode) (float64, error) {
	if in < 0 || in >= unitCount {
		return 0, configErrorf("unsupported unit code %d", in)
	}
	if out < 0 || out >= unitCount {
		return 0, configErrorf("unsupported unit code %d", out)
	}
	factor := unitFactors[in][out]
	if factor == 0 {
		return 0, configErrorf("unable to convert between unit codes %d and %d", in, out)
	}
	return factor, nil
}
