package gctp

import "math"

// Lambert Conformal Conic.  Closed-form forward per Snyder equations 15-1
// through 15-5, inverse through the iterative small-t latitude solver.

// lamccProj is the precomputed state for the Lambert Conformal Conic
// transforms.
type lamccProj struct {
	rMajor        float64
	e             float64 // eccentricity
	lat1, lat2    float64 // standard parallels
	lonCenter     float64
	latOrigin     float64
	falseEasting  float64
	falseNorthing float64
	ns            float64 // cone constant
	f0            float64
	rh            float64 // radius at the origin latitude
}

// lamccProjFromParams builds the shared state from a descriptor: standard
// parallels in packed DMS in Parameters[2..3], central meridian and origin
// latitude in Parameters[4..5], false easting/northing in Parameters[6..7].
func lamccProjFromParams(proj *Projection) (*lamccProj, error) {
	rMajor, rMinor, err := spheroidAxesFor(proj.Spheroid, &proj.Parameters)
	if err != nil {
		return nil, err
	}
	lat1, err := dmsRadians(proj.Parameters[2])
	if err != nil {
		return nil, err
	}
	lat2, err := dmsRadians(proj.Parameters[3])
	if err != nil {
		return nil, err
	}
	lonCenter, err := dmsRadians(proj.Parameters[4])
	if err != nil {
		return nil, err
	}
	latOrigin, err := dmsRadians(proj.Parameters[5])
	if err != nil {
		return nil, err
	}
	if math.Abs(lat1+lat2) < epsilon {
		return nil, configErrorf("equal standard parallels on opposite sides of the equator")
	}

	p := &lamccProj{
		rMajor:        rMajor,
		lat1:          lat1,
		lat2:          lat2,
		lonCenter:     lonCenter,
		latOrigin:     latOrigin,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
	}
	temp := rMinor / rMajor
	es := 1.0 - temp*temp
	p.e = math.Sqrt(es)

	sin1 := math.Sin(lat1)
	ms1 := msfnz(p.e, sin1, math.Cos(lat1))
	ts1 := tsfnz(p.e, lat1, sin1)
	sin2 := math.Sin(lat2)
	ms2 := msfnz(p.e, sin2, math.Cos(lat2))
	ts2 := tsfnz(p.e, lat2, sin2)
	ts0 := tsfnz(p.e, latOrigin, math.Sin(latOrigin))

	if math.Abs(lat1-lat2) > epsilon {
		p.ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		p.ns = sin1
	}
	p.f0 = ms1 / (p.ns * math.Pow(ts1, p.ns))
	p.rh = rMajor * p.f0 * math.Pow(ts0, p.ns)
	return p, nil
}

func (p *lamccProj) forward(lon, lat float64) (float64, float64, error) {
	var rh1 float64
	if math.Abs(math.Abs(lat)-halfPi) > epsilon {
		ts := tsfnz(p.e, lat, math.Sin(lat))
		rh1 = p.rMajor * p.f0 * math.Pow(ts, p.ns)
	} else {
		// A pole; only the one the cone opens toward projects.
		if lat*p.ns <= 0 {
			return 0, 0, geometryErrorf("point (%g, %g) cannot be projected", lon, lat)
		}
		rh1 = 0
	}
	theta := p.ns * adjustLon(lon-p.lonCenter)
	x := rh1*math.Sin(theta) + p.falseEasting
	y := p.rh - rh1*math.Cos(theta) + p.falseNorthing
	return x, y, nil
}

func (p *lamccProj) inverse(x, y float64) (float64, float64, error) {
	x -= p.falseEasting
	y = p.rh - y + p.falseNorthing

	var rh1, con float64
	if p.ns > 0 {
		rh1 = math.Sqrt(x*x + y*y)
		con = 1.0
	} else {
		rh1 = -math.Sqrt(x*x + y*y)
		con = -1.0
	}

	theta := 0.0
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}

	var lat float64
	if rh1 != 0 || p.ns > 0 {
		ts := math.Pow(rh1/(p.rMajor*p.f0), 1.0/p.ns)
		var err error
		lat, err = phi2z(p.e, ts)
		if err != nil {
			return 0, 0, err
		}
	} else {
		lat = -halfPi
	}
	lon := adjustLon(theta/p.ns + p.lonCenter)
	return lon, lat, nil
}

func (p *lamccProj) report() {
	reportTitle("LAMBERT CONFORMAL CONIC")
	reportRadii(p.rMajor, p.rMajor*math.Sqrt(1.0-p.e*p.e))
	reportStandardParallels(p.lat1, p.lat2)
	reportCentralMeridian(p.lonCenter)
	reportOriginLatitude(p.latOrigin)
	reportFalseOffsets(p.falseEasting, p.falseNorthing)
}

func lamccForwardInit(t *transformation) error {
	p, err := lamccProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.forward
	t.printInfo = p.report
	return nil
}

func lamccInverseInit(t *transformation) error {
	p, err := lamccProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.inverse
	t.printInfo = p.report
	return nil
}
