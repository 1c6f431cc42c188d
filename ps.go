package gctp

import "math"

// Polar Stereographic, ellipsoidal form per Snyder equations 21-33 through
// 21-35 and 22-16.  The true-scale latitude's sign selects the pole.

// psProj is the precomputed state for the Polar Stereographic transforms.
type psProj struct {
	rMajor        float64
	e             float64
	e4            float64
	lonCenter     float64
	latTrueScale  float64
	falseEasting  float64
	falseNorthing float64
	fac           float64 // +1 north pole, -1 south pole
	mcs, tcs      float64
	ind           bool // true-scale latitude away from the pole
}

// psProjFromParams builds the shared state from a descriptor: central
// meridian and true-scale latitude in packed DMS in Parameters[4..5],
// false easting/northing in Parameters[6..7].
func psProjFromParams(proj *Projection) (*psProj, error) {
	rMajor, rMinor, err := spheroidAxesFor(proj.Spheroid, &proj.Parameters)
	if err != nil {
		return nil, err
	}
	lonCenter, err := dmsRadians(proj.Parameters[4])
	if err != nil {
		return nil, err
	}
	latTrueScale, err := dmsRadians(proj.Parameters[5])
	if err != nil {
		return nil, err
	}

	p := &psProj{
		rMajor:        rMajor,
		lonCenter:     lonCenter,
		latTrueScale:  latTrueScale,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
		fac:           1.0,
	}
	temp := rMinor / rMajor
	es := 1.0 - temp*temp
	p.e = math.Sqrt(es)
	p.e4 = e4fn(p.e)
	if latTrueScale < 0 {
		p.fac = -1.0
	}
	if math.Abs(math.Abs(latTrueScale)-halfPi) > epsilon {
		p.ind = true
		con := p.fac * latTrueScale
		sinphi := math.Sin(con)
		p.mcs = msfnz(p.e, sinphi, math.Cos(con))
		p.tcs = tsfnz(p.e, con, sinphi)
	}
	return p, nil
}

func (p *psProj) forward(lon, lat float64) (float64, float64, error) {
	con1 := p.fac * adjustLon(lon-p.lonCenter)
	con2 := p.fac * lat
	ts := tsfnz(p.e, con2, math.Sin(con2))
	var rh float64
	if p.ind {
		rh = p.rMajor * p.mcs * ts / p.tcs
	} else {
		rh = 2.0 * p.rMajor * ts / p.e4
	}
	x := p.fac*rh*math.Sin(con1) + p.falseEasting
	y := -p.fac*rh*math.Cos(con1) + p.falseNorthing
	return x, y, nil
}

func (p *psProj) inverse(x, y float64) (float64, float64, error) {
	x = (x - p.falseEasting) * p.fac
	y = (y - p.falseNorthing) * p.fac
	rh := math.Sqrt(x*x + y*y)

	var ts float64
	if p.ind {
		ts = rh * p.tcs / (p.rMajor * p.mcs)
	} else {
		ts = rh * p.e4 / (2.0 * p.rMajor)
	}
	phi, err := phi2z(p.e, ts)
	if err != nil {
		return 0, 0, err
	}
	lat := p.fac * phi

	lon := p.fac * p.lonCenter
	if rh != 0 {
		lon = adjustLon(p.fac*math.Atan2(x, -y) + p.lonCenter)
	}
	return lon, lat, nil
}

func (p *psProj) report() {
	reportTitle("POLAR STEREOGRAPHIC")
	reportRadii(p.rMajor, p.rMajor*math.Sqrt(1.0-p.e*p.e))
	reportCentralMeridian(p.lonCenter)
	printInfof("   Latitude of True Scale:           %f degrees", p.latTrueScale*radiansToDegrees)
	reportFalseOffsets(p.falseEasting, p.falseNorthing)
}

func psForwardInit(t *transformation) error {
	p, err := psProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.forward
	t.printInfo = p.report
	return nil
}

func psInverseInit(t *transformation) error {
	p, err := psProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.inverse
	t.printInfo = p.report
	return nil
}
