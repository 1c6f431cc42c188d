package gctp

import "math"

// Transverse Mercator, plus the UTM layer on top of it.  The ellipsoidal
// forward and inverse use Snyder's series (Professional Paper 1395,
// equations 8-9 through 8-25); near-spherical spheroids take the exact
// spherical forms instead.

const (
	utmScaleFactor   = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0

	// tmInverseIterations bounds the footpoint latitude iteration of the
	// ellipsoidal inverse.
	tmInverseIterations = 6
)

// tmProj is the precomputed state shared by the Transverse Mercator and
// UTM transforms.
type tmProj struct {
	rMajor         float64
	scaleFactor    float64
	lonCenter      float64
	latOrigin      float64
	falseEasting   float64
	falseNorthing  float64
	es             float64 // eccentricity squared
	esp            float64 // second eccentricity squared
	e0, e1, e2, e3 float64
	ml0            float64 // meridian distance at the origin latitude
	sphere         bool
	zone           int // UTM zone, 0 for plain Transverse Mercator
}

func newTMProj(rMajor, rMinor, scaleFactor, lonCenter, latOrigin, falseEasting, falseNorthing float64) *tmProj {
	p := &tmProj{
		rMajor:        rMajor,
		scaleFactor:   scaleFactor,
		lonCenter:     lonCenter,
		latOrigin:     latOrigin,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
	}
	temp := rMinor / rMajor
	p.es = 1.0 - temp*temp
	p.esp = p.es / (1.0 - p.es)
	p.e0 = e0fn(p.es)
	p.e1 = e1fn(p.es)
	p.e2 = e2fn(p.es)
	p.e3 = e3fn(p.es)
	p.ml0 = rMajor * mlfn(p.e0, p.e1, p.e2, p.e3, latOrigin)
	p.sphere = p.es < 1.0e-5
	return p
}

// tmProjFromParams builds the shared state from a Transverse Mercator
// descriptor: scale factor in Parameters[2], central meridian and origin
// latitude in packed DMS in Parameters[4..5], false easting/northing in
// Parameters[6..7].
func tmProjFromParams(proj *Projection) (*tmProj, error) {
	rMajor, rMinor, err := spheroidAxesFor(proj.Spheroid, &proj.Parameters)
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
	return newTMProj(rMajor, rMinor, proj.Parameters[2], lonCenter, latOrigin,
		proj.Parameters[6], proj.Parameters[7]), nil
}

// utmProjFromParams builds the shared state from a UTM descriptor.  A zero
// zone is derived from a packed DMS longitude/latitude in
// Parameters[0..1], with southern-hemisphere latitudes selecting the
// negative zone.  A negative spheroid code falls back to Clarke 1866
// rather than reading axes from the parameters.
func utmProjFromParams(proj *Projection) (*tmProj, error) {
	spheroid := proj.Spheroid
	if spheroid < 0 {
		spheroid = Clarke1866
	}
	rMajor, rMinor, err := spheroidAxesFor(spheroid, &proj.Parameters)
	if err != nil {
		return nil, err
	}

	zone := proj.Zone
	if zone == 0 {
		lon, err := DMSToDegrees(proj.Parameters[0])
		if err != nil {
			return nil, err
		}
		lat, err := DMSToDegrees(proj.Parameters[1])
		if err != nil {
			return nil, err
		}
		zone = CalcUTMZone(lon)
		if lat < 0 {
			zone = -zone
		}
	}
	absZone := zone
	if absZone < 0 {
		absZone = -absZone
	}
	if absZone < 1 || absZone > 60 {
		return nil, configErrorf("illegal UTM zone %d", zone)
	}

	lonCenter := float64(6*absZone-183) * 3600.0 * secondsToRadians
	falseNorthing := 0.0
	if zone < 0 {
		falseNorthing = utmFalseNorthing
	}
	p := newTMProj(rMajor, rMinor, utmScaleFactor, lonCenter, 0.0,
		utmFalseEasting, falseNorthing)
	p.zone = zone
	return p, nil
}

// CalcUTMZone returns the UTM zone number for a longitude in decimal
// degrees in the range [-180, 180).
func CalcUTMZone(lon float64) int {
	return int((lon+180.0)/6.0 + 1.0)
}

func (p *tmProj) forward(lon, lat float64) (float64, float64, error) {
	deltaLon := adjustLon(lon - p.lonCenter)
	sinPhi := math.Sin(lat)
	cosPhi := math.Cos(lat)

	if p.sphere {
		b := cosPhi * math.Sin(deltaLon)
		if math.Abs(math.Abs(b)-1.0) < epsilon {
			return 0, 0, geometryErrorf("point (%g, %g) projects into infinity", lon, lat)
		}
		x := 0.5*p.rMajor*p.scaleFactor*math.Log((1.0+b)/(1.0-b)) + p.falseEasting
		con := math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1.0-b*b))
		if lat < 0 {
			con = -con
		}
		y := p.rMajor*p.scaleFactor*(con-p.latOrigin) + p.falseNorthing
		return x, y, nil
	}

	al := cosPhi * deltaLon
	als := al * al
	c := p.esp * cosPhi * cosPhi
	tq := math.Tan(lat)
	t := tq * tq
	con := 1.0 - p.es*sinPhi*sinPhi
	n := p.rMajor / math.Sqrt(con)
	ml := p.rMajor * mlfn(p.e0, p.e1, p.e2, p.e3, lat)

	x := p.scaleFactor*n*al*(1.0+als/6.0*(1.0-t+c+
		als/20.0*(5.0-18.0*t+t*t+72.0*c-58.0*p.esp))) + p.falseEasting
	y := p.scaleFactor*(ml-p.ml0+n*tq*(als*(0.5+als/24.0*(5.0-t+9.0*c+4.0*c*c+
		als/30.0*(61.0-58.0*t+t*t+600.0*c-330.0*p.esp))))) + p.falseNorthing
	return x, y, nil
}

func (p *tmProj) inverse(x, y float64) (float64, float64, error) {
	x -= p.falseEasting
	y -= p.falseNorthing

	if p.sphere {
		f := math.Exp(x / (p.rMajor * p.scaleFactor))
		g := 0.5 * (f - 1.0/f)
		temp := p.latOrigin + y/(p.rMajor*p.scaleFactor)
		h := math.Cos(temp)
		con := math.Sqrt((1.0 - h*h) / (1.0 + g*g))
		lat := asinz(con)
		if temp < 0 {
			lat = -lat
		}
		lon := p.lonCenter
		if g != 0 || h != 0 {
			lon = adjustLon(math.Atan2(g, h) + p.lonCenter)
		}
		return lon, lat, nil
	}

	// Footpoint latitude by iteration.
	con := (p.ml0 + y/p.scaleFactor) / p.rMajor
	phi := con
	for i := 0; ; i++ {
		deltaPhi := (con+p.e1*math.Sin(2.0*phi)-p.e2*math.Sin(4.0*phi)+
			p.e3*math.Sin(6.0*phi))/p.e0 - phi
		phi += deltaPhi
		if math.Abs(deltaPhi) <= epsilon {
			break
		}
		if i >= tmInverseIterations {
			return 0, 0, convergenceErrorf("latitude failed to converge for northing %g", y+p.falseNorthing)
		}
	}

	if math.Abs(phi) >= halfPi {
		return p.lonCenter, halfPi * sign(y), nil
	}

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)
	c := p.esp * cosPhi * cosPhi
	cs := c * c
	t := tanPhi * tanPhi
	ts := t * t
	con = 1.0 - p.es*sinPhi*sinPhi
	n := p.rMajor / math.Sqrt(con)
	r := n * (1.0 - p.es) / con
	d := x / (n * p.scaleFactor)
	ds := d * d

	lat := phi - (n*tanPhi*ds/r)*(0.5-ds/24.0*(5.0+3.0*t+10.0*c-4.0*cs-9.0*p.esp-
		ds/30.0*(61.0+90.0*t+298.0*c+45.0*ts-252.0*p.esp-3.0*cs)))
	lon := adjustLon(p.lonCenter + d*(1.0-ds/6.0*(1.0+2.0*t+c-
		ds/20.0*(5.0-2.0*c+28.0*t-3.0*cs+8.0*p.esp+24.0*ts)))/cosPhi)
	return lon, lat, nil
}

func (p *tmProj) report(title string) {
	reportTitle(title)
	if p.zone != 0 {
		printInfof("   Zone:                             %d", p.zone)
	}
	reportRadii(p.rMajor, p.rMajor*math.Sqrt(1.0-p.es))
	printInfof("   Scale Factor at C. Meridian:      %f", p.scaleFactor)
	reportCentralMeridian(p.lonCenter)
	reportOriginLatitude(p.latOrigin)
	reportFalseOffsets(p.falseEasting, p.falseNorthing)
}

func tmForwardInit(t *transformation) error {
	p, err := tmProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.forward
	t.printInfo = func() { p.report("TRANSVERSE MERCATOR") }
	return nil
}

func tmInverseInit(t *transformation) error {
	p, err := tmProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.inverse
	t.printInfo = func() { p.report("TRANSVERSE MERCATOR") }
	return nil
}

func utmForwardInit(t *transformation) error {
	p, err := utmProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.forward
	t.printInfo = func() { p.report("UNIVERSAL TRANSVERSE MERCATOR (UTM)") }
	return nil
}

func utmInverseInit(t *transformation) error {
	p, err := utmProjFromParams(&t.proj)
	if err != nil {
		return err
	}
	t.cache = p
	t.transform = p.inverse
	t.printInfo = func() { p.report("UNIVERSAL TRANSVERSE MERCATOR (UTM)") }
	return nil
}
