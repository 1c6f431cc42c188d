package gctp

// State Plane Coordinate System.  Each zone is a thin layer over a
// Transverse Mercator, Lambert Conformal Conic, Polyconic or Oblique
// Mercator projection; the zone table supplies the child projection's
// parameters and the transform delegates to an owned child.  Only the
// Transverse Mercator and Lambert zones are supported.

// Child projection kinds in the zone tables.
const (
	spcsUndefined = iota
	spcsTransverseMercator
	spcsLambert
	spcsPolyconic
	spcsObliqueMercator
)

// statePlaneZone is one row of a zone table.  The parameter slots are:
//
//	[0..1]  unused
//	[2]     central meridian, packed two-digit DMS
//	[3]     scale factor (Transverse Mercator kinds)
//	[4..5]  standard parallels, packed two-digit DMS (Lambert kinds)
//	[6]     latitude of origin, packed two-digit DMS
//	[7]     false easting, meters
//	[8]     false northing, meters
type statePlaneZone struct {
	id     int
	kind   int
	params [9]float64
	name   string
}

// statePlaneProj owns the child transformation for one direction of a
// State Plane conversion.
type statePlaneProj struct {
	zone  int
	name  string
	datum string
	child *transformation
}

// statePlaneChildProjection resolves the zone for a State Plane descriptor
// and builds the child projection descriptor from the table row.  The
// spheroid code selects the datum: Clarke 1866 for NAD27, GRS80 for NAD83.
func statePlaneChildProjection(proj *Projection) (*statePlaneZone, string, *Projection, error) {
	var zones []statePlaneZone
	var datum string
	switch proj.Spheroid {
	case Clarke1866:
		zones = nad27Zones
		datum = "NAD27"
	case GRS80:
		zones = nad83Zones
		datum = "NAD83"
	default:
		return nil, "", nil, configErrorf("state plane requires the Clarke 1866 or GRS80 spheroid, got code %d", proj.Spheroid)
	}

	var zone *statePlaneZone
	for i := range zones {
		if zones[i].id == proj.Zone && zones[i].kind != spcsUndefined {
			zone = &zones[i]
			break
		}
	}
	if zone == nil {
		return nil, "", nil, configErrorf("state plane zone %d is not defined for %s", proj.Zone, datum)
	}

	child := &Projection{
		Units:    Meters,
		Spheroid: proj.Spheroid,
	}
	switch zone.kind {
	case spcsTransverseMercator:
		child.Code = TransverseMercator
		child.Parameters[2] = zone.params[3]
		child.Parameters[4] = dms2To3(zone.params[2])
		child.Parameters[5] = dms2To3(zone.params[6])
		child.Parameters[6] = zone.params[7]
		child.Parameters[7] = zone.params[8]
	case spcsLambert:
		child.Code = LambertConformalConic
		child.Parameters[2] = dms2To3(zone.params[5])
		child.Parameters[3] = dms2To3(zone.params[4])
		child.Parameters[4] = dms2To3(zone.params[2])
		child.Parameters[5] = dms2To3(zone.params[6])
		child.Parameters[6] = zone.params[7]
		child.Parameters[7] = zone.params[8]
	default:
		return nil, "", nil, configErrorf("state plane zone %d (%s) uses an unsupported child projection", zone.id, zone.name)
	}
	return zone, datum, child, nil
}

func statePlaneInit(t *transformation, dir Direction) error {
	zone, datum, childProj, err := statePlaneChildProjection(&t.proj)
	if err != nil {
		return err
	}

	var childInit initFunc
	switch {
	case childProj.Code == TransverseMercator && dir == Forward:
		childInit = tmForwardInit
	case childProj.Code == TransverseMercator && dir == Inverse:
		childInit = tmInverseInit
	case childProj.Code == LambertConformalConic && dir == Forward:
		childInit = lamccForwardInit
	case childProj.Code == LambertConformalConic && dir == Inverse:
		childInit = lamccInverseInit
	default:
		return configErrorf("state plane zone %d resolved to unexpected child projection %d", zone.id, childProj.Code)
	}
	child := &transformation{proj: *childProj}
	if err := childInit(child); err != nil {
		return err
	}

	cache := &statePlaneProj{
		zone:  zone.id,
		name:  zone.name,
		datum: datum,
		child: child,
	}
	t.cache = cache
	t.transform = func(x, y float64) (float64, float64, error) {
		if cache.child == nil {
			return 0, 0, configErrorf("state plane transformation has been destroyed")
		}
		return cache.child.transform(x, y)
	}
	t.destroy = func() {
		if cache.child != nil {
			cache.child.release()
			cache.child = nil
		}
	}
	t.printInfo = func() {
		reportTitle("STATE PLANE")
		printInfof("   Zone:                             %d (%s)", cache.zone, cache.name)
		printInfof("   Datum:                            %s", cache.datum)
		if cache.child != nil && cache.child.printInfo != nil {
			cache.child.printInfo()
		}
	}
	return nil
}

func statePlaneForwardInit(t *transformation) error {
	return statePlaneInit(t, Forward)
}

func statePlaneInverseInit(t *transformation) error {
	return statePlaneInit(t, Inverse)
}
