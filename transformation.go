package gctp

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Direction selects which way a Transformation converts coordinates.
type Direction int

// Transform directions.
const (
	// Forward converts input-projection coordinates to output-projection
	// coordinates.
	Forward Direction = iota
	// Inverse converts output-projection coordinates to input-projection
	// coordinates.
	Inverse
)

// transformation holds one direction of a single projection's conversion:
// either projected-to-geodetic or geodetic-to-projected.  A nil transform
// marks the Geographic identity.  The cache field carries the
// projection-specific precomputed state; it exists so composite
// projections can own and tear down child state.
type transformation struct {
	proj       Projection
	unitFactor float64
	cache      any
	transform  func(x, y float64) (float64, float64, error)
	destroy    func()
	printInfo  func()
}

// initFunc prepares a transformation for one direction: it validates the
// projection in t.proj and installs the cache and the transform, destroy
// and printInfo hooks.
type initFunc func(t *transformation) error

// The projection registry.  A nil entry means the code is recognized but
// has no implementation; creating a transformation with it fails.
var (
	forwardInits = [maxProjCode + 1]initFunc{
		Geographic:            geographicInit,
		UTM:                   utmForwardInit,
		StatePlane:            statePlaneForwardInit,
		LambertConformalConic: lamccForwardInit,
		PolarStereographic:    psForwardInit,
		TransverseMercator:    tmForwardInit,
	}
	inverseInits = [maxProjCode + 1]initFunc{
		Geographic:            geographicInit,
		UTM:                   utmInverseInit,
		StatePlane:            statePlaneInverseInit,
		LambertConformalConic: lamccInverseInit,
		PolarStereographic:    psInverseInit,
		TransverseMercator:    tmInverseInit,
	}
)

// onlyThreadsafe records the OnlyAllowThreadsafeTransforms request.  Every
// projection in the registry precomputes its state at creation and keeps
// no per-call state, so the flag currently forbids nothing further.
var onlyThreadsafe bool

// OnlyAllowThreadsafeTransforms restricts transformation creation to
// projections whose transforms are re-entrant.  Call it once at
// application startup.  All currently registered projections qualify.
func OnlyAllowThreadsafeTransforms() {
	onlyThreadsafe = true
}

// chain is a one-way pipeline: source-projection coordinates through the
// source's inverse transform to geodetic coordinates, then through the
// target's forward transform to target-projection coordinates.
type chain struct {
	inverse *transformation
	forward *transformation
}

func (c *chain) run(x, y float64) (float64, float64, error) {
	lon := x * c.inverse.unitFactor
	lat := y * c.inverse.unitFactor
	if c.inverse.transform != nil {
		var err error
		lon, lat, err = c.inverse.transform(lon, lat)
		if err != nil {
			return 0, 0, err
		}
	}

	outX, outY := lon, lat
	if c.forward.transform != nil {
		var err error
		outX, outY, err = c.forward.transform(lon, lat)
		if err != nil {
			return 0, 0, err
		}
	}
	return outX * c.forward.unitFactor, outY * c.forward.unitFactor, nil
}

// Transformation converts coordinates between an input and an output
// projection, in either direction.  Create one with NewTransformation and
// release it with Destroy.  A Transformation is safe for concurrent use by
// a single goroutine; share work across goroutines by giving each its own
// Transformation.
type Transformation struct {
	forward   chain
	reverse   chain
	destroyed bool
}

// NewTransformation builds a transformation between the input and output
// projections.  All validation happens here: illegal or unsupported
// projection, zone, spheroid and unit codes and inconsistent parameters
// are reported as a ConfigurationError and no handle is returned.
func NewTransformation(input, output Projection) (*Transformation, error) {
	inInverse, inForward, err := initProjection(input)
	if err != nil {
		return nil, err
	}
	outInverse, outForward, err := initProjection(output)
	if err != nil {
		inInverse.release()
		inForward.release()
		return nil, err
	}

	t := &Transformation{
		forward: chain{inverse: inInverse, forward: outForward},
		reverse: chain{inverse: outInverse, forward: inForward},
	}
	if err := setUnitFactors(&t.forward); err != nil {
		t.Destroy()
		return nil, err
	}
	if err := setUnitFactors(&t.reverse); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// initProjection initializes both directional halves for one projection
// descriptor.
func initProjection(proj Projection) (inverse, forward *transformation, err error) {
	if proj.Code < 0 || proj.Code > maxProjCode {
		return nil, nil, configErrorf("unsupported projection code %d", proj.Code)
	}
	invInit := inverseInits[proj.Code]
	fwdInit := forwardInits[proj.Code]
	if invInit == nil || fwdInit == nil {
		return nil, nil, configErrorf("projection code %d has no implementation", proj.Code)
	}

	inverse = &transformation{proj: proj}
	if err := invInit(inverse); err != nil {
		return nil, nil, err
	}
	forward = &transformation{proj: proj}
	if err := fwdInit(forward); err != nil {
		inverse.release()
		return nil, nil, err
	}
	return inverse, forward, nil
}

func (t *transformation) release() {
	if t != nil && t.destroy != nil {
		t.destroy()
	}
}

// internalUnits returns the units a projection's transform functions work
// in: radians for Geographic, meters for everything else.
func internalUnits(code ProjCode) UnitCode {
	if code == Geographic {
		return Radians
	}
	return Meters
}

func setUnitFactors(c *chain) error {
	factor, err := unitConversionFactor(c.inverse.proj.Units, internalUnits(c.inverse.proj.Code))
	if err != nil {
		return err
	}
	c.inverse.unitFactor = factor

	factor, err = unitConversionFactor(internalUnits(c.forward.proj.Code), c.forward.proj.Units)
	if err != nil {
		return err
	}
	c.forward.unitFactor = factor
	return nil
}

// Transform converts a single coordinate pair.  Forward converts from the
// input projection to the output projection, Inverse the other way.  The
// coordinates are in the units of the source and target projection
// descriptors.
func (t *Transformation) Transform(x, y float64, dir Direction) (float64, float64, error) {
	if t == nil || t.destroyed {
		return 0, 0, configErrorf("transformation has been destroyed")
	}
	switch dir {
	case Forward:
		return t.forward.run(x, y)
	case Inverse:
		return t.reverse.run(x, y)
	default:
		return 0, 0, configErrorf("unsupported transform direction %d", dir)
	}
}

// ForwardLatLng projects a geodetic coordinate to output-projection
// coordinates.  The input projection must be Geographic.
func (t *Transformation) ForwardLatLng(ll s2.LatLng) (x, y float64, err error) {
	if t == nil || t.destroyed {
		return 0, 0, configErrorf("transformation has been destroyed")
	}
	if t.forward.inverse.proj.Code != Geographic {
		return 0, 0, configErrorf("input projection %d is not geographic", t.forward.inverse.proj.Code)
	}

	lon := adjustLon(ll.Lng.Radians())
	lat := ll.Lat.Radians()
	outX, outY := lon, lat
	if t.forward.forward.transform != nil {
		outX, outY, err = t.forward.forward.transform(lon, lat)
		if err != nil {
			return 0, 0, err
		}
	}
	return outX * t.forward.forward.unitFactor, outY * t.forward.forward.unitFactor, nil
}

// InverseLatLng converts output-projection coordinates to a geodetic
// coordinate.  The input projection must be Geographic.
func (t *Transformation) InverseLatLng(x, y float64) (s2.LatLng, error) {
	if t == nil || t.destroyed {
		return s2.LatLng{}, configErrorf("transformation has been destroyed")
	}
	if t.forward.inverse.proj.Code != Geographic {
		return s2.LatLng{}, configErrorf("input projection %d is not geographic", t.forward.inverse.proj.Code)
	}

	inv := t.reverse.inverse
	lon := x * inv.unitFactor
	lat := y * inv.unitFactor
	if inv.transform != nil {
		var err error
		lon, lat, err = inv.transform(lon, lat)
		if err != nil {
			return s2.LatLng{}, err
		}
	}
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}, nil
}

// InputProjection returns the input projection descriptor.
func (t *Transformation) InputProjection() Projection {
	return t.forward.inverse.proj
}

// OutputProjection returns the output projection descriptor.
func (t *Transformation) OutputProjection() Projection {
	return t.forward.forward.proj
}

// Destroy releases the transformation, cascading into any child
// projections.  It is safe to call more than once; after the first call
// every Transform reports an error.
func (t *Transformation) Destroy() {
	if t == nil || t.destroyed {
		return
	}
	t.destroyed = true
	for _, half := range []*transformation{
		t.forward.inverse, t.forward.forward,
		t.reverse.inverse, t.reverse.forward,
	} {
		half.release()
	}
}

// PrintInfo reports both projections through the message callback.
func (t *Transformation) PrintInfo() {
	if t == nil || t.destroyed {
		return
	}
	if t.forward.inverse.printInfo != nil {
		printInfof("Input %s", projectionLabel(t.forward.inverse.proj.Code))
		t.forward.inverse.printInfo()
	}
	if t.forward.forward.printInfo != nil {
		printInfof("Output %s", projectionLabel(t.forward.forward.proj.Code))
		t.forward.forward.printInfo()
	}
}

func projectionLabel(code ProjCode) string {
	switch code {
	case Geographic:
		return "Geographic projection"
	case UTM:
		return "UTM projection"
	case StatePlane:
		return "State Plane projection"
	case LambertConformalConic:
		return "Lambert Conformal Conic projection"
	case PolarStereographic:
		return "Polar Stereographic projection"
	case TransverseMercator:
		return "Transverse Mercator projection"
	default:
		return "projection"
	}
}
