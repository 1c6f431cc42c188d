package gctp

// ProjCode identifies a map projection.  The numbering matches the
// traditional GCTP projection codes so that descriptors read from existing
// metadata files keep their meaning.
type ProjCode int

// Projection codes.  Only Geographic, UTM, StatePlane,
// LambertConformalConic, PolarStereographic and TransverseMercator have
// transformations implemented; the remaining codes are recognized but
// rejected as unsupported when a transformation is created.
const (
	Geographic ProjCode = iota
	UTM
	StatePlane
	AlbersConicEqualArea
	LambertConformalConic
	Mercator
	PolarStereographic
	Polyconic
	EquidistantConic
	TransverseMercator
	Stereographic
	LambertAzimuthal
	AzimuthalEquidistant
	Gnomonic
	Orthographic
	GeneralVerticalNearSide
	Sinusoidal
	Equirectangular
	MillerCylindrical
	VanDerGrinten
	ObliqueMercator
	Robinson
	SpaceObliqueMercator
	AlaskaConformal
	InterruptedGoode
	Mollweide
	InterruptedMollweide
	Hammer
	WagnerIV
	WagnerVII
	OblatedEqualArea
	IntegerizedSinusoidal
)

const maxProjCode = IntegerizedSinusoidal

// UnitCode identifies the linear or angular units of a projection's
// coordinates.
type UnitCode int

// Unit codes.
const (
	Radians UnitCode = iota
	Feet    // US survey feet
	Meters
	Seconds // arc seconds
	Degrees
	InternationalFeet
)

// SpheroidCode selects a reference spheroid from the built-in axis table.
// A negative code requests the axes from the projection parameters instead
// (see Projection).
type SpheroidCode int

// Spheroid codes.
const (
	Clarke1866 SpheroidCode = iota
	Clarke1880
	Bessel
	International1967
	International1909
	WGS72
	Everest
	WGS66
	GRS80
	Airy
	ModifiedEverest
	ModifiedAiry
	WGS84
	SoutheastAsia
	AustralianNational
	Krassovsky
	Hough
	Mercury1960
	ModifiedMercury1968
	NormalSphere // radius 6370997 m
)

// ParameterCount is the number of positional projection parameters carried
// by a Projection.
const ParameterCount = 15

// Projection describes one side of a coordinate transformation: which
// projection, in which zone, with which units and reference spheroid, and
// the projection-specific parameters.
//
// The Parameters slots follow the traditional GCTP layout.  For the
// projections implemented here:
//
//	[0..1]  semi-major/semi-minor axis overrides when Spheroid < 0
//	        (UTM with Zone 0: packed DMS longitude/latitude instead)
//	[2]     scale factor (TM); first standard parallel, packed DMS (Lambert)
//	[3]     second standard parallel, packed DMS (Lambert)
//	[4]     central meridian, packed DMS
//	[5]     latitude of origin, packed DMS (true-scale latitude for
//	        Polar Stereographic)
//	[6]     false easting, meters
//	[7]     false northing, meters
//
// Zone selects the UTM zone (negative for the southern hemisphere, 0 to
// derive it from Parameters[0..1]) or the State Plane zone.  Other
// projections ignore it.
type Projection struct {
	Code       ProjCode
	Zone       int
	Units      UnitCode
	Spheroid   SpheroidCode
	Parameters [ParameterCount]float64
}
