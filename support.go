package gctp

import "math"

// Shared numeric helpers for the ellipsoidal projections.  Formula and
// variable names follow Snyder's Professional Paper 1395.

const (
	halfPi = math.Pi / 2
	twoPi  = 2 * math.Pi

	// epsilon is the shared tolerance for iterative solvers and for the
	// near-pole and near-meridian special cases.
	epsilon = 1.0e-10

	// secondsToRadians converts arc seconds to radians.
	secondsToRadians = 4.848136811095359e-6

	// maxSolverIterations bounds the phi2/phi3 fixed-point solvers.
	maxSolverIterations = 15
)

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// asinz is Asin with the argument clamped to [-1, 1] to absorb roundoff
// from upstream trigonometry.
func asinz(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Asin(x)
}

// adjustLon reduces an angle in radians to the range [-pi, pi].
func adjustLon(lon float64) float64 {
	if math.Abs(lon) <= math.Pi {
		return lon
	}
	lon = math.Mod(lon, twoPi)
	if lon > math.Pi {
		lon -= twoPi
	} else if lon < -math.Pi {
		lon += twoPi
	}
	return lon
}

// e0fn through e3fn compute the coefficients of the meridian distance
// series for eccentricity-squared x; e4fn computes the constant e4 used by
// Polar Stereographic.
func e0fn(x float64) float64 {
	return 1.0 - 0.25*x*(1.0+x/16.0*(3.0+1.25*x))
}

func e1fn(x float64) float64 {
	return 0.375 * x * (1.0 + 0.25*x*(1.0+0.46875*x))
}

func e2fn(x float64) float64 {
	return 0.05859375 * x * x * (1.0 + 0.75*x)
}

func e3fn(x float64) float64 {
	return x * x * x * (35.0 / 3072.0)
}

func e4fn(x float64) float64 {
	con := 1.0 + x
	com := 1.0 - x
	return math.Sqrt(math.Pow(con, con) * math.Pow(com, com))
}

// mlfn computes the distance along the meridian from the equator to
// latitude phi, in units of the semi-major axis.
func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2.0*phi) + e2*math.Sin(4.0*phi) - e3*math.Sin(6.0*phi)
}

// msfnz computes the small m constant: the radius of the parallel of
// latitude scaled by the semi-major axis.
func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1.0-con*con)
}

// tsfnz computes the small t constant for latitude phi.
func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1.0-con)/(1.0+con), com)
	return math.Tan(0.5*(halfPi-phi)) / con
}

// phi2z solves for the latitude with small t value ts by fixed-point
// iteration.
func phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := halfPi - 2.0*math.Atan(ts)
	for i := 0; i <= maxSolverIterations; i++ {
		sinpi := math.Sin(phi)
		con := eccent * sinpi
		dphi := halfPi - 2.0*math.Atan(ts*math.Pow((1.0-con)/(1.0+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= epsilon {
			return phi, nil
		}
	}
	return 0, convergenceErrorf("latitude solver failed to converge for ts %g", ts)
}

// phi3z solves for the latitude with meridian distance ml given the
// meridian series coefficients, by fixed-point iteration.
func phi3z(ml, e0, e1, e2, e3 float64) (float64, error) {
	phi := ml
	for i := 0; i <= maxSolverIterations; i++ {
		dphi := (ml + e1*math.Sin(2.0*phi) - e2*math.Sin(4.0*phi) + e3*math.Sin(6.0*phi)) / e0
		dphi -= phi
		phi += dphi
		if math.Abs(dphi) <= epsilon {
			return phi, nil
		}
	}
	return 0, convergenceErrorf("latitude solver failed to converge for meridian distance %g", ml)
}
