// Package gctp provides transformations between geodetic coordinates
// (longitude and latitude) and projected planar coordinates (easting and
// northing) for the map projections used to georeference satellite raster
// products: Geographic, Universal Transverse Mercator, State Plane,
// Lambert Conformal Conic, Polar Stereographic and Transverse Mercator.
//
// A transformation is created from a pair of projection definitions and
// then used for any number of coordinate conversions:
//
//	in := gctp.Projection{Code: gctp.Geographic, Units: gctp.Degrees, Spheroid: gctp.WGS84}
//	out := gctp.Projection{Code: gctp.UTM, Zone: 13, Units: gctp.Meters, Spheroid: gctp.WGS84}
//	trans, err := gctp.NewTransformation(in, out)
//	if err != nil {
//		// handle err
//	}
//	defer trans.Destroy()
//	easting, northing, err := trans.Transform(-104.9903, 39.7392, gctp.Forward)
//
// Angular projection parameters are supplied in packed DMS format
// ((sign)DDDMMSSS.SSS, see DMSToDegrees).  Internally all transformations
// operate in radians and meters; the projection definitions carry the unit
// codes used to convert caller coordinates at both ends.
//
// Algorithm references:
//
//  1. Snyder, John P., "Map Projections--A Working Manual", U.S. Geological
//     Survey Professional Paper 1395, 1987.
//  2. Snyder, John P. and Voxland, Philip M., "An Album of Map Projections",
//     U.S. Geological Survey Professional Paper 1453, 1989.
package gctp
