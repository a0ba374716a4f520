/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package frame

/*****************************************************************************************************************/

import (
	"github.com/observerly/skywcs/pkg/matrix"
)

/*****************************************************************************************************************/

const arcsecToRad = 3.14159265358979323846 / 648000.0

/*****************************************************************************************************************/

// precessionMatrix composes the classical ζ,z,θ precession angles
// (arcseconds) into the rotation Rz(-z)·Ry(θ)·Rz(-ζ) that carries a
// mean-equatorial vector at the starting equinox to the mean-equatorial
// vector at the final equinox.
func precessionMatrix(zetaArcsec, zArcsec, thetaArcsec float64) matrix.Matrix3 {
	zeta := zetaArcsec * arcsecToRad
	z := zArcsec * arcsecToRad
	theta := thetaArcsec * arcsecToRad

	return matrix.Compose(matrix.RotationZ(-zeta), matrix.RotationY(theta), matrix.RotationZ(-z))
}

/*****************************************************************************************************************/

// fk5PrecessionMatrix implements the IAU 1976 (Lieske 1979) precession
// model used for FK5/J2000/ICRS-family conversions: T0 is the interval in
// Julian centuries from J2000.0 to the starting equinox, T is the
// interval in Julian centuries from the starting to the final equinox.
func fk5PrecessionMatrix(fromJD, toJD float64) matrix.Matrix3 {
	t0 := (fromJD - 2451545.0) / 36525.0
	t := (toJD - fromJD) / 36525.0

	zeta := (2306.2181+1.39656*t0-0.000139*t0*t0)*t + (0.30188-0.000344*t0)*t*t + 0.017998*t*t*t
	z := (2306.2181+1.39656*t0-0.000139*t0*t0)*t + (1.09468+0.000066*t0)*t*t + 0.018203*t*t*t
	theta := (2004.3109-0.85330*t0-0.000217*t0*t0)*t - (0.42665+0.000217*t0)*t*t - 0.041833*t*t*t

	return precessionMatrix(zeta, z, theta)
}

/*****************************************************************************************************************/

// fk4PrecessionMatrix implements the Newcomb precession constants used
// for FK4 (Besselian) conversions, per the classical (pre-IAU1976) theory.
func fk4PrecessionMatrix(fromJD, toJD float64) matrix.Matrix3 {
	t0 := (fromJD - 2415020.31352) / 36524.2199 // Besselian centuries from B1900
	t := (toJD - fromJD) / 36524.2199

	zeta := (2304.25+1.396*t0)*t + 0.302*t*t + 0.018*t*t*t
	z := (2304.25+1.396*t0)*t + 1.093*t*t + 0.018*t*t*t
	theta := (2004.682-0.853*t0)*t - 0.426*t*t - 0.042*t*t*t

	return precessionMatrix(zeta, z, theta)
}

/*****************************************************************************************************************/
