/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package angle provides the trig wrappers, iterative-solver guards, and
// angle normalization helpers shared by the projection kernels and the
// frame conversion engine. Angles cross package boundaries in degrees;
// internal math is always in radians.
package angle

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// RAD2DEG and DEG2RAD are the shared degree/radian conversion factors.
var RAD2DEG = 180 / math.Pi

/*****************************************************************************************************************/

var DEG2RAD = math.Pi / 180

/*****************************************************************************************************************/

// DefaultClampTolerance is the default tolerance used by ClampUnit, chosen
// to sit within the ≤1e-12 bound spec.md §4.4 requires of asin/acos guards.
const DefaultClampTolerance = 1e-12

/*****************************************************************************************************************/

// MaxIterations bounds every iterative solver in this module (projection
// root-finders, Airy/Mollweide/polyconic inverses): spec.md §5 requires
// operations to be bounded rather than loop indefinitely.
const MaxIterations = 100

/*****************************************************************************************************************/

// ConvergenceTolerance is the |f| < ε stopping criterion shared by the
// bracketed and Newton solvers in pkg/projection.
const ConvergenceTolerance = 1e-12

/*****************************************************************************************************************/

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * DEG2RAD
}

/*****************************************************************************************************************/

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * RAD2DEG
}

/*****************************************************************************************************************/

// NormalizeDegrees folds a longitude in degrees into [0, 360).
func NormalizeDegrees(lon float64) float64 {
	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	return lon
}

/*****************************************************************************************************************/

// NormalizeRadians folds a longitude in radians into [0, 2π).
func NormalizeRadians(lon float64) float64 {
	lon = math.Mod(lon, 2*math.Pi)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	return lon
}

/*****************************************************************************************************************/

// ClampUnit clamps v into [-1, 1] so that asin/acos never see a domain
// overshoot caused by floating point rounding. It reports whether the
// input was already within tolerance of the unit interval; a false return
// signals a genuine (not just rounding-induced) domain violation.
func ClampUnit(v, tolerance float64) (clamped float64, ok bool) {
	if v > 1 {
		if v-1 > tolerance {
			return 1, false
		}
		return 1, true
	}
	if v < -1 {
		if -1-v > tolerance {
			return -1, false
		}
		return -1, true
	}
	return v, true
}

/*****************************************************************************************************************/

// Asin is an asin that clamps its argument within DefaultClampTolerance
// rather than returning NaN on a rounding-induced overshoot.
func Asin(v float64) float64 {
	c, _ := ClampUnit(v, DefaultClampTolerance)
	return math.Asin(c)
}

/*****************************************************************************************************************/

// Acos is an acos that clamps its argument within DefaultClampTolerance
// rather than returning NaN on a rounding-induced overshoot.
func Acos(v float64) float64 {
	c, _ := ClampUnit(v, DefaultClampTolerance)
	return math.Acos(c)
}

/*****************************************************************************************************************/
