/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/angle"
)

/*****************************************************************************************************************/

// NativeToCelestial rotates a native spherical coordinate (φ,θ), measured
// about the projection's own native pole, onto the sky, given the native
// pole's celestial pose (spec.md §4.3, Calabretta & Greisen eq. 5). All
// angles are in radians.
func NativeToCelestial(phiRad, thetaRad float64, pose Pose) (alphaRad, deltaRad float64) {
	sinTheta, cosTheta := math.Sincos(thetaRad)
	sinThetaP, cosThetaP := math.Sincos(pose.ThetaP)
	dPhi := phiRad - pose.PhiP
	sinDPhi, cosDPhi := math.Sincos(dPhi)

	sinDelta, ok := angle.ClampUnit(sinThetaP*sinTheta+cosThetaP*cosTheta*cosDPhi, angle.DefaultClampTolerance)
	if !ok {
		sinDelta = math.Copysign(1, sinDelta)
	}
	deltaRad = math.Asin(sinDelta)

	y := -cosTheta * sinDPhi
	x := sinTheta*cosThetaP - cosTheta*sinThetaP*cosDPhi

	alphaRad = pose.AlphaP + math.Atan2(y, x)

	return angle.NormalizeRadians(alphaRad), deltaRad
}

/*****************************************************************************************************************/

// CelestialToNative is the inverse of NativeToCelestial: it rotates a sky
// position back into the projection's native frame.
func CelestialToNative(alphaRad, deltaRad float64, pose Pose) (phiRad, thetaRad float64) {
	sinDelta, cosDelta := math.Sincos(deltaRad)
	sinThetaP, cosThetaP := math.Sincos(pose.ThetaP)
	dAlpha := alphaRad - pose.AlphaP
	sinDAlpha, cosDAlpha := math.Sincos(dAlpha)

	sinTheta, ok := angle.ClampUnit(sinThetaP*sinDelta+cosThetaP*cosDelta*cosDAlpha, angle.DefaultClampTolerance)
	if !ok {
		sinTheta = math.Copysign(1, sinTheta)
	}
	thetaRad = math.Asin(sinTheta)

	y := -cosDelta * sinDAlpha
	x := sinDelta*cosThetaP - cosDelta*sinThetaP*cosDAlpha

	phiRad = pose.PhiP + math.Atan2(y, x)

	return angle.NormalizeRadians(phiRad), thetaRad
}

/*****************************************************************************************************************/

// NativePoleFromCelestial computes θ_p — the native latitude of the
// celestial pole — from LONPOLE, the native fiducial point, and LATPOLE
// as a tie-break (spec.md §4.3, Cal. & Greisen eq. 9). φ_p is simply
// LONPOLE itself. All arguments and results are in radians; latpoleRad is
// the LATPOLE keyword value (defaulting to +π/2 when absent).
func NativePoleFromCelestial(phi0, theta0, alphaP, deltaP, lonpoleRad, latpoleRad float64) (phiP, thetaP float64) {
	phiP = lonpoleRad

	if theta0 == math.Pi/2 {
		return phiP, deltaP
	}

	sinTheta0, cosTheta0 := math.Sincos(theta0)
	a := sinTheta0
	b := cosTheta0 * math.Cos(phi0-phiP)

	r := math.Hypot(a, b)
	if r == 0 {
		return phiP, latpoleRad
	}

	psi := math.Atan2(b, a)

	s, ok := angle.ClampUnit(math.Sin(deltaP)/r, angle.DefaultClampTolerance)
	if !ok {
		s = math.Copysign(1, s)
	}
	base := math.Asin(s)

	candidate1 := base - psi
	candidate2 := math.Pi - base - psi

	if math.Abs(angle.NormalizeRadians(candidate1)-angle.NormalizeRadians(latpoleRad)) <=
		math.Abs(angle.NormalizeRadians(candidate2)-angle.NormalizeRadians(latpoleRad)) {
		thetaP = candidate1
	} else {
		thetaP = candidate2
	}

	return phiP, thetaP
}

/*****************************************************************************************************************/
