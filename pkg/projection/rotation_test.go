/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/skywcs/pkg/angle"
)

/*****************************************************************************************************************/

func TestNativeToCelestialRoundTrip(t *testing.T) {
	pose := Pose{
		PhiP:   math.Pi,
		ThetaP: angle.Radians(30),
		AlphaP: angle.Radians(120),
		DeltaP: angle.Radians(30),
	}

	phi := angle.Radians(15)
	theta := angle.Radians(80)

	alpha, delta := NativeToCelestial(phi, theta, pose)
	gotPhi, gotTheta := CelestialToNative(alpha, delta, pose)

	if math.Abs(gotPhi-phi) > 1e-9 {
		t.Errorf("φ round trip = %v; want %v", gotPhi, phi)
	}
	if math.Abs(gotTheta-theta) > 1e-9 {
		t.Errorf("θ round trip = %v; want %v", gotTheta, theta)
	}
}

/*****************************************************************************************************************/

func TestNativeToCelestialAtFiducialPointIsCrval(t *testing.T) {
	alphaP := angle.Radians(83.633212)
	deltaP := angle.Radians(22.014458)

	phi0, theta0 := DefaultNativePose("TAN")
	lonpole := DefaultLonpole(theta0, angle.Degrees(deltaP))

	phiP, thetaP := NativePoleFromCelestial(phi0, theta0, alphaP, deltaP, angle.Radians(lonpole), math.Pi/2)

	pose := Pose{Phi0: phi0, Theta0: theta0, AlphaP: alphaP, DeltaP: deltaP, PhiP: phiP, ThetaP: thetaP}

	alpha, delta := NativeToCelestial(phi0, theta0, pose)

	if math.Abs(alpha-alphaP) > 1e-9 {
		t.Errorf("α at fiducial point = %v; want %v", alpha, alphaP)
	}
	if math.Abs(delta-deltaP) > 1e-9 {
		t.Errorf("δ at fiducial point = %v; want %v", delta, deltaP)
	}
}

/*****************************************************************************************************************/
