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
	"github.com/observerly/skywcs/pkg/errs"
)

/*****************************************************************************************************************/

// sflKernel is the Sanson-Flamsteed (sinusoidal) projection: each
// parallel is scaled by its own cosine, with no meridian convergence
// correction.
type sflKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newSFL(pose Pose) Projection { return &sflKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *sflKernel) Code() string { return "SFL" }

func (k *sflKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	theta := angle.Radians(yDeg)
	cosTheta := math.Cos(theta)
	if cosTheta == 0 {
		return 0, theta, nil
	}
	phi := angle.Radians(xDeg) / cosTheta
	return phi, theta, nil
}

func (k *sflKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	x := angle.Degrees(phiRad) * math.Cos(thetaRad)
	y := angle.Degrees(thetaRad)
	return x, y, nil
}

func (k *sflKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *sflKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("SFL") }

func (k *sflKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// parKernel is the parabolic projection.
type parKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newPAR(pose Pose) Projection { return &parKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *parKernel) Code() string { return "PAR" }

func (k *parKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	s, ok := angle.ClampUnit(yDeg/(angle.RAD2DEG*math.Pi), angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "PAR", X: xDeg, Y: yDeg, Reason: "y is beyond the projection's domain"}
	}
	theta := 3 * math.Asin(s)

	denom := 2*math.Cos(2*theta/3) - 1
	if denom == 0 {
		return 0, theta, nil
	}
	phi := xDeg / (angle.RAD2DEG * denom)

	return phi, theta, nil
}

func (k *parKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	x := angle.RAD2DEG * phiRad * (2*math.Cos(2*thetaRad/3) - 1)
	y := angle.RAD2DEG * math.Pi * math.Sin(thetaRad/3)
	return x, y, nil
}

func (k *parKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *parKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("PAR") }

func (k *parKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// molKernel is the Mollweide projection, solved via the auxiliary angle ψ
// satisfying 2ψ+sin2ψ=π sinθ (Newton iteration).
type molKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newMOL(pose Pose) Projection { return &molKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *molKernel) Code() string { return "MOL" }

func (k *molKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	sinPsi, ok := angle.ClampUnit(yDeg/(angle.RAD2DEG*math.Sqrt2), angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "MOL", X: xDeg, Y: yDeg, Reason: "y is beyond the projection's domain"}
	}
	psi := math.Asin(sinPsi)

	sinTheta, ok := angle.ClampUnit((2*psi+math.Sin(2*psi))/math.Pi, angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.MathError{Op: "MOL.Project", Reason: "auxiliary angle out of range"}
	}
	theta := math.Asin(sinTheta)

	cosPsi := math.Cos(psi)
	if cosPsi == 0 {
		return 0, theta, nil
	}

	phi := xDeg * math.Pi / (angle.RAD2DEG * 2 * math.Sqrt2 * cosPsi)

	return phi, theta, nil
}

func (k *molKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	f := func(psi float64) float64 { return 2*psi + math.Sin(2*psi) - math.Pi*math.Sin(thetaRad) }
	df := func(psi float64) float64 { return 2 + 2*math.Cos(2*psi) }

	psi, err := newton("MOL", f, df, thetaRad)
	if err != nil {
		return 0, 0, err
	}

	x := angle.RAD2DEG * (2 * math.Sqrt2 / math.Pi) * phiRad * math.Cos(psi)
	y := angle.RAD2DEG * math.Sqrt2 * math.Sin(psi)

	return x, y, nil
}

func (k *molKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *molKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("MOL") }

func (k *molKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// aitKernel is the Hammer-Aitoff projection, which has a direct closed-form
// inverse unlike most pseudo-cylindrical projections.
type aitKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newAIT(pose Pose) Projection { return &aitKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *aitKernel) Code() string { return "AIT" }

func (k *aitKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	x := xDeg / angle.RAD2DEG
	y := yDeg / angle.RAD2DEG

	z2 := 1 - (x/4)*(x/4) - (y/2)*(y/2)
	if z2 < 0 {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "AIT", X: xDeg, Y: yDeg, Reason: "point lies outside the projection's ellipse"}
	}
	z := math.Sqrt(z2)

	phi := 2 * math.Atan2(z*x, 2*(2*z*z-1))
	sinTheta, ok := angle.ClampUnit(z*y, angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.MathError{Op: "AIT.Project", Reason: "latitude argument out of range"}
	}
	theta := math.Asin(sinTheta)

	return phi, theta, nil
}

func (k *aitKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	gamma := math.Sqrt(2 / (1 + math.Cos(thetaRad)*math.Cos(phiRad/2)))

	x := angle.RAD2DEG * 2 * gamma * math.Cos(thetaRad) * math.Sin(phiRad/2)
	y := angle.RAD2DEG * gamma * math.Sin(thetaRad)

	return x, y, nil
}

func (k *aitKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *aitKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("AIT") }

func (k *aitKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// bonKernel is the Bonne projection (a pseudoconic, grouped here with the
// pseudo-cylindricals per spec.md §3): θ1=PV2_1 is the standard parallel,
// reducing to the sinusoidal (SFL) projection at θ1=0.
type bonKernel struct {
	pose   Pose
	theta1 float64
}

/*****************************************************************************************************************/

func newBON(params []float64, pose Pose) (Projection, error) {
	theta1 := angle.Radians(param(params, 1, 0))
	return &bonKernel{pose: pose, theta1: theta1}, nil
}

/*****************************************************************************************************************/

func (k *bonKernel) Code() string { return "BON" }

/*****************************************************************************************************************/

func (k *bonKernel) cotTheta1() float64 {
	if k.theta1 == 0 {
		return 0
	}
	return 1 / math.Tan(k.theta1)
}

/*****************************************************************************************************************/

func (k *bonKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	if k.theta1 == 0 {
		return (&sflKernel{}).Project(xDeg, yDeg)
	}

	c := k.cotTheta1()
	x := xDeg / angle.RAD2DEG
	y := yDeg / angle.RAD2DEG

	rho := math.Copysign(math.Hypot(x, c-y), k.theta1)
	theta := c + k.theta1 - rho

	cosTheta := math.Cos(theta)
	e := math.Atan2(x, c-y)

	if cosTheta == 0 {
		return 0, theta, nil
	}

	phi := rho * e / cosTheta

	return phi, theta, nil
}

/*****************************************************************************************************************/

func (k *bonKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	if k.theta1 == 0 {
		return (&sflKernel{}).ProjectInverse(phiRad, thetaRad)
	}

	c := k.cotTheta1()
	rho := c + k.theta1 - thetaRad
	e := phiRad * math.Cos(thetaRad) / rho

	x := angle.RAD2DEG * rho * math.Sin(e)
	y := angle.RAD2DEG * (c - rho*math.Cos(e))

	return x, y, nil
}

/*****************************************************************************************************************/

func (k *bonKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *bonKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("BON") }

/*****************************************************************************************************************/

func (k *bonKernel) Parameters() []float64 { return []float64{angle.Degrees(k.theta1)} }

/*****************************************************************************************************************/
