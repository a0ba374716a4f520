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

// carKernel is the plate carrée: native coordinates map directly onto a
// rectangular grid with no distortion correction at all.
type carKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newCAR(pose Pose) Projection { return &carKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *carKernel) Code() string { return "CAR" }

func (k *carKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	return angle.Radians(xDeg), angle.Radians(yDeg), nil
}

func (k *carKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	return angle.Degrees(phiRad), angle.Degrees(thetaRad), nil
}

func (k *carKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *carKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("CAR") }

func (k *carKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// merKernel is the Mercator projection: conformal, with latitude mapped
// through the inverse Gudermannian function.
type merKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newMER(pose Pose) Projection { return &merKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *merKernel) Code() string { return "MER" }

func (k *merKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	phi := angle.Radians(xDeg)
	theta := 2*math.Atan(math.Exp(yDeg/angle.RAD2DEG)) - math.Pi/2
	return phi, theta, nil
}

func (k *merKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	if math.Abs(thetaRad) >= math.Pi/2 {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "MER", X: phiRad, Y: thetaRad, Reason: "Mercator is undefined at the poles"}
	}
	x := angle.Degrees(phiRad)
	y := angle.RAD2DEG * math.Log(math.Tan(math.Pi/4+thetaRad/2))
	return x, y, nil
}

func (k *merKernel) Inside(phiRad, thetaRad float64) bool {
	return math.Abs(thetaRad) < math.Pi/2
}

func (k *merKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("MER") }

func (k *merKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/

// ceaKernel is the cylindrical equal-area projection; λ=PV2_1 sets the
// aspect ratio (λ=1 is Lambert's original).
type ceaKernel struct {
	pose   Pose
	lambda float64
}

/*****************************************************************************************************************/

func newCEA(params []float64, pose Pose) (Projection, error) {
	lambda := param(params, 1, 1)
	if lambda <= 0 {
		return nil, &errs.BadProjectionParameterError{Code: "CEA", Param: "PV2_1", Reason: "λ must be positive"}
	}
	return &ceaKernel{pose: pose, lambda: lambda}, nil
}

/*****************************************************************************************************************/

func (k *ceaKernel) Code() string { return "CEA" }

func (k *ceaKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	phi := angle.Radians(xDeg)

	sinTheta, ok := angle.ClampUnit(yDeg*k.lambda/angle.RAD2DEG, angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "CEA", X: xDeg, Y: yDeg, Reason: "y is beyond the projection's domain"}
	}

	return phi, math.Asin(sinTheta), nil
}

func (k *ceaKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	x := angle.Degrees(phiRad)
	y := angle.RAD2DEG * math.Sin(thetaRad) / k.lambda
	return x, y, nil
}

func (k *ceaKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

func (k *ceaKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("CEA") }

func (k *ceaKernel) Parameters() []float64 { return []float64{k.lambda} }

/*****************************************************************************************************************/

// cypKernel is the cylindrical perspective projection, viewed from μ
// native-sphere-radii on the far side, onto a cylinder of relative radius
// λ=PV2_2.
type cypKernel struct {
	pose       Pose
	mu, lambda float64
}

/*****************************************************************************************************************/

func newCYP(params []float64, pose Pose) (Projection, error) {
	mu := param(params, 1, 1)
	lambda := param(params, 2, 1)

	if mu+lambda == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "CYP", Param: "PV2_1,PV2_2", Reason: "μ+λ must not be zero"}
	}

	return &cypKernel{pose: pose, mu: mu, lambda: lambda}, nil
}

/*****************************************************************************************************************/

func (k *cypKernel) Code() string { return "CYP" }

func (k *cypKernel) Project(xDeg, yDeg float64) (float64, float64, error) {
	phi := xDeg / (k.lambda * angle.RAD2DEG)

	f := func(theta float64) float64 {
		return angle.RAD2DEG*(k.mu+k.lambda)*math.Sin(theta)/(k.mu+math.Cos(theta)) - yDeg
	}
	df := func(theta float64) float64 {
		d := k.mu + math.Cos(theta)
		return angle.RAD2DEG * (k.mu + k.lambda) * (k.mu*math.Cos(theta) + 1) / (d * d)
	}

	theta, err := newton("CYP", f, df, 0)
	if err != nil {
		return 0, 0, err
	}

	return phi, theta, nil
}

func (k *cypKernel) ProjectInverse(phiRad, thetaRad float64) (float64, float64, error) {
	if k.mu+math.Cos(thetaRad) == 0 {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: "CYP", X: phiRad, Y: thetaRad, Reason: "point lies behind the projection cylinder"}
	}

	x := k.lambda * angle.RAD2DEG * phiRad
	y := angle.RAD2DEG * (k.mu + k.lambda) * math.Sin(thetaRad) / (k.mu + math.Cos(thetaRad))
	return x, y, nil
}

func (k *cypKernel) Inside(phiRad, thetaRad float64) bool {
	return k.mu+math.Cos(thetaRad) != 0
}

func (k *cypKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("CYP") }

func (k *cypKernel) Parameters() []float64 { return []float64{k.mu, k.lambda} }

/*****************************************************************************************************************/
