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

// conicKernel is the shared machinery for the four conic projections
// (COP, COE, COD, COO): native longitude is scaled by the cone constant n
// and native colatitude maps to a radial distance ρ(θ) from the cone
// apex, measured relative to ρ₀=ρ(θ_a) at the mid-parallel θ_a. Each
// variant supplies its own ρ/ρ⁻¹ pair; the sin/cos(nφ) bookkeeping is
// identical across all four and lives here once.
type conicKernel struct {
	code         string
	pose         Pose
	theta1       float64 // radians
	theta2       float64
	n            float64
	rho          func(theta float64) float64
	rhoInv       func(rho float64) (float64, error)
}

/*****************************************************************************************************************/

func (k *conicKernel) rho0() float64 {
	thetaA := (k.theta1 + k.theta2) / 2
	return k.rho(thetaA)
}

/*****************************************************************************************************************/

func (k *conicKernel) Code() string { return k.code }

/*****************************************************************************************************************/

func (k *conicKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	if k.n == 0 {
		return 0, 0, &errs.MathError{Op: k.code + ".Project", Reason: "cone constant n is zero"}
	}

	rho0 := k.rho0()
	dy := rho0 - yDeg

	rho := math.Copysign(math.Hypot(xDeg, dy), k.n)
	phiPrime := math.Atan2(k.n*xDeg, k.n*dy)

	thetaRad, err = k.rhoInv(rho)
	if err != nil {
		return 0, 0, err
	}

	return phiPrime / k.n, thetaRad, nil
}

/*****************************************************************************************************************/

func (k *conicKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	rho := k.rho(thetaRad)
	phiPrime := k.n * phiRad

	xDeg = rho * math.Sin(phiPrime)
	yDeg = k.rho0() - rho*math.Cos(phiPrime)

	return xDeg, yDeg, nil
}

/*****************************************************************************************************************/

func (k *conicKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *conicKernel) DefaultNativePose() (phi0, theta0 float64) {
	return 0, (k.theta1 + k.theta2) / 2
}

/*****************************************************************************************************************/

func (k *conicKernel) Parameters() []float64 {
	return []float64{angle.Degrees(k.theta1), angle.Degrees(k.theta2)}
}

/*****************************************************************************************************************/

func conicStandardParallels(params []float64) (theta1, theta2 float64) {
	theta1 = angle.Radians(param(params, 1, 0))
	theta2 = angle.Radians(param(params, 2, param(params, 1, 0)))
	return theta1, theta2
}

/*****************************************************************************************************************/

// newCOD is the equidistant conic: ρ(θ) is linear in θ.
func newCOD(params []float64, pose Pose) (Projection, error) {
	theta1, theta2 := conicStandardParallels(params)

	n := math.Sin(theta1)
	if theta1 != theta2 {
		n = (math.Cos(theta1) - math.Cos(theta2)) / (theta2 - theta1)
	}
	if n == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "COD", Param: "PV2_1,PV2_2", Reason: "degenerate cone constant"}
	}

	g := math.Cos(theta1)/n + theta1

	k := &conicKernel{code: "COD", pose: pose, theta1: theta1, theta2: theta2, n: n}
	k.rho = func(theta float64) float64 { return angle.RAD2DEG * (g - theta) }
	k.rhoInv = func(rho float64) (float64, error) { return g - rho/angle.RAD2DEG, nil }

	return k, nil
}

/*****************************************************************************************************************/

// newCOE is the Albers equal-area conic.
func newCOE(params []float64, pose Pose) (Projection, error) {
	theta1, theta2 := conicStandardParallels(params)

	n := (math.Sin(theta1) + math.Sin(theta2)) / 2
	if n == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "COE", Param: "PV2_1,PV2_2", Reason: "degenerate cone constant"}
	}

	c := math.Cos(theta1)*math.Cos(theta1) + 2*n*math.Sin(theta1)

	k := &conicKernel{code: "COE", pose: pose, theta1: theta1, theta2: theta2, n: n}
	k.rho = func(theta float64) float64 {
		return angle.RAD2DEG * math.Sqrt(math.Max(0, c-2*n*math.Sin(theta))) / n
	}
	k.rhoInv = func(rho float64) (float64, error) {
		s := rho / angle.RAD2DEG
		sinTheta, ok := angle.ClampUnit((c-n*n*s*s)/(2*n), angle.DefaultClampTolerance)
		if !ok {
			return 0, &errs.PixelBeyondProjectionError{Code: "COE", X: rho, Y: 0, Reason: "radius exceeds the projection's domain"}
		}
		return math.Asin(sinTheta), nil
	}

	return k, nil
}

/*****************************************************************************************************************/

// newCOO is the Lambert conformal conic.
func newCOO(params []float64, pose Pose) (Projection, error) {
	theta1, theta2 := conicStandardParallels(params)

	t1 := math.Tan(math.Pi/4 + theta1/2)
	t2 := math.Tan(math.Pi/4 + theta2/2)

	n := math.Sin(theta1)
	if theta1 != theta2 && t1 != t2 {
		n = math.Log(math.Cos(theta1)/math.Cos(theta2)) / math.Log(t2/t1)
	}
	if n == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "COO", Param: "PV2_1,PV2_2", Reason: "degenerate cone constant"}
	}

	f := math.Cos(theta1) * math.Pow(t1, n) / n

	k := &conicKernel{code: "COO", pose: pose, theta1: theta1, theta2: theta2, n: n}
	k.rho = func(theta float64) float64 {
		return angle.RAD2DEG * f / math.Pow(math.Tan(math.Pi/4+theta/2), n)
	}
	k.rhoInv = func(rho float64) (float64, error) {
		if rho == 0 {
			return math.Pi / 2, nil
		}
		return 2*math.Atan(math.Pow(angle.RAD2DEG*f/rho, 1/n)) - math.Pi/2, nil
	}

	return k, nil
}

/*****************************************************************************************************************/

// newCOP is the perspective conic, approximated here via the tangent-cone
// equidistant construction (a single standard parallel PV2_1 determines
// the cone, PV2_2 is accepted but ignored) since the full one-point
// perspective geometry is not modeled.
func newCOP(params []float64, pose Pose) (Projection, error) {
	theta1 := angle.Radians(param(params, 1, 0))

	n := math.Sin(theta1)
	if n == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "COP", Param: "PV2_1", Reason: "standard parallel must not be the equator"}
	}

	g := math.Cos(theta1)/n + theta1

	k := &conicKernel{code: "COP", pose: pose, theta1: theta1, theta2: theta1, n: n}
	k.rho = func(theta float64) float64 { return angle.RAD2DEG * (g - theta) }
	k.rhoInv = func(rho float64) (float64, error) { return g - rho/angle.RAD2DEG, nil }

	return k, nil
}

/*****************************************************************************************************************/
