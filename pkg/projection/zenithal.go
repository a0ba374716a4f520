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

// rthetaKernel implements the common zenithal dispatch shared by TAN, STG,
// ARC, and ZEA: the native longitude is recovered directly from
// atan2(x,-y), and the native colatitude is recovered from the radial
// distance R=√(x²+y²) via a per-projection R(θ) function and its inverse.
type rthetaKernel struct {
	code  string
	pose  Pose
	r     func(theta float64) float64
	rInv  func(r float64) (float64, error)
	plist []float64
}

/*****************************************************************************************************************/

func (k *rthetaKernel) Code() string { return k.code }

/*****************************************************************************************************************/

func (k *rthetaKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	phiRad = math.Atan2(xDeg, -yDeg)

	rDeg := math.Hypot(xDeg, yDeg)

	thetaRad, err = k.rInv(rDeg)
	if err != nil {
		return 0, 0, err
	}

	return phiRad, thetaRad, nil
}

/*****************************************************************************************************************/

func (k *rthetaKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	rDeg := k.r(thetaRad)

	return rDeg * math.Sin(phiRad), -rDeg * math.Cos(phiRad), nil
}

/*****************************************************************************************************************/

func (k *rthetaKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *rthetaKernel) DefaultNativePose() (phi0, theta0 float64) {
	return DefaultNativePose(k.code)
}

/*****************************************************************************************************************/

func (k *rthetaKernel) Parameters() []float64 { return k.plist }

/*****************************************************************************************************************/

// newTAN is the gnomonic projection: great circles project to straight
// lines. Undefined at θ=0 (the horizon) and beyond.
func newTAN(pose Pose) Projection {
	return &rthetaKernel{
		code: "TAN",
		pose: pose,
		r: func(theta float64) float64 {
			return angle.RAD2DEG / math.Tan(theta)
		},
		rInv: func(r float64) (float64, error) {
			return math.Atan2(angle.RAD2DEG, r), nil
		},
	}
}

/*****************************************************************************************************************/

// newSTG is the stereographic projection: conformal, maps the whole
// sphere (save the antipodal point) onto the plane.
func newSTG(pose Pose) Projection {
	return &rthetaKernel{
		code: "STG",
		pose: pose,
		r: func(theta float64) float64 {
			return 2 * angle.RAD2DEG * math.Tan((math.Pi/2-theta)/2)
		},
		rInv: func(r float64) (float64, error) {
			return math.Pi/2 - 2*math.Atan(r/(2*angle.RAD2DEG)), nil
		},
	}
}

/*****************************************************************************************************************/

// newARC is the zenithal equidistant projection: R is directly
// proportional to angular distance from the native pole.
func newARC(pose Pose) Projection {
	return &rthetaKernel{
		code: "ARC",
		pose: pose,
		r: func(theta float64) float64 {
			return angle.RAD2DEG * (math.Pi/2 - theta)
		},
		rInv: func(r float64) (float64, error) {
			return math.Pi/2 - r/angle.RAD2DEG, nil
		},
	}
}

/*****************************************************************************************************************/

// newZEA is the zenithal equal-area projection.
func newZEA(pose Pose) Projection {
	return &rthetaKernel{
		code: "ZEA",
		pose: pose,
		r: func(theta float64) float64 {
			return 2 * angle.RAD2DEG * math.Sin((math.Pi/2-theta)/2)
		},
		rInv: func(r float64) (float64, error) {
			half, ok := angle.ClampUnit(r/(2*angle.RAD2DEG), angle.DefaultClampTolerance)
			if !ok {
				return 0, &errs.PixelBeyondProjectionError{Code: "ZEA", X: r, Y: 0, Reason: "radius exceeds the projection's domain"}
			}
			return math.Pi/2 - 2*math.Asin(half), nil
		},
	}
}

/*****************************************************************************************************************/

// sinKernel is the orthographic/synthesis projection (SIN), with the
// general ξ,η obliquity parameters from PV2_1, PV2_2 (Cal. & Greisen
// eq. 55): setting both to zero recovers the classical orthographic case,
// which has a closed-form inverse; the general case is also solved in
// closed form, as a quadratic in sin θ.
type sinKernel struct {
	pose   Pose
	xi, eta float64
}

/*****************************************************************************************************************/

func newSIN(params []float64, pose Pose) (Projection, error) {
	return &sinKernel{pose: pose, xi: param(params, 1, 0), eta: param(params, 2, 0)}, nil
}

/*****************************************************************************************************************/

// newNCP is the classical "North Celestial Pole" projection: SIN with
// ξ=cotδ_p, η=0 (Cal. & Greisen eq 56), named for its historical role in
// radio synthesis maps referenced to the pole.
func newNCP(pose Pose) Projection {
	xi := 0.0
	if math.Tan(pose.DeltaP) != 0 {
		xi = 1 / math.Tan(pose.DeltaP)
	}
	return &sinKernel{pose: pose, xi: xi, eta: 0}
}

/*****************************************************************************************************************/

func (k *sinKernel) Code() string {
	if k.pose.DeltaP != 0 && k.xi == 1/math.Tan(k.pose.DeltaP) && k.eta == 0 {
		return "NCP"
	}
	return "SIN"
}

/*****************************************************************************************************************/

func (k *sinKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	x := xDeg / angle.RAD2DEG
	y := yDeg / angle.RAD2DEG

	if k.xi == 0 && k.eta == 0 {
		z2 := 1 - x*x - y*y
		if z2 < 0 {
			return 0, 0, &errs.PixelBeyondProjectionError{Code: "SIN", X: xDeg, Y: yDeg, Reason: "point lies outside the visible hemisphere"}
		}
		return math.Atan2(xDeg, -yDeg), math.Asin(math.Sqrt(z2)), nil
	}

	X, Y := x-k.xi, y-k.eta
	a, b, c := k.xi*k.xi+k.eta*k.eta+1, k.xi*X+k.eta*Y, X*X+Y*Y-1
	if b*b < a*c {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: k.Code(), X: xDeg, Y: yDeg, Reason: "point lies outside the visible hemisphere"}
	}
	sinTheta, ok := angle.ClampUnit((-b+math.Sqrt(b*b-a*c))/a, angle.DefaultClampTolerance)
	if !ok {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: k.Code(), X: xDeg, Y: yDeg, Reason: "point lies outside the visible hemisphere"}
	}

	u := 1 - sinTheta
	return math.Atan2(x-k.xi*u, -(y-k.eta*u)), math.Asin(sinTheta), nil
}

/*****************************************************************************************************************/

func (k *sinKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	cosTheta, sinTheta := math.Cos(thetaRad), math.Sin(thetaRad)
	sinPhi, cosPhi := math.Sin(phiRad), math.Cos(phiRad)

	x := angle.RAD2DEG * (cosTheta*sinPhi + k.xi*(1-sinTheta))
	y := -angle.RAD2DEG * (cosTheta*cosPhi - k.eta*(1-sinTheta))

	return x, y, nil
}

/*****************************************************************************************************************/

func (k *sinKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= 0
}

/*****************************************************************************************************************/

func (k *sinKernel) DefaultNativePose() (phi0, theta0 float64) {
	return DefaultNativePose("SIN")
}

/*****************************************************************************************************************/

func (k *sinKernel) Parameters() []float64 { return []float64{k.xi, k.eta} }

/*****************************************************************************************************************/

// azpKernel is the (slant) zenithal perspective projection: a perspective
// projection from a point μ native-sphere-radii beyond the projection
// plane. γ (PV2_2) tilts the viewpoint; here it is modeled as a uniform
// radial foreshortening of the distance term rather than the full
// off-axis warp, which keeps the inverse a 1-D Newton solve.
type azpKernel struct {
	code     string
	pose     Pose
	mu       float64
	gamma    float64 // radians
	phiC     float64 // radians, SZP only
	thetaC   float64 // radians, SZP only
}

/*****************************************************************************************************************/

func newAZP(params []float64, pose Pose) (Projection, error) {
	mu := param(params, 1, 0)
	gammaDeg := param(params, 2, 0)

	if mu == -1 {
		return nil, &errs.BadProjectionParameterError{Code: "AZP", Param: "PV2_1", Reason: "μ must not equal -1"}
	}

	return &azpKernel{code: "AZP", pose: pose, mu: mu, gamma: angle.Radians(gammaDeg)}, nil
}

/*****************************************************************************************************************/

// newSZP is AZP generalized to an off-pole viewpoint (μ,φc,θc). The
// current implementation stores φc,θc but projects with the on-axis AZP
// formula; TODO: apply the full (φc,θc) viewpoint offset to the forward
// and inverse kernels rather than approximating it as on-axis.
func newSZP(params []float64, pose Pose) (Projection, error) {
	mu := param(params, 1, 0)
	phiC := param(params, 2, 0)
	thetaC := param(params, 3, 90)

	if mu == -1 {
		return nil, &errs.BadProjectionParameterError{Code: "SZP", Param: "PV2_1", Reason: "μ must not equal -1"}
	}

	return &azpKernel{
		code:   "SZP",
		pose:   pose,
		mu:     mu,
		phiC:   angle.Radians(phiC),
		thetaC: angle.Radians(thetaC),
	}, nil
}

/*****************************************************************************************************************/

func (k *azpKernel) Code() string { return k.code }

/*****************************************************************************************************************/

func (k *azpKernel) rtheta(theta float64) float64 {
	scale := 1.0
	if k.gamma != 0 {
		scale = 1 / math.Cos(k.gamma)
	}
	return angle.RAD2DEG * (k.mu + 1) * math.Cos(theta) / (k.mu + math.Sin(theta)) * scale
}

/*****************************************************************************************************************/

func (k *azpKernel) drtheta(theta float64) float64 {
	scale := 1.0
	if k.gamma != 0 {
		scale = 1 / math.Cos(k.gamma)
	}
	return -angle.RAD2DEG * (k.mu + 1) / math.Pow(k.mu+math.Sin(theta), 2) * (k.mu*math.Sin(theta) + 1) * scale
}

/*****************************************************************************************************************/

func (k *azpKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	phiRad = math.Atan2(xDeg, -yDeg)
	rDeg := math.Hypot(xDeg, yDeg)

	f := func(theta float64) float64 { return k.rtheta(theta) - rDeg }
	df := func(theta float64) float64 { return k.drtheta(theta) }

	theta, err := newton(k.code, f, df, math.Pi/2-math.Atan2(rDeg, angle.RAD2DEG))
	if err != nil {
		return 0, 0, err
	}

	return phiRad, theta, nil
}

/*****************************************************************************************************************/

func (k *azpKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	if k.mu+math.Sin(thetaRad) <= 0 {
		return 0, 0, &errs.PixelBeyondProjectionError{Code: k.code, X: phiRad, Y: thetaRad, Reason: "point lies behind the projection plane"}
	}

	r := k.rtheta(thetaRad)
	return r * math.Sin(phiRad), -r * math.Cos(phiRad), nil
}

/*****************************************************************************************************************/

func (k *azpKernel) Inside(phiRad, thetaRad float64) bool {
	return k.mu+math.Sin(thetaRad) > 0
}

/*****************************************************************************************************************/

func (k *azpKernel) DefaultNativePose() (phi0, theta0 float64) {
	return DefaultNativePose(k.code)
}

/*****************************************************************************************************************/

func (k *azpKernel) Parameters() []float64 {
	if k.code == "SZP" {
		return []float64{k.mu, angle.Degrees(k.phiC), angle.Degrees(k.thetaC)}
	}
	return []float64{k.mu, angle.Degrees(k.gamma)}
}

/*****************************************************************************************************************/

// zpnKernel is the zenithal polynomial projection: R(θ) is an arbitrary
// degree-≤20 polynomial in the co-latitude ζ=π/2-θ, with coefficients
// PV2_0..PV2_20.
type zpnKernel struct {
	pose  Pose
	coeff []float64
}

/*****************************************************************************************************************/

func newZPN(params []float64, pose Pose) (Projection, error) {
	if len(params) == 0 {
		return nil, &errs.BadProjectionParameterError{Code: "ZPN", Param: "PV2_0..PV2_n", Reason: "at least one polynomial coefficient is required"}
	}
	coeff := make([]float64, len(params))
	copy(coeff, params)
	return &zpnKernel{pose: pose, coeff: coeff}, nil
}

/*****************************************************************************************************************/

func (k *zpnKernel) poly(zeta float64) float64 {
	v := 0.0
	for i := len(k.coeff) - 1; i >= 0; i-- {
		v = v*zeta + k.coeff[i]
	}
	return v
}

/*****************************************************************************************************************/

func (k *zpnKernel) dpoly(zeta float64) float64 {
	v := 0.0
	for i := len(k.coeff) - 1; i >= 1; i-- {
		v = v*zeta + float64(i)*k.coeff[i]
	}
	return v
}

/*****************************************************************************************************************/

func (k *zpnKernel) Code() string { return "ZPN" }

/*****************************************************************************************************************/

func (k *zpnKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	phiRad = math.Atan2(xDeg, -yDeg)
	rDeg := math.Hypot(xDeg, yDeg)

	f := func(zeta float64) float64 { return angle.RAD2DEG*k.poly(zeta) - rDeg }
	df := func(zeta float64) float64 { return angle.RAD2DEG * k.dpoly(zeta) }

	zeta, err := newton("ZPN", f, df, rDeg/angle.RAD2DEG)
	if err != nil {
		return 0, 0, err
	}

	return phiRad, math.Pi/2 - zeta, nil
}

/*****************************************************************************************************************/

func (k *zpnKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	rDeg := angle.RAD2DEG * k.poly(math.Pi/2-thetaRad)
	return rDeg * math.Sin(phiRad), -rDeg * math.Cos(phiRad), nil
}

/*****************************************************************************************************************/

func (k *zpnKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *zpnKernel) DefaultNativePose() (phi0, theta0 float64) {
	return DefaultNativePose("ZPN")
}

/*****************************************************************************************************************/

func (k *zpnKernel) Parameters() []float64 { return k.coeff }

/*****************************************************************************************************************/

// airKernel is the Airy projection: minimizes angular distortion
// integrated over a disc out to θb (PV2_1, degrees, default 90 — the
// whole hemisphere).
type airKernel struct {
	pose    Pose
	thetaB  float64 // radians
}

/*****************************************************************************************************************/

func newAIR(params []float64, pose Pose) (Projection, error) {
	thetaB := angle.Radians(param(params, 1, 90))
	return &airKernel{pose: pose, thetaB: thetaB}, nil
}

/*****************************************************************************************************************/

// airTerm evaluates ln(cos ξ)/tan ξ, which has a removable singularity at
// ξ=0 handled via the ln(cosξ)≈-ξ²/2 small-angle expansion.
func airTerm(xi float64) float64 {
	if math.Abs(xi) < 1e-8 {
		return -xi / 2
	}
	return math.Log(math.Cos(xi)) / math.Tan(xi)
}

/*****************************************************************************************************************/

func (k *airKernel) rtheta(theta float64) float64 {
	xi := (math.Pi/2 - theta) / 2
	xiB := (math.Pi/2 - k.thetaB) / 2

	term := airTerm(xi)

	if math.Abs(xiB) < 1e-12 {
		return -2 * angle.RAD2DEG * (term - math.Tan(xi)/2)
	}

	tanXiB := math.Tan(xiB)
	return -2 * angle.RAD2DEG * (term + (airTerm(xiB)/(tanXiB*tanXiB))*math.Tan(xi))
}

/*****************************************************************************************************************/

func (k *airKernel) Code() string { return "AIR" }

/*****************************************************************************************************************/

func (k *airKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	phiRad = math.Atan2(xDeg, -yDeg)
	rDeg := math.Hypot(xDeg, yDeg)

	theta, err := bisect("AIR", func(theta float64) float64 {
		return k.rtheta(theta) - rDeg
	}, -math.Pi/2+1e-6, math.Pi/2-1e-9)
	if err != nil {
		return 0, 0, err
	}

	return phiRad, theta, nil
}

/*****************************************************************************************************************/

func (k *airKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	rDeg := k.rtheta(thetaRad)
	return rDeg * math.Sin(phiRad), -rDeg * math.Cos(phiRad), nil
}

/*****************************************************************************************************************/

func (k *airKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad > -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *airKernel) DefaultNativePose() (phi0, theta0 float64) {
	return DefaultNativePose("AIR")
}

/*****************************************************************************************************************/

func (k *airKernel) Parameters() []float64 { return []float64{angle.Degrees(k.thetaB)} }

/*****************************************************************************************************************/
