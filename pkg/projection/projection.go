/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package projection implements the ~24 FITS WCS map-projection kernels
// (Calabretta & Greisen 2002): zenithal, cylindrical, conic, pseudo-cylindrical,
// and polyconic families, each providing a forward kernel (φ,θ)→(x,y) and
// an inverse kernel (x,y)→(φ,θ) in intermediate world coordinates (degrees).
//
// Rather than the class hierarchy the original WCS libraries use
// (abstract projection → family → concrete), each projection code is a
// small concrete type implementing the Projection interface; family-level
// behaviour (native pose defaults, the R(θ) zenithal dispatch, shared
// solvers) is factored into plain helper functions instead of a base class,
// per the redesign note in spec.md §9.
package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/errs"
)

/*****************************************************************************************************************/

// Pose carries the three reference points that every projection kernel
// needs in addition to its own parameters (spec.md §3): the native
// fiducial point (φ₀,θ₀), the celestial pose (α_p,δ_p) = (CRVAL1,CRVAL2),
// and the native pole (φ_p,θ_p) = (LONPOLE,LATPOLE). All fields are radians.
type Pose struct {
	Phi0   float64
	Theta0 float64
	AlphaP float64
	DeltaP float64
	PhiP   float64
	ThetaP float64
}

/*****************************************************************************************************************/

// Projection is the shared contract every projection kernel implements
// (spec.md §4.4).
type Projection interface {
	// Code is the three-letter FITS projection code, e.g. "TAN".
	Code() string

	// Project maps intermediate world coordinates (degrees) to native
	// spherical coordinates (radians).
	Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error)

	// ProjectInverse maps native spherical coordinates (radians) back to
	// intermediate world coordinates (degrees).
	ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error)

	// Inside reports whether a native spherical point lies within the
	// validity domain of the projection, for rasterization pre-screening.
	Inside(phiRad, thetaRad float64) bool

	// DefaultNativePose returns the (φ₀,θ₀) fiducial point used when the
	// keyword source does not override it.
	DefaultNativePose() (phi0Rad, theta0Rad float64)

	// Parameters returns the PV2_n parameter vector the kernel was built
	// with, in increasing index order.
	Parameters() []float64
}

/*****************************************************************************************************************/

// Family identifies which of the five projection families (spec.md §3) a
// code belongs to; it governs only the native-pose default and has no
// other runtime behaviour.
type Family int

/*****************************************************************************************************************/

const (
	Zenithal Family = iota
	Cylindrical
	Conic
	PseudoCylindrical
	Polyconic
)

/*****************************************************************************************************************/

// familyOf maps every supported projection code to its family, and is the
// source of truth for the default native-pose helper below (New dispatches
// on its own switch).
var familyOf = map[string]Family{
	"AZP": Zenithal, "SZP": Zenithal, "TAN": Zenithal, "STG": Zenithal,
	"SIN": Zenithal, "NCP": Zenithal, "ARC": Zenithal, "ZPN": Zenithal,
	"ZEA": Zenithal, "AIR": Zenithal,

	"CYP": Cylindrical, "CEA": Cylindrical, "CAR": Cylindrical, "MER": Cylindrical,

	"COP": Conic, "COE": Conic, "COD": Conic, "COO": Conic,

	"SFL": PseudoCylindrical, "PAR": PseudoCylindrical, "MOL": PseudoCylindrical,
	"AIT": PseudoCylindrical, "BON": PseudoCylindrical,

	"PCO": Polyconic,
}

/*****************************************************************************************************************/

// DefaultNativePose returns the family's default (φ₀,θ₀) in radians, per
// the table in spec.md §4.6: (0, π/2) for zenithal projections, and (0, 0)
// for every other family. A constructed conic kernel's own
// DefaultNativePose method reports θ₀ as its mid-parallel (θ1+θ2)/2.
func DefaultNativePose(code string) (phi0, theta0 float64) {
	switch familyOf[code] {
	case Zenithal:
		return 0, math.Pi / 2
	default:
		return 0, 0
	}
}

/*****************************************************************************************************************/

// DefaultLonpole computes the LONPOLE default from spec.md §3: 0 when
// θ₀ ≥ δ_p, else 180 (degrees). deltaPDeg is δ_p (CRVAL2) in degrees and
// theta0Rad is the native fiducial latitude in radians.
func DefaultLonpole(theta0Rad float64, deltaPDeg float64) float64 {
	if angle.Degrees(theta0Rad) >= deltaPDeg {
		return 0
	}
	return 180
}

/*****************************************************************************************************************/

// New constructs the projection kernel named by code, reading PV2_n
// parameters from params (indexed starting at PV2_1, i.e. params[0] is
// PV2_1; for ZPN, whose polynomial starts at PV2_0, params[0] is PV2_0)
// and using pose for its fiducial/celestial/pole reference points.
// An unrecognized code or a parameter that fails validation for its
// kernel is reported as a BadProjectionParameterError.
func New(code string, params []float64, pose Pose) (Projection, error) {
	switch code {
	case "AZP":
		return newAZP(params, pose)
	case "SZP":
		return newSZP(params, pose)
	case "TAN":
		return newTAN(pose), nil
	case "STG":
		return newSTG(pose), nil
	case "SIN":
		return newSIN(params, pose)
	case "NCP":
		return newNCP(pose), nil
	case "ARC":
		return newARC(pose), nil
	case "ZPN":
		return newZPN(params, pose)
	case "ZEA":
		return newZEA(pose), nil
	case "AIR":
		return newAIR(params, pose)

	case "CYP":
		return newCYP(params, pose)
	case "CEA":
		return newCEA(params, pose)
	case "CAR":
		return newCAR(pose), nil
	case "MER":
		return newMER(pose), nil

	case "COP":
		return newCOP(params, pose)
	case "COE":
		return newCOE(params, pose)
	case "COD":
		return newCOD(params, pose)
	case "COO":
		return newCOO(params, pose)

	case "SFL":
		return newSFL(pose), nil
	case "PAR":
		return newPAR(pose), nil
	case "MOL":
		return newMOL(pose), nil
	case "AIT":
		return newAIT(pose), nil
	case "BON":
		return newBON(params, pose)

	case "PCO":
		return newPCO(pose), nil

	default:
		return nil, &errs.BadProjectionParameterError{Code: code, Param: "CTYPE", Reason: "unrecognized projection code"}
	}
}

/*****************************************************************************************************************/

// param returns params[n] (1-based index against PV2_n, so n=1 reads
// params[0]), or def if that many parameters were not supplied.
func param(params []float64, n int, def float64) float64 {
	if n-1 < len(params) && n-1 >= 0 {
		return params[n-1]
	}
	return def
}

/*****************************************************************************************************************/
