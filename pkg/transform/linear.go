/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package transform implements the linear pixel↔intermediate-world-coordinate
// pipeline (spec.md §3, §4.2): a 2×2 matrix M derived from CD, PC·CDELT, or
// CDELT·Rot(CROTA2) keywords (in that priority order), applied about the
// CRPIX reference pixel.
package transform

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/matrix"
)

/*****************************************************************************************************************/

// LinearTransform is the M, R=(CRPIX1,CRPIX2) pair from spec.md §3:
//
//	(x,y) = M · ((i,j) − R)
//	(i,j) = M⁻¹ · (x,y) + R
//
// M is derived once at WCS initialization and is read-only afterwards; its
// inverse is cached alongside it so that IntermediateToPixel never has to
// re-invert on the hot path.
type LinearTransform struct {
	CD     [2][2]float64 // row-major 2x2 matrix M
	CDInv  [2][2]float64 // cached inverse of M
	CRPIX1 float64
	CRPIX2 float64
}

/*****************************************************************************************************************/

// NewLinearTransformFromCD builds the linear transform directly from the
// CD1_1, CD1_2, CD2_1, CD2_2 keywords — the first priority in spec.md §3.
func NewLinearTransformFromCD(cd11, cd12, cd21, cd22, crpix1, crpix2 float64) (*LinearTransform, error) {
	return newLinearTransform([2][2]float64{{cd11, cd12}, {cd21, cd22}}, crpix1, crpix2)
}

/*****************************************************************************************************************/

// NewLinearTransformFromPCCDELT builds the linear transform from the
// PC and CDELT keywords as diag(CDELT)·PC (M_ij = CDELT_i·PC_ij) — the
// second priority in spec.md §3.
func NewLinearTransformFromPCCDELT(pc11, pc12, pc21, pc22, cdelt1, cdelt2, crpix1, crpix2 float64) (*LinearTransform, error) {
	m := [2][2]float64{
		{pc11 * cdelt1, pc12 * cdelt1},
		{pc21 * cdelt2, pc22 * cdelt2},
	}
	return newLinearTransform(m, crpix1, crpix2)
}

/*****************************************************************************************************************/

// NewLinearTransformFromCDELTCROTA2 builds the linear transform from the
// CDELT and CROTA2 keywords as Rot(CROTA2)·diag(CDELT) — the third, legacy priority in
// spec.md §3. CROTA2 is in degrees.
func NewLinearTransformFromCDELTCROTA2(cdelt1, cdelt2, crota2Deg, crpix1, crpix2 float64) (*LinearTransform, error) {
	crota2 := crota2Deg * math.Pi / 180.0
	sr, cr := math.Sincos(crota2)

	m := [2][2]float64{
		{cdelt1 * cr, -cdelt2 * sr},
		{cdelt1 * sr, cdelt2 * cr},
	}
	return newLinearTransform(m, crpix1, crpix2)
}

/*****************************************************************************************************************/

func newLinearTransform(m [2][2]float64, crpix1, crpix2 float64) (*LinearTransform, error) {
	mm, err := matrix.NewFromSlice([]float64{m[0][0], m[0][1], m[1][0], m[1][1]}, 2, 2)
	if err != nil {
		return nil, &errs.MathError{Op: "NewLinearTransform", Reason: err.Error()}
	}

	det, err := mm.Determinant()
	if err != nil {
		return nil, &errs.MathError{Op: "NewLinearTransform", Reason: err.Error()}
	}
	if det == 0 {
		return nil, &errs.MathError{Op: "NewLinearTransform", Reason: "linear transform matrix is singular"}
	}

	inv, err := mm.Invert()
	if err != nil {
		return nil, &errs.MathError{Op: "NewLinearTransform", Reason: err.Error()}
	}

	return &LinearTransform{
		CD:     m,
		CDInv:  [2][2]float64{{inv.Value[0], inv.Value[1]}, {inv.Value[2], inv.Value[3]}},
		CRPIX1: crpix1,
		CRPIX2: crpix2,
	}, nil
}

/*****************************************************************************************************************/

// PixelToIntermediate maps a 1-based pixel coordinate to intermediate world
// coordinates (degrees): (x,y) = M · ((i,j) − CRPIX).
func (t *LinearTransform) PixelToIntermediate(i, j float64) (x, y float64) {
	di := i - t.CRPIX1
	dj := j - t.CRPIX2
	x = t.CD[0][0]*di + t.CD[0][1]*dj
	y = t.CD[1][0]*di + t.CD[1][1]*dj
	return x, y
}

/*****************************************************************************************************************/

// IntermediateToPixel maps intermediate world coordinates back to a 1-based
// pixel coordinate: (i,j) = M⁻¹ · (x,y) + CRPIX.
func (t *LinearTransform) IntermediateToPixel(x, y float64) (i, j float64) {
	i = t.CDInv[0][0]*x + t.CDInv[0][1]*y + t.CRPIX1
	j = t.CDInv[1][0]*x + t.CDInv[1][1]*y + t.CRPIX2
	return i, j
}

/*****************************************************************************************************************/
