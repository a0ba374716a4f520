/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package matrix

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// RotationX, RotationY, RotationZ are the elementary right-handed rotation
// matrices about each axis, by angle (radians). They follow the same Rx/Ry/Rz
// convention used throughout the example pack's frame-conversion code (e.g.
// anupshinde/goeph's coord package composes its precession matrix as
// Rz(−z)·Ry(θ)·Rz(−ζ)).
func RotationX(theta float64) Matrix3 {
	s, c := math.Sincos(theta)
	return Matrix3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

/*****************************************************************************************************************/

func RotationY(theta float64) Matrix3 {
	s, c := math.Sincos(theta)
	return Matrix3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

/*****************************************************************************************************************/

func RotationZ(theta float64) Matrix3 {
	s, c := math.Sincos(theta)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

/*****************************************************************************************************************/

// Compose builds the net rotation matrix that is the ordered product of
// the given elemental rotations (first element applied first), using
// gonum's dense matrix multiplication. This runs once, when a
// CoordinateReferenceFrame or a Crs pair is constructed (spec.md §4.9) —
// never on the per-point conversion hot path, which instead uses the
// returned Matrix3 with the allocation-free Mul/MulVec in vector3.go.
func Compose(rotations ...Matrix3) Matrix3 {
	if len(rotations) == 0 {
		return Identity3
	}

	result := mat.NewDense(3, 3, flatten(rotations[0]))

	for _, r := range rotations[1:] {
		next := mat.NewDense(3, 3, flatten(r))
		var product mat.Dense
		product.Mul(next, result)
		result = &product
	}

	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = result.At(i, j)
		}
	}
	return out
}

/*****************************************************************************************************************/

func flatten(m Matrix3) []float64 {
	return []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

/*****************************************************************************************************************/
