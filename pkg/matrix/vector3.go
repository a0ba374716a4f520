/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package matrix

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Vector3 is a fixed-size 3-vector on the unit celestial sphere. Unlike
// Matrix (matrix.go), it never allocates: the frame conversion engine (pkg/frame)
// multiplies these on every point it converts, and spec.md §5 requires the
// hot path to be allocation-free.
type Vector3 [3]float64

/*****************************************************************************************************************/

// Matrix3 is a fixed-size 3×3 rotation matrix, row-major.
type Matrix3 [3][3]float64

/*****************************************************************************************************************/

// Identity3 is the 3×3 identity matrix.
var Identity3 = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

/*****************************************************************************************************************/

// Dot returns the dot product of two unit vectors.
func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

/*****************************************************************************************************************/

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

/*****************************************************************************************************************/

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged; callers that can reach it (e.g. a degenerate separation)
// should guard before calling Normalized.
func (v Vector3) Normalized() Vector3 {
	r := v.Length()
	if r == 0 {
		return v
	}
	return Vector3{v[0] / r, v[1] / r, v[2] / r}
}

/*****************************************************************************************************************/

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

/*****************************************************************************************************************/

// Sub returns the component-wise difference v − o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

/*****************************************************************************************************************/

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

/*****************************************************************************************************************/

// UnitVectorFromSpherical converts a (longitude, latitude) pair in radians
// to a unit vector on the sphere (spec.md §4.5): (cos β cos λ, cos β sin λ, sin β).
func UnitVectorFromSpherical(lonRad, latRad float64) Vector3 {
	sLon, cLon := math.Sincos(lonRad)
	sLat, cLat := math.Sincos(latRad)
	return Vector3{cLat * cLon, cLat * sLon, sLat}
}

/*****************************************************************************************************************/

// SphericalFromUnitVector converts a unit vector back to (longitude,
// latitude) in radians: (atan2(y, x), asin(z)). Longitude is not
// normalized here; callers normalize at the degrees boundary.
func SphericalFromUnitVector(v Vector3) (lonRad, latRad float64) {
	n := v.Normalized()
	return math.Atan2(n[1], n[0]), math.Asin(clamp(n[2]))
}

/*****************************************************************************************************************/

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

/*****************************************************************************************************************/

// MulVec applies m to v: m·v.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

/*****************************************************************************************************************/

// Mul returns the matrix product m·o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

/*****************************************************************************************************************/

// Transpose returns mᵀ, which for a pure rotation matrix is also m⁻¹.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

/*****************************************************************************************************************/
