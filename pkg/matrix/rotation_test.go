/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package matrix

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestComposeWithNoRotationsIsIdentity(t *testing.T) {
	got := Compose()
	if got != Identity3 {
		t.Errorf("Compose() = %v; want Identity3", got)
	}
}

/*****************************************************************************************************************/

func TestComposeMatchesHandRolledMultiply(t *testing.T) {
	a := RotationZ(0.3)
	b := RotationY(0.6)
	c := RotationZ(-0.9)

	// Compose applies its arguments left-to-right, so the first argument is
	// the innermost (rightmost) factor of the net matrix product.
	want := c.Mul(b).Mul(a)
	got := Compose(a, b, c)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-12 {
				t.Errorf("Compose()[%d][%d] = %v; want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

/*****************************************************************************************************************/

func TestRotationZPreservesZAxis(t *testing.T) {
	r := RotationZ(1.234)
	z := Vector3{0, 0, 1}

	got := r.MulVec(z)

	if got != z {
		t.Errorf("RotationZ should leave the z-axis fixed, got %v", got)
	}
}

/*****************************************************************************************************************/
