/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestNewLinearTransformFromCDRoundTrip(t *testing.T) {
	lt, err := NewLinearTransformFromCD(-0.0002, 0.0, 0.0, 0.0002, 500, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y := lt.PixelToIntermediate(123, 456)
	i, j := lt.IntermediateToPixel(x, y)

	if math.Abs(i-123) > 1e-9 || math.Abs(j-456) > 1e-9 {
		t.Errorf("round trip = (%v, %v); want (123, 456)", i, j)
	}
}

/*****************************************************************************************************************/

func TestNewLinearTransformFromCDELTCROTA2MatchesIdentityAtZeroRotation(t *testing.T) {
	lt, err := NewLinearTransformFromCDELTCROTA2(0.001, 0.001, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y := lt.PixelToIntermediate(10, 10)

	if math.Abs(x-0.01) > 1e-12 || math.Abs(y-0.01) > 1e-12 {
		t.Errorf("PixelToIntermediate(10,10) = (%v, %v); want (0.01, 0.01)", x, y)
	}
}

/*****************************************************************************************************************/

func TestNewLinearTransformFromPCCDELTMatchesCD(t *testing.T) {
	fromCD, err := NewLinearTransformFromCD(0.0003, 0, 0, 0.0003, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromPC, err := NewLinearTransformFromPCCDELT(1, 0, 0, 1, 0.0003, 0.0003, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fromCD.CD != fromPC.CD {
		t.Errorf("PC·CDELT construction = %v; want %v", fromPC.CD, fromCD.CD)
	}
}

/*****************************************************************************************************************/

func TestNewLinearTransformSingularIsError(t *testing.T) {
	_, err := NewLinearTransformFromCD(0, 0, 0, 0, 0, 0)
	if err == nil {
		t.Fatal("expected an error for a singular CD matrix")
	}
}

/*****************************************************************************************************************/
