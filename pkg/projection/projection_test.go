/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestDefaultNativePoseZenithalIsPole(t *testing.T) {
	phi0, theta0 := DefaultNativePose("TAN")

	if phi0 != 0 || math.Abs(theta0-math.Pi/2) > 1e-12 {
		t.Errorf("DefaultNativePose(TAN) = (%v, %v); want (0, π/2)", phi0, theta0)
	}
}

/*****************************************************************************************************************/

func TestDefaultNativePoseCylindricalIsEquator(t *testing.T) {
	phi0, theta0 := DefaultNativePose("CAR")

	if phi0 != 0 || theta0 != 0 {
		t.Errorf("DefaultNativePose(CAR) = (%v, %v); want (0, 0)", phi0, theta0)
	}
}

/*****************************************************************************************************************/

func TestDefaultLonpoleBelowReferenceLatitudeIs180(t *testing.T) {
	got := DefaultLonpole(0, 45)
	if got != 180 {
		t.Errorf("DefaultLonpole(0, 45) = %v; want 180", got)
	}
}

/*****************************************************************************************************************/

func TestDefaultLonpoleAboveReferenceLatitudeIsZero(t *testing.T) {
	got := DefaultLonpole(math.Pi/2, 45)
	if got != 0 {
		t.Errorf("DefaultLonpole(π/2, 45) = %v; want 0", got)
	}
}

/*****************************************************************************************************************/

func TestNewUnrecognizedCodeIsError(t *testing.T) {
	_, err := New("XYZ", nil, Pose{})
	if err == nil {
		t.Fatal("expected an error for an unrecognized projection code")
	}
}

/*****************************************************************************************************************/

func TestNewTANRoundTrip(t *testing.T) {
	p, err := New("TAN", nil, Pose{Theta0: math.Pi / 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phi, theta, err := p.Project(12.3, -4.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y, err := p.ProjectInverse(phi, theta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(x-12.3) > 1e-9 || math.Abs(y-(-4.5)) > 1e-9 {
		t.Errorf("TAN round trip = (%v, %v); want (12.3, -4.5)", x, y)
	}
}

/*****************************************************************************************************************/

func TestParamReturnsDefaultWhenMissing(t *testing.T) {
	got := param([]float64{1, 2}, 3, 9)
	if got != 9 {
		t.Errorf("param([1,2], 3, 9) = %v; want 9", got)
	}
}

/*****************************************************************************************************************/

func TestParamReturnsSuppliedValue(t *testing.T) {
	got := param([]float64{1, 2, 3}, 2, 9)
	if got != 2 {
		t.Errorf("param([1,2,3], 2, 9) = %v; want 2", got)
	}
}

/*****************************************************************************************************************/
