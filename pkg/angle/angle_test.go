/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package angle

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func TestRadiansDegreesRoundTrip(t *testing.T) {
	cases := []float64{0, 45, 90, 180, -30, 359.999}

	for _, deg := range cases {
		got := Degrees(Radians(deg))
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("Degrees(Radians(%v)) = %v; want %v", deg, got, deg)
		}
	}
}

/*****************************************************************************************************************/

func TestNormalizeDegreesFoldsIntoRange(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{720 + 10, 10},
		{-360.5, 359.5},
	}

	for _, c := range cases {
		got := NormalizeDegrees(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v; want %v", c.in, got, c.want)
		}
	}
}

/*****************************************************************************************************************/

func TestNormalizeRadiansFoldsIntoRange(t *testing.T) {
	got := NormalizeRadians(-math.Pi / 2)
	want := 2*math.Pi - math.Pi/2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("NormalizeRadians(-π/2) = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestClampUnitWithinRange(t *testing.T) {
	got, ok := ClampUnit(0.5, DefaultClampTolerance)
	if !ok || got != 0.5 {
		t.Errorf("ClampUnit(0.5) = (%v, %v); want (0.5, true)", got, ok)
	}
}

/*****************************************************************************************************************/

func TestClampUnitRoundingOvershoot(t *testing.T) {
	got, ok := ClampUnit(1+1e-13, DefaultClampTolerance)
	if !ok || got != 1 {
		t.Errorf("ClampUnit(1+1e-13) = (%v, %v); want (1, true)", got, ok)
	}
}

/*****************************************************************************************************************/

func TestClampUnitGenuineDomainViolation(t *testing.T) {
	_, ok := ClampUnit(1.5, DefaultClampTolerance)
	if ok {
		t.Error("ClampUnit(1.5) reported ok=true for a genuine domain violation")
	}
}

/*****************************************************************************************************************/

func TestAsinClampsRoundingOvershoot(t *testing.T) {
	got := Asin(1 + 1e-13)
	want := math.Pi / 2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Asin(1+1e-13) = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestAcosClampsRoundingOvershoot(t *testing.T) {
	got := Acos(-1 - 1e-13)
	want := math.Pi
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Acos(-1-1e-13) = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/
