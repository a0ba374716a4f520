/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package matrix

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestNewFromSliceRejectsMismatchedLength(t *testing.T) {
	if _, err := NewFromSlice([]float64{1, 2, 3}, 2, 2); err == nil {
		t.Error("expected an error for a 3-element slice against a 2x2 shape")
	}
}

/*****************************************************************************************************************/

func TestNewFromSliceRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewFromSlice([]float64{}, 0, 2); err == nil {
		t.Error("expected an error for a zero row count")
	}
}

/*****************************************************************************************************************/

func TestNewFromSliceCopiesItsInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := NewFromSlice(src, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src[0] = 99
	if m.Value[0] != 1 {
		t.Errorf("Value[0] = %v; want 1 (NewFromSlice should not alias its input)", m.Value[0])
	}
}

/*****************************************************************************************************************/

func TestDeterminantOfA1x1Matrix(t *testing.T) {
	m, err := NewFromSlice([]float64{5}, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Determinant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("Determinant() = %v; want 5", got)
	}
}

/*****************************************************************************************************************/

func TestDeterminantOfA2x2Matrix(t *testing.T) {
	m, err := NewFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Determinant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -2 {
		t.Errorf("Determinant() = %v; want -2", got)
	}
}

/*****************************************************************************************************************/

func TestDeterminantRejectsNonSquareMatrices(t *testing.T) {
	m, err := NewFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Determinant(); err == nil {
		t.Error("expected an error for a non-square matrix")
	}
}

/*****************************************************************************************************************/

func TestInvertOfA2x2Matrix(t *testing.T) {
	m, err := NewFromSlice([]float64{4, 7, 2, 6}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0.6, -0.7, -0.2, 0.4}
	for i, w := range want {
		if diff := inv.Value[i] - w; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Invert().Value[%d] = %v; want %v", i, inv.Value[i], w)
		}
	}
}

/*****************************************************************************************************************/

func TestInvertRejectsASingularMatrix(t *testing.T) {
	m, err := NewFromSlice([]float64{1, 2, 2, 4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Invert(); err == nil {
		t.Error("expected an error inverting a singular matrix")
	}
}

/*****************************************************************************************************************/

func TestInvertRejectsNonSquareMatrices(t *testing.T) {
	m, err := NewFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Invert(); err == nil {
		t.Error("expected an error inverting a non-square matrix")
	}
}

/*****************************************************************************************************************/
