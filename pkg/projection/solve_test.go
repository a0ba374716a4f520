/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"errors"
	"testing"

	"github.com/observerly/skywcs/pkg/errs"
)

/*****************************************************************************************************************/

func TestBisectReportsPixelBeyondProjectionOnABadBracket(t *testing.T) {
	_, err := bisect("TST", func(x float64) float64 { return x*x + 1 }, -1, 1)

	var target *errs.PixelBeyondProjectionError
	if !errors.As(err, &target) {
		t.Fatalf("bisect() error = %v (%T); want *errs.PixelBeyondProjectionError", err, err)
	}
}

/*****************************************************************************************************************/

func TestNewtonReportsPixelBeyondProjectionOnNonConvergence(t *testing.T) {
	f := func(x float64) float64 { return 1 }
	df := func(x float64) float64 { return 1 }

	_, err := newton("TST", f, df, 0)

	var target *errs.PixelBeyondProjectionError
	if !errors.As(err, &target) {
		t.Fatalf("newton() error = %v (%T); want *errs.PixelBeyondProjectionError", err, err)
	}
	if target.Code != "TST" {
		t.Errorf("Code = %q; want %q", target.Code, "TST")
	}
}

/*****************************************************************************************************************/

func TestNewton2DReportsPixelBeyondProjectionOnNonConvergence(t *testing.T) {
	f := func(a, b float64) (float64, float64) { return 1, 1 }

	_, _, err := newton2D("TST", f, [2]float64{0, 0}, [2]float64{0, 0})

	var target *errs.PixelBeyondProjectionError
	if !errors.As(err, &target) {
		t.Fatalf("newton2D() error = %v (%T); want *errs.PixelBeyondProjectionError", err, err)
	}
}

/*****************************************************************************************************************/
