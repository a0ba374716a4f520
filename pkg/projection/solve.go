/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/errs"
)

/*****************************************************************************************************************/

// bisect finds a root of f in [lo,hi] assuming f(lo) and f(hi) straddle
// zero, bounded to angle.MaxIterations per the resource policy in
// spec.md §5. AIR's R(θ) has no closed-form inverse and is solved with
// this; the other iterative kernels use newton or newton2D below.
func bisect(code string, f func(float64) float64, lo, hi float64) (float64, error) {
	flo := f(lo)
	fhi := f(hi)

	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo < 0) == (fhi < 0) {
		return 0, &errs.PixelBeyondProjectionError{Code: code, Reason: "bisection bracket does not straddle a root"}
	}

	for i := 0; i < angle.MaxIterations; i++ {
		mid := (lo + hi) / 2
		fmid := f(mid)

		if math.Abs(fmid) < angle.ConvergenceTolerance || (hi-lo)/2 < angle.ConvergenceTolerance {
			return mid, nil
		}

		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return 0, &errs.PixelBeyondProjectionError{Code: code, Reason: "bisection did not converge within the iteration budget"}
}

/*****************************************************************************************************************/

// newton refines an initial guess x0 for a root of f (with derivative df)
// for up to angle.MaxIterations steps, falling back to reporting
// non-convergence rather than looping forever.
func newton(code string, f, df func(float64) float64, x0 float64) (float64, error) {
	x := x0

	for i := 0; i < angle.MaxIterations; i++ {
		fx := f(x)
		if math.Abs(fx) < angle.ConvergenceTolerance {
			return x, nil
		}

		d := df(x)
		if d == 0 {
			break
		}

		x -= fx / d
	}

	return 0, &errs.PixelBeyondProjectionError{Code: code, Reason: "newton iteration did not converge within the iteration budget"}
}

/*****************************************************************************************************************/

// newton2D solves the 2-variable system f(a,b)=target for (a,b) starting
// from guess, using a finite-difference Jacobian. PCO's inverse has no
// closed form and eliminating one variable analytically is impractical,
// so both native coordinates are solved for jointly.
func newton2D(code string, f func(a, b float64) (float64, float64), target [2]float64, guess [2]float64) (float64, float64, error) {
	const h = 1e-6

	a, b := guess[0], guess[1]

	for i := 0; i < angle.MaxIterations; i++ {
		fa, fb := f(a, b)
		ra, rb := fa-target[0], fb-target[1]

		if math.Abs(ra) < angle.ConvergenceTolerance && math.Abs(rb) < angle.ConvergenceTolerance {
			return a, b, nil
		}

		faH, fbH := f(a+h, b)
		j11 := (faH - fa) / h
		j21 := (fbH - fb) / h

		faH2, fbH2 := f(a, b+h)
		j12 := (faH2 - fa) / h
		j22 := (fbH2 - fb) / h

		det := j11*j22 - j12*j21
		if det == 0 {
			break
		}

		da := (ra*j22 - rb*j12) / det
		db := (j11*rb - j21*ra) / det

		a -= da
		b -= db
	}

	return 0, 0, &errs.PixelBeyondProjectionError{Code: code, Reason: "2-D newton iteration did not converge within the iteration budget"}
}

/*****************************************************************************************************************/
