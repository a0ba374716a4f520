/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package errs defines the error kinds surfaced by the WCS core (spec §7).
// Initialization errors are fatal and list every violation they find;
// per-point errors are returned to the caller and never invalidate the
// rest of a WCS instance.
package errs

/*****************************************************************************************************************/

import (
	"fmt"
	"strings"
)

/*****************************************************************************************************************/

// MissingKeywordsError reports every required keyword absent from a
// keyword source at once, rather than failing on the first one found.
type MissingKeywordsError struct {
	Keys []string
}

/*****************************************************************************************************************/

func (e *MissingKeywordsError) Error() string {
	return fmt.Sprintf("missing required WCS keyword(s): %s", strings.Join(e.Keys, ", "))
}

/*****************************************************************************************************************/

// BadCtypeError reports a CTYPE1/CTYPE2 pair that cannot be parsed, or
// whose projection codes disagree between the two axes.
type BadCtypeError struct {
	CType1 string
	CType2 string
	Reason string
}

/*****************************************************************************************************************/

func (e *BadCtypeError) Error() string {
	return fmt.Sprintf("bad CTYPE pair (%q, %q): %s", e.CType1, e.CType2, e.Reason)
}

/*****************************************************************************************************************/

// BadProjectionParameterError reports a PV2_n parameter that is missing,
// out of range, or otherwise unusable by the named projection.
type BadProjectionParameterError struct {
	Code   string
	Param  string
	Reason string
}

/*****************************************************************************************************************/

func (e *BadProjectionParameterError) Error() string {
	return fmt.Sprintf("bad projection parameter %s for %s: %s", e.Param, e.Code, e.Reason)
}

/*****************************************************************************************************************/

// PixelBeyondProjectionError reports a domain violation in a projection
// kernel: a pixel/native point outside the validity of the projection,
// or an iterative solver that failed to converge within its budget.
type PixelBeyondProjectionError struct {
	Code   string
	X, Y   float64
	Reason string
}

/*****************************************************************************************************************/

func (e *PixelBeyondProjectionError) Error() string {
	return fmt.Sprintf("point (%g, %g) is beyond the domain of projection %s: %s", e.X, e.Y, e.Code, e.Reason)
}

/*****************************************************************************************************************/

// FrameConversionError reports an unsupported source/target CRS pair.
// It should be unreachable if the rotation graph is complete, but callers
// may still hit it via malformed CRS values constructed outside crsparse.
type FrameConversionError struct {
	Source string
	Target string
	Reason string
}

/*****************************************************************************************************************/

func (e *FrameConversionError) Error() string {
	return fmt.Sprintf("cannot convert from %s to %s: %s", e.Source, e.Target, e.Reason)
}

/*****************************************************************************************************************/

// MathError reports a domain overflow surviving clamping, or a singular
// matrix encountered while building or inverting a linear transform.
type MathError struct {
	Op     string
	Reason string
}

/*****************************************************************************************************************/

func (e *MathError) Error() string {
	return fmt.Sprintf("math error in %s: %s", e.Op, e.Reason)
}

/*****************************************************************************************************************/
