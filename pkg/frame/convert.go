/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package frame

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/observerly/skywcs/pkg/epoch"
	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/logsink"
	"github.com/observerly/skywcs/pkg/matrix"
)

/*****************************************************************************************************************/

const j2000JD = 2451545.0

/*****************************************************************************************************************/

func b1950JD() float64 { return epoch.BesselianEpochToJD(1950.0) }

/*****************************************************************************************************************/

// fk5PreIAU1984Cutover is the Julian-year equinox below which an FK5
// frame predates the 1984.0 adoption of the IAU (1976 precession, 1980
// nutation) system FK5 is defined against (spec.md §9).
const fk5PreIAU1984Cutover = 1984.0

/*****************************************************************************************************************/

// warnIfFK5PreIAU1984 surfaces an advisory when an FK5 equinox predates
// the system FK5 was defined against, per spec.md §9's open question.
func warnIfFK5PreIAU1984(f Frame, sink logsink.LogSink) {
	if f.Kind != FK5 || f.Equinox.Julian == 0 {
		return
	}
	if f.Equinox.Julian < fk5PreIAU1984Cutover {
		logsink.Advisory(sink, fmt.Sprintf(
			"FK5 equinox %.1f predates the 1984.0 adoption of the IAU (1976/1980) system FK5 is defined against",
			f.Equinox.Julian,
		))
	}
}

/*****************************************************************************************************************/

// equatorialFrameToICRS rotates a mean-place unit vector expressed in f
// into the common ICRS-aligned mean-equatorial-J2000 vector used as the
// hub for every Crs conversion (spec.md §4.7).
func equatorialFrameToICRS(f Frame, v matrix.Vector3, sink logsink.LogSink) (matrix.Vector3, error) {
	switch f.Kind {
	case ICRS:
		return v, nil

	case J2000:
		return icrsToFK5J2000Matrix().Transpose().MulVec(v), nil

	case FK5:
		warnIfFK5PreIAU1984(f, sink)

		fromJD := f.Equinox.JD
		if fromJD == 0 {
			fromJD = j2000JD
		}
		atJ2000 := fk5PrecessionMatrix(fromJD, j2000JD).MulVec(v)
		return icrsToFK5J2000Matrix().Transpose().MulVec(atJ2000), nil

	case FK4, FK4NoE:
		vNoE := v
		if f.Kind == FK4 {
			vNoE = removeETerms(v)
		}

		fromJD := f.Equinox.JD
		if fromJD == 0 {
			fromJD = b1950JD()
		}

		atB1950 := fk4PrecessionMatrix(fromJD, b1950JD()).MulVec(vNoE)
		atFK5J2000 := fk4B1950ToFK5J2000Matrix().MulVec(atB1950)

		return icrsToFK5J2000Matrix().Transpose().MulVec(atFK5J2000), nil

	default:
		return matrix.Vector3{}, &errs.FrameConversionError{Source: f.Kind.String(), Target: "ICRS", Reason: "unrecognized reference frame"}
	}
}

/*****************************************************************************************************************/

// icrsToEquatorialFrame is the inverse of equatorialFrameToICRS.
func icrsToEquatorialFrame(f Frame, v matrix.Vector3, sink logsink.LogSink) (matrix.Vector3, error) {
	switch f.Kind {
	case ICRS:
		return v, nil

	case J2000:
		return icrsToFK5J2000Matrix().MulVec(v), nil

	case FK5:
		warnIfFK5PreIAU1984(f, sink)

		toJD := f.Equinox.JD
		if toJD == 0 {
			toJD = j2000JD
		}
		atJ2000 := icrsToFK5J2000Matrix().MulVec(v)
		return fk5PrecessionMatrix(toJD, j2000JD).Transpose().MulVec(atJ2000), nil

	case FK4, FK4NoE:
		atFK5J2000 := icrsToFK5J2000Matrix().MulVec(v)
		atB1950 := fk4B1950ToFK5J2000Matrix().Transpose().MulVec(atFK5J2000)

		toJD := f.Equinox.JD
		if toJD == 0 {
			toJD = b1950JD()
		}
		vNoE := fk4PrecessionMatrix(toJD, b1950JD()).Transpose().MulVec(atB1950)

		if f.Kind == FK4 {
			return addETerms(vNoE), nil
		}
		return vNoE, nil

	default:
		return matrix.Vector3{}, &errs.FrameConversionError{Source: "ICRS", Target: f.Kind.String(), Reason: "unrecognized reference frame"}
	}
}

/*****************************************************************************************************************/
