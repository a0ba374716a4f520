/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package frame implements the celestial reference-frame conversion
// engine (spec.md §4.7): the five CoordinateReferenceFrame variants
// (ICRS, J2000, FK5, FK4, FK4_NO_E) and the four Crs variants
// (Equatorial, Ecliptic, Galactic, SuperGalactic), converting between any
// pair via a common ICRS-aligned mean-equatorial-J2000 unit vector.
package frame

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/epoch"
	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/logsink"
	"github.com/observerly/skywcs/pkg/matrix"
)

/*****************************************************************************************************************/

// FrameKind is one of the five equatorial reference frame variants a
// Crs(EQUATORIAL) or Crs(ECLIPTIC) can be expressed in (spec.md §3).
type FrameKind int

/*****************************************************************************************************************/

const (
	ICRS FrameKind = iota
	J2000
	FK5
	FK4
	FK4NoE
)

/*****************************************************************************************************************/

func (k FrameKind) String() string {
	switch k {
	case ICRS:
		return "ICRS"
	case J2000:
		return "J2000"
	case FK5:
		return "FK5"
	case FK4:
		return "FK4"
	case FK4NoE:
		return "FK4_NO_E"
	default:
		return "UNKNOWN"
	}
}

/*****************************************************************************************************************/

// Frame is a fully-resolved equatorial reference frame: its kind, the
// equinox it is referred to (for FK4/FK5; ignored for ICRS/J2000), and
// the epoch of observation (FK4 only, for E-terms/proper-motion epoch
// transport — proper motion itself is out of scope per spec.md §1).
type Frame struct {
	Kind              FrameKind
	Equinox           epoch.Epochs
	EpochOfObservation *epoch.Epochs
}

/*****************************************************************************************************************/

// DefaultICRS, DefaultJ2000, DefaultFK5, DefaultFK4, DefaultFK4NoE are the
// zero-configuration frames for each kind: pkg/crsparse uses DefaultICRS
// and DefaultJ2000 when a CRS string gives no frame clause or an empty
// ICRS()/J2000() clause, and pkg/keywords uses them when resolving
// RADESYS/EQUINOX.
func DefaultICRS() Frame  { return Frame{Kind: ICRS} }
func DefaultJ2000() Frame { return Frame{Kind: J2000, Equinox: epoch.Epochs{Julian: 2000.0, JD: epoch.JulianEpochToJD(2000.0)}} }

/*****************************************************************************************************************/

func DefaultFK5() Frame {
	return Frame{Kind: FK5, Equinox: epoch.Epochs{Julian: 2000.0, JD: epoch.JulianEpochToJD(2000.0)}}
}

/*****************************************************************************************************************/

func DefaultFK4() Frame {
	return Frame{Kind: FK4, Equinox: epoch.Epochs{Besselian: 1950.0, JD: epoch.BesselianEpochToJD(1950.0)}}
}

/*****************************************************************************************************************/

func DefaultFK4NoE() Frame {
	return Frame{Kind: FK4NoE, Equinox: epoch.Epochs{Besselian: 1950.0, JD: epoch.BesselianEpochToJD(1950.0)}}
}

/*****************************************************************************************************************/

// CrsKind is one of the four coordinate-reference-system families
// (spec.md §3).
type CrsKind int

/*****************************************************************************************************************/

const (
	Equatorial CrsKind = iota
	Ecliptic
	Galactic
	SuperGalactic
)

/*****************************************************************************************************************/

func (k CrsKind) String() string {
	switch k {
	case Equatorial:
		return "EQUATORIAL"
	case Ecliptic:
		return "ECLIPTIC"
	case Galactic:
		return "GALACTIC"
	case SuperGalactic:
		return "SUPER_GALACTIC"
	default:
		return "UNKNOWN"
	}
}

/*****************************************************************************************************************/

// Crs is a fully-resolved coordinate reference system: its kind, plus a
// Frame when the kind is Equatorial or Ecliptic (Galactic and
// SuperGalactic carry no frame — by convention they are always referred
// to the galactic-pole-defining epoch and need no equinox).
type Crs struct {
	Kind  CrsKind
	Frame Frame
}

/*****************************************************************************************************************/

// resolveSink picks the first supplied LogSink, or nil if none was given
// (logsink.Advisory treats a nil sink as a no-op).
func resolveSink(sink []logsink.LogSink) logsink.LogSink {
	if len(sink) == 0 {
		return nil
	}
	return sink[0]
}

/*****************************************************************************************************************/

// resolveEquatorialFrame applies the ecliptic FK4_NO_E demotion (spec.md
// §4.5/§9: "FK4_NO_E used with an ecliptic CRS is silently demoted to
// FK4" — E-terms of aberration are an equatorial-frame artifact and have
// no well-defined correction in an ecliptic CRS) before f participates in
// a conversion, logging the demotion to sink.
func resolveEquatorialFrame(f Frame, crsKind CrsKind, sink logsink.LogSink) Frame {
	if crsKind == Ecliptic && f.Kind == FK4NoE {
		logsink.Advisory(sink, "FK4_NO_E has no defined E-terms correction in an ecliptic CRS; demoting to FK4")
		f.Kind = FK4
	}
	return f
}

/*****************************************************************************************************************/

// toICRSVector converts a (lon,lat) pair in degrees, expressed in c, into
// a unit vector in the common ICRS-aligned mean-equatorial-J2000 frame.
func (c Crs) toICRSVector(lonDeg, latDeg float64, sink logsink.LogSink) (matrix.Vector3, error) {
	v := matrix.UnitVectorFromSpherical(angle.Radians(lonDeg), angle.Radians(latDeg))

	switch c.Kind {
	case Galactic:
		return galacticToEquatorialMatrix().MulVec(v), nil
	case SuperGalactic:
		g := superGalacticToGalacticMatrix().MulVec(v)
		return galacticToEquatorialMatrix().MulVec(g), nil
	case Ecliptic:
		eq := EclipticToEquatorialMatrix(j2000Obliquity).MulVec(v)
		return equatorialFrameToICRS(resolveEquatorialFrame(c.Frame, c.Kind, sink), eq, sink)
	case Equatorial:
		return equatorialFrameToICRS(resolveEquatorialFrame(c.Frame, c.Kind, sink), v, sink)
	default:
		return matrix.Vector3{}, &errs.FrameConversionError{Source: c.Kind.String(), Target: "ICRS", Reason: "unrecognized coordinate reference system"}
	}
}

/*****************************************************************************************************************/

// fromICRSVector is the inverse of toICRSVector.
func (c Crs) fromICRSVector(v matrix.Vector3, sink logsink.LogSink) (lonDeg, latDeg float64, err error) {
	var native matrix.Vector3

	switch c.Kind {
	case Galactic:
		native = galacticToEquatorialMatrix().Transpose().MulVec(v)
	case SuperGalactic:
		g := galacticToEquatorialMatrix().Transpose().MulVec(v)
		native = superGalacticToGalacticMatrix().Transpose().MulVec(g)
	case Ecliptic:
		eq, ferr := icrsToEquatorialFrame(resolveEquatorialFrame(c.Frame, c.Kind, sink), v, sink)
		if ferr != nil {
			return 0, 0, ferr
		}
		native = EclipticToEquatorialMatrix(j2000Obliquity).Transpose().MulVec(eq)
	case Equatorial:
		native, err = icrsToEquatorialFrame(resolveEquatorialFrame(c.Frame, c.Kind, sink), v, sink)
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, &errs.FrameConversionError{Source: "ICRS", Target: c.Kind.String(), Reason: "unrecognized coordinate reference system"}
	}

	lon, lat := matrix.SphericalFromUnitVector(native)
	return angle.NormalizeDegrees(angle.Degrees(lon)), angle.Degrees(lat), nil
}

/*****************************************************************************************************************/

// ConvertTo converts (lonDeg,latDeg) from c into target, routing through
// the common ICRS-aligned mean-equatorial-J2000 vector (spec.md §4.7).
//
// sink is optional and receives any advisory raised along the way (the
// FK4_NO_E/ecliptic demotion, a pre-1984 FK5 equinox) — spec.md §9.
func (c Crs) ConvertTo(target Crs, lonDeg, latDeg float64, sink ...logsink.LogSink) (float64, float64, error) {
	s := resolveSink(sink)

	v, err := c.toICRSVector(lonDeg, latDeg, s)
	if err != nil {
		return 0, 0, err
	}

	return target.fromICRSVector(v, s)
}

/*****************************************************************************************************************/

// Separation returns the angular separation in degrees between two
// points expressed in the same Crs, via the dot product of their unit
// vectors (spec.md §4.7).
func Separation(c Crs, lon1, lat1, lon2, lat2 float64, sink ...logsink.LogSink) (float64, error) {
	s := resolveSink(sink)

	v1, err := c.toICRSVector(lon1, lat1, s)
	if err != nil {
		return 0, err
	}
	v2, err := c.toICRSVector(lon2, lat2, s)
	if err != nil {
		return 0, err
	}

	dot, ok := angle.ClampUnit(v1.Dot(v2), angle.DefaultClampTolerance)
	if !ok {
		dot = math.Copysign(1, dot)
	}

	return angle.Degrees(math.Acos(dot)), nil
}

/*****************************************************************************************************************/
