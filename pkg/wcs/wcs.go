/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package wcs ties the linear pixel pipeline, the projection kernel, and
// the celestial reference frame into the single top-level Wcs type
// (spec.md §2): `pixel → intermediate world coords → native spherical →
// celestial` and its exact inverse.
package wcs

/*****************************************************************************************************************/

import (
	"strings"

	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/frame"
	"github.com/observerly/skywcs/pkg/keywords"
	"github.com/observerly/skywcs/pkg/logsink"
	"github.com/observerly/skywcs/pkg/projection"
)

/*****************************************************************************************************************/

// Wcs is the fully initialized WCS core: built once from a KeywordSource
// by Init and read-only afterwards, so independent PixelToSky/SkyToPixel
// calls on the same *Wcs may run concurrently with no synchronization
// (spec.md §5, exploited by pkg/batch).
type Wcs struct {
	Keywords *keywords.WcsKeywords
	Crs      frame.Crs
	pose     projection.Pose
}

/*****************************************************************************************************************/

// Init builds a Wcs from src: keyword ingest & validation (pkg/keywords),
// CRS selection from the CTYPE axis kind, and the native-pole pose used
// by every PixelToSky/SkyToPixel call.
//
// sink is optional and is forwarded to keywords.Init (spec.md §9).
func Init(src keywords.KeywordSource, sink ...logsink.LogSink) (*Wcs, error) {
	kw, err := keywords.Init(src, sink...)
	if err != nil {
		return nil, err
	}

	kind, err := crsKindFromAxis(kw.AxisKind1, kw.AxisKind2)
	if err != nil {
		return nil, err
	}

	crs := frame.Crs{Kind: kind}
	if kind == frame.Equatorial || kind == frame.Ecliptic {
		crs.Frame = kw.Frame
	}

	phi0, theta0 := projection.DefaultNativePose(kw.ProjCode)
	alphaP, deltaP := angle.Radians(kw.CRVal1), angle.Radians(kw.CRVal2)
	_, thetaP := projection.NativePoleFromCelestial(phi0, theta0, alphaP, deltaP, kw.LonPole, kw.LatPole)

	pose := projection.Pose{
		Phi0:   phi0,
		Theta0: theta0,
		AlphaP: alphaP,
		DeltaP: deltaP,
		PhiP:   kw.LonPole,
		ThetaP: thetaP,
	}

	return &Wcs{Keywords: kw, Crs: crs, pose: pose}, nil
}

/*****************************************************************************************************************/

// crsKindFromAxis maps a CTYPE axis-name pair to the CRS family it
// declares (spec.md §4.1 step 2/§2 data flow: "the CRS declared by
// CTYPE/RADESYS").
func crsKindFromAxis(axis1, axis2 string) (frame.CrsKind, error) {
	a1, a2 := strings.ToUpper(axis1), strings.ToUpper(axis2)

	switch {
	case (a1 == "RA" && a2 == "DEC") || (a1 == "DEC" && a2 == "RA"):
		return frame.Equatorial, nil
	case (a1 == "GLON" && a2 == "GLAT") || (a1 == "GLAT" && a2 == "GLON"):
		return frame.Galactic, nil
	case (a1 == "SLON" && a2 == "SLAT") || (a1 == "SLAT" && a2 == "SLON"):
		return frame.SuperGalactic, nil
	case (a1 == "ELON" && a2 == "ELAT") || (a1 == "ELAT" && a2 == "ELON"):
		return frame.Ecliptic, nil
	default:
		return 0, &errs.BadCtypeError{CType1: axis1, CType2: axis2, Reason: "unrecognized celestial axis pair"}
	}
}

/*****************************************************************************************************************/

// PixelToSky runs the full forward pipeline (spec.md §2): CRPIX offset,
// linear transform, projection, spherical rotation, and CRS-native
// (lonDeg,latDeg).
func (w *Wcs) PixelToSky(i, j float64) (lonDeg, latDeg float64, err error) {
	x, y := w.Keywords.Linear.PixelToIntermediate(i, j)

	phi, theta, err := w.Keywords.Projection.Project(x, y)
	if err != nil {
		return 0, 0, err
	}

	alpha, delta := projection.NativeToCelestial(phi, theta, w.pose)

	return angle.NormalizeDegrees(angle.Degrees(alpha)), angle.Degrees(delta), nil
}

/*****************************************************************************************************************/

// SkyToPixel is the exact inverse of PixelToSky.
func (w *Wcs) SkyToPixel(lonDeg, latDeg float64) (i, j float64, err error) {
	phi, theta := projection.CelestialToNative(angle.Radians(lonDeg), angle.Radians(latDeg), w.pose)

	x, y, err := w.Keywords.Projection.ProjectInverse(phi, theta)
	if err != nil {
		return 0, 0, err
	}

	i, j = w.Keywords.Linear.IntermediateToPixel(x, y)
	return i, j, nil
}

/*****************************************************************************************************************/

// Center returns the celestial coordinates of the reference pixel
// (CRPIX1,CRPIX2), which by construction is the projection's fiducial
// point (CRVAL1,CRVAL2).
func (w *Wcs) Center() (lonDeg, latDeg float64, err error) {
	return w.PixelToSky(w.Keywords.CRPix1, w.Keywords.CRPix2)
}

/*****************************************************************************************************************/

// ConvertTo converts a sky position produced by PixelToSky (expressed in
// w's own CRS) into target. sink is optional, forwarded to
// frame.Crs.ConvertTo (spec.md §9).
func (w *Wcs) ConvertTo(target frame.Crs, lonDeg, latDeg float64, sink ...logsink.LogSink) (float64, float64, error) {
	return w.Crs.ConvertTo(target, lonDeg, latDeg, sink...)
}

/*****************************************************************************************************************/
