/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package keywords implements the keyword ingest and validation stage
// (spec.md §4.1): reading a FITS-style keyword source into a fully
// resolved WcsKeywords core — the linear transform, the projection, the
// native pole, and the reference frame — all derived once and read-only
// thereafter.
package keywords

/*****************************************************************************************************************/

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/epoch"
	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/frame"
	"github.com/observerly/skywcs/pkg/logsink"
	"github.com/observerly/skywcs/pkg/projection"
	"github.com/observerly/skywcs/pkg/transform"
)

/*****************************************************************************************************************/

// KeywordSource is a read-only provider over a FITS-style keyword/value
// mapping (spec.md §4.1). Keys are matched case-insensitively by
// implementations; callers should pass them uppercase by convention.
type KeywordSource interface {
	Has(key string) bool
	GetInt(key string) (int, bool)
	GetFloat(key string) (float64, bool)
	GetString(key string) (string, bool)
	Keys() []string
}

/*****************************************************************************************************************/

// MapKeywordSource is the simplest KeywordSource: a map of uppercase key
// to an already-typed value (int, float64, or string).
type MapKeywordSource map[string]interface{}

/*****************************************************************************************************************/

func (m MapKeywordSource) Has(key string) bool {
	_, ok := m[strings.ToUpper(key)]
	return ok
}

/*****************************************************************************************************************/

func (m MapKeywordSource) GetInt(key string) (int, bool) {
	v, ok := m[strings.ToUpper(key)]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

/*****************************************************************************************************************/

func (m MapKeywordSource) GetFloat(key string) (float64, bool) {
	v, ok := m[strings.ToUpper(key)]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

/*****************************************************************************************************************/

func (m MapKeywordSource) GetString(key string) (string, bool) {
	v, ok := m[strings.ToUpper(key)]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

/*****************************************************************************************************************/

func (m MapKeywordSource) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

/*****************************************************************************************************************/

// WcsKeywords is the fully resolved keyword core (spec.md §3): built once
// from a KeywordSource by Init, and read-only afterwards.
type WcsKeywords struct {
	Naxis, Naxis1, Naxis2 int

	CType1, CType2       string
	AxisKind1, AxisKind2 string
	ProjCode             string

	CRPix1, CRPix2 float64
	CRVal1, CRVal2 float64

	Linear     *transform.LinearTransform
	Projection projection.Projection
	Frame      frame.Frame

	// LonPole, LatPole are (φ_p,θ_p) in radians.
	LonPole, LatPole float64
}

/*****************************************************************************************************************/

var requiredKeys = []string{
	"NAXIS", "NAXIS1", "NAXIS2",
	"CTYPE1", "CTYPE2",
	"CRPIX1", "CRPIX2",
	"CRVAL1", "CRVAL2",
}

/*****************************************************************************************************************/

var cdKeys = []string{"CD1_1", "CD1_2", "CD2_1", "CD2_2"}
var pcCdeltKeys = []string{"PC1_1", "PC1_2", "PC2_1", "PC2_2", "CDELT1", "CDELT2"}
var cdeltCrotaKeys = []string{"CDELT1", "CDELT2", "CROTA2"}

/*****************************************************************************************************************/

func hasAll(src KeywordSource, keys []string) bool {
	for _, k := range keys {
		if !src.Has(k) {
			return false
		}
	}
	return true
}

/*****************************************************************************************************************/

// Init builds a WcsKeywords from src, following spec.md §4.1 exactly:
// validate required keywords (accumulating every missing name), parse
// CTYPE1/CTYPE2, resolve the reference frame, build the linear transform
// in CD→PC→CDELT/CROTA2 priority, instantiate the projection with its
// PV2_* parameters, and compute the native pole.
//
// sink is optional (spec.md §9's injected-logger design): when given, it
// receives advisory messages for assumptions Init makes silently
// otherwise, such as an FK4 frame resolved with no DATE-OBS/MJD-OBS/EPOCH
// to fix its epoch of observation.
func Init(src KeywordSource, sink ...logsink.LogSink) (*WcsKeywords, error) {
	s := resolveSink(sink)

	if err := validateRequired(src); err != nil {
		return nil, err
	}

	w := &WcsKeywords{}

	w.Naxis, _ = src.GetInt("NAXIS")
	w.Naxis1, _ = src.GetInt("NAXIS1")
	w.Naxis2, _ = src.GetInt("NAXIS2")
	w.CType1, _ = src.GetString("CTYPE1")
	w.CType2, _ = src.GetString("CTYPE2")
	w.CRPix1, _ = src.GetFloat("CRPIX1")
	w.CRPix2, _ = src.GetFloat("CRPIX2")
	w.CRVal1, _ = src.GetFloat("CRVAL1")
	w.CRVal2, _ = src.GetFloat("CRVAL2")

	axis1, code1, err := parseCType(w.CType1)
	if err != nil {
		return nil, &errs.BadCtypeError{CType1: w.CType1, CType2: w.CType2, Reason: err.Error()}
	}
	axis2, code2, err := parseCType(w.CType2)
	if err != nil {
		return nil, &errs.BadCtypeError{CType1: w.CType1, CType2: w.CType2, Reason: err.Error()}
	}
	if code1 != code2 {
		return nil, &errs.BadCtypeError{CType1: w.CType1, CType2: w.CType2, Reason: "axes do not share the same projection code"}
	}
	w.AxisKind1, w.AxisKind2, w.ProjCode = axis1, axis2, code1

	w.Frame = resolveFrame(src, s)

	lt, err := buildLinearTransform(src)
	if err != nil {
		return nil, err
	}
	w.Linear = lt

	params := readPV2(src)
	if w.ProjCode != "ZPN" && len(params) > 0 {
		params = params[1:] // projection.New indexes these kernels from PV2_1
	}

	phi0, theta0 := projection.DefaultNativePose(w.ProjCode)

	lonpoleDeg := projection.DefaultLonpole(theta0, w.CRVal2)
	if v, ok := src.GetFloat("LONPOLE"); ok {
		lonpoleDeg = v
	}
	w.LonPole = angle.Radians(lonpoleDeg)

	latpoleDeg := 90.0
	if v, ok := src.GetFloat("LATPOLE"); ok {
		latpoleDeg = v
	}
	w.LatPole = angle.Radians(latpoleDeg)

	pose := projection.Pose{
		Phi0:   phi0,
		Theta0: theta0,
		AlphaP: angle.Radians(w.CRVal1),
		DeltaP: angle.Radians(w.CRVal2),
		PhiP:   w.LonPole,
	}
	_, pose.ThetaP = projection.NativePoleFromCelestial(phi0, theta0, pose.AlphaP, pose.DeltaP, w.LonPole, w.LatPole)

	proj, err := projection.New(w.ProjCode, params, pose)
	if err != nil {
		return nil, err
	}
	w.Projection = proj

	return w, nil
}

/*****************************************************************************************************************/

func validateRequired(src KeywordSource) error {
	var missing []string
	for _, k := range requiredKeys {
		if !src.Has(k) {
			missing = append(missing, k)
		}
	}
	if !hasAll(src, cdKeys) && !hasAll(src, pcCdeltKeys) && !hasAll(src, cdeltCrotaKeys) {
		missing = append(missing, "CD1_1/CD1_2/CD2_1/CD2_2 or PC1_1../CDELT1/2 or CDELT1/2+CROTA2")
	}
	if len(missing) > 0 {
		return &errs.MissingKeywordsError{Keys: missing}
	}
	return nil
}

/*****************************************************************************************************************/

// parseCType splits an 8-character FITS CTYPEn value ("RA---TAN") into its
// axis name ("RA") and three-letter projection code ("TAN"). CTYPEn
// values with no projection suffix (linear axes) return an empty code.
func parseCType(ctype string) (axis string, code string, err error) {
	s := strings.TrimSpace(ctype)
	if len(s) < 4 {
		return "", "", &errs.BadCtypeError{CType1: ctype, Reason: "CTYPE shorter than 4 characters"}
	}
	if len(s) < 8 {
		return strings.TrimRight(s, "-"), "", nil
	}
	return strings.TrimRight(s[:4], "-"), s[5:8], nil
}

/*****************************************************************************************************************/

// resolveSink returns the single LogSink an Init caller passed, or
// logsink.NoopSink{} if none.
func resolveSink(sink []logsink.LogSink) logsink.LogSink {
	if len(sink) == 0 || sink[0] == nil {
		return logsink.NoopSink{}
	}
	return sink[0]
}

/*****************************************************************************************************************/

// resolveFrame selects the reference frame from RADESYS (without RADESYS:
// FK4 when EQUINOX<1984, FK5 for any other EQUINOX, ICRS when EQUINOX is
// absent too), then overrides the equinox from EQUINOX and sets the epoch
// of observation from EPOCH/DATE-OBS/MJD-OBS when present (spec.md §4.1,
// §4.7).
func resolveFrame(src KeywordSource, sink logsink.LogSink) frame.Frame {
	radesys, hasRadesys := src.GetString("RADESYS")
	radesys = strings.ToUpper(strings.TrimSpace(radesys))

	equinox, hasEquinox := src.GetFloat("EQUINOX")

	var f frame.Frame
	switch {
	case hasRadesys && radesys == "FK4":
		f = frame.DefaultFK4()
	case hasRadesys && radesys == "FK4-NO-E":
		f = frame.DefaultFK4NoE()
	case hasRadesys && radesys == "FK5":
		f = frame.DefaultFK5()
	case hasRadesys && radesys == "ICRS":
		f = frame.DefaultICRS()
	case !hasRadesys && hasEquinox && equinox < 1984:
		f = frame.DefaultFK4()
	case !hasRadesys && hasEquinox:
		f = frame.DefaultFK5()
	default:
		f = frame.DefaultICRS()
	}

	if hasEquinox && f.Kind != frame.ICRS {
		if f.Kind == frame.FK4 || f.Kind == frame.FK4NoE {
			f.Equinox = epoch.Epochs{Besselian: equinox, JD: epoch.BesselianEpochToJD(equinox)}
		} else {
			f.Equinox = epoch.Epochs{Julian: equinox, JD: epoch.JulianEpochToJD(equinox)}
		}
	}

	if epochVal, ok := resolveEpochOfObservation(src); ok {
		eo := epochVal
		f.EpochOfObservation = &eo
	} else if f.Kind == frame.FK4 || f.Kind == frame.FK4NoE {
		logsink.Advisory(sink, fmt.Sprintf(
			"no DATE-OBS/MJD-OBS/EPOCH present; assuming %s epoch of observation equals its equinox",
			f.Kind,
		))
	}

	return f
}

/*****************************************************************************************************************/

func resolveEpochOfObservation(src KeywordSource) (epoch.Epochs, bool) {
	if s, ok := src.GetString("DATE-OBS"); ok && s != "" {
		if e, err := epoch.ParseEpochs(s); err == nil {
			return e, true
		}
	}
	if v, ok := src.GetFloat("MJD-OBS"); ok {
		jd := epoch.JDFromMJD(v)
		return epoch.Epochs{Besselian: epoch.JDToBesselianEpoch(jd), Julian: epoch.JDToJulianEpoch(jd), JD: jd}, true
	}
	if v, ok := src.GetFloat("EPOCH"); ok {
		return epoch.Epochs{Besselian: v, Julian: epoch.BesselianToJulianEpoch(v), JD: epoch.BesselianEpochToJD(v)}, true
	}
	return epoch.Epochs{}, false
}

/*****************************************************************************************************************/

// buildLinearTransform derives M and CRPIX in CD → PC·CDELT →
// CDELT·CROTA2 priority order (spec.md §4.2).
func buildLinearTransform(src KeywordSource) (*transform.LinearTransform, error) {
	crpix1, _ := src.GetFloat("CRPIX1")
	crpix2, _ := src.GetFloat("CRPIX2")

	if hasAll(src, cdKeys) {
		cd11, _ := src.GetFloat("CD1_1")
		cd12, _ := src.GetFloat("CD1_2")
		cd21, _ := src.GetFloat("CD2_1")
		cd22, _ := src.GetFloat("CD2_2")
		return transform.NewLinearTransformFromCD(cd11, cd12, cd21, cd22, crpix1, crpix2)
	}

	if hasAll(src, pcCdeltKeys) {
		pc11, _ := src.GetFloat("PC1_1")
		pc12, _ := src.GetFloat("PC1_2")
		pc21, _ := src.GetFloat("PC2_1")
		pc22, _ := src.GetFloat("PC2_2")
		cdelt1, _ := src.GetFloat("CDELT1")
		cdelt2, _ := src.GetFloat("CDELT2")
		return transform.NewLinearTransformFromPCCDELT(pc11, pc12, pc21, pc22, cdelt1, cdelt2, crpix1, crpix2)
	}

	cdelt1, _ := src.GetFloat("CDELT1")
	cdelt2, _ := src.GetFloat("CDELT2")
	crota2, _ := src.GetFloat("CROTA2")
	return transform.NewLinearTransformFromCDELTCROTA2(cdelt1, cdelt2, crota2, crpix1, crpix2)
}

/*****************************************************************************************************************/

// readPV2 reads PV2_0..PV2_N in increasing index order into a dense
// parameter vector, leaving gaps as zero (spec.md §4.1 step 5).
func readPV2(src KeywordSource) []float64 {
	max := -1
	for _, k := range src.Keys() {
		suffix, ok := strings.CutPrefix(k, "PV2_")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	if max < 0 {
		return nil
	}

	params := make([]float64, max+1)
	for i := 0; i <= max; i++ {
		if v, ok := src.GetFloat("PV2_" + strconv.Itoa(i)); ok {
			params[i] = v
		}
	}
	return params
}

/*****************************************************************************************************************/
