/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package keywords

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/skywcs/pkg/errs"
	"github.com/observerly/skywcs/pkg/frame"
	"github.com/observerly/skywcs/pkg/logsink"
)

/*****************************************************************************************************************/

func tanHeader() MapKeywordSource {
	return MapKeywordSource{
		"NAXIS":  2,
		"NAXIS1": 1024,
		"NAXIS2": 1024,
		"CTYPE1": "RA---TAN",
		"CTYPE2": "DEC--TAN",
		"CRPIX1": 512.0,
		"CRPIX2": 512.0,
		"CRVAL1": 83.633,
		"CRVAL2": 22.0145,
		"CD1_1":  -0.0002,
		"CD1_2":  0.0,
		"CD2_1":  0.0,
		"CD2_2":  0.0002,
	}
}

/*****************************************************************************************************************/

func TestInitMissingKeywordsListsAllOmissions(t *testing.T) {
	src := MapKeywordSource{"NAXIS": 2}

	_, err := Init(src)
	if err == nil {
		t.Fatal("expected an error for a header missing required keywords")
	}

	missing, ok := err.(*errs.MissingKeywordsError)
	if !ok {
		t.Fatalf("expected *errs.MissingKeywordsError, got %T", err)
	}
	if len(missing.Keys) < 5 {
		t.Errorf("expected multiple missing keys to be accumulated, got %v", missing.Keys)
	}
}

/*****************************************************************************************************************/

func TestInitMismatchedProjectionCodeIsBadCtype(t *testing.T) {
	src := tanHeader()
	src["CTYPE2"] = "DEC--SIN"

	_, err := Init(src)
	if _, ok := err.(*errs.BadCtypeError); !ok {
		t.Fatalf("expected *errs.BadCtypeError, got %v (%T)", err, err)
	}
}

/*****************************************************************************************************************/

func TestInitTANHeaderResolvesProjectionAndLinear(t *testing.T) {
	src := tanHeader()

	w, err := Init(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.ProjCode != "TAN" {
		t.Errorf("ProjCode = %q; want TAN", w.ProjCode)
	}
	if w.Projection == nil || w.Projection.Code() != "TAN" {
		t.Errorf("Projection not instantiated as TAN")
	}
	if w.Linear == nil {
		t.Fatal("Linear transform not built")
	}
	if w.Frame.Kind != frame.ICRS {
		t.Errorf("Frame.Kind = %v; want ICRS (no RADESYS/EQUINOX supplied)", w.Frame.Kind)
	}
}

/*****************************************************************************************************************/

func TestInitRespectsEquinoxBefore1984AsFK4(t *testing.T) {
	src := tanHeader()
	src["EQUINOX"] = 1950.0

	w, err := Init(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Frame.Kind != frame.FK4 {
		t.Errorf("Frame.Kind = %v; want FK4 for EQUINOX 1950", w.Frame.Kind)
	}
}

/*****************************************************************************************************************/

func TestInitPV2ParametersAreReadInOrder(t *testing.T) {
	src := tanHeader()
	src["CTYPE1"] = "RA---ZPN"
	src["CTYPE2"] = "DEC--ZPN"
	src["PV2_0"] = 0.0
	src["PV2_1"] = 1.0
	src["PV2_2"] = 0.0
	src["PV2_3"] = 42.0

	w, err := Init(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := w.Projection.Parameters()
	if len(params) != 4 {
		t.Fatalf("len(params) = %d; want 4", len(params))
	}
	if params[3] != 42.0 {
		t.Errorf("params[3] = %v; want 42.0", params[3])
	}
}

/*****************************************************************************************************************/

func TestInitPixelToIntermediateRoundTrip(t *testing.T) {
	src := tanHeader()
	w, err := Init(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y := w.Linear.PixelToIntermediate(700, 300)
	i, j := w.Linear.IntermediateToPixel(x, y)

	if math.Abs(i-700) > 1e-9 || math.Abs(j-300) > 1e-9 {
		t.Errorf("round trip = (%v, %v); want (700, 300)", i, j)
	}
}

/*****************************************************************************************************************/

type recordingSink struct {
	messages []string
}

func (r *recordingSink) Log(level logsink.Level, recordID string, message string) {
	r.messages = append(r.messages, message)
}

/*****************************************************************************************************************/

func TestInitLogsAdvisoryForFK4WithNoEpochOfObservation(t *testing.T) {
	src := tanHeader()
	src["EQUINOX"] = 1950.0

	sink := &recordingSink{}
	if _, err := Init(src, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.messages) != 1 {
		t.Fatalf("expected exactly one advisory message, got %v", sink.messages)
	}
}

/*****************************************************************************************************************/

func TestInitDoesNotLogWhenDateObsIsPresent(t *testing.T) {
	src := tanHeader()
	src["EQUINOX"] = 1950.0
	src["DATE-OBS"] = "1955-06-15"

	sink := &recordingSink{}
	if _, err := Init(src, sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.messages) != 0 {
		t.Errorf("expected no advisory messages when DATE-OBS is present, got %v", sink.messages)
	}
}

/*****************************************************************************************************************/

func TestParseCTypeSplitsAxisAndCode(t *testing.T) {
	axis, code, err := parseCType("RA---TAN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis != "RA" || code != "TAN" {
		t.Errorf("parseCType = (%q, %q); want (RA, TAN)", axis, code)
	}

	axis, code, err = parseCType("GLON-CAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis != "GLON" || code != "CAR" {
		t.Errorf("parseCType = (%q, %q); want (GLON, CAR)", axis, code)
	}
}

/*****************************************************************************************************************/
