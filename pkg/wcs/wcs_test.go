/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package wcs

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/skywcs/pkg/frame"
	"github.com/observerly/skywcs/pkg/keywords"
)

/*****************************************************************************************************************/

func tanHeader() keywords.MapKeywordSource {
	return keywords.MapKeywordSource{
		"NAXIS":  2,
		"NAXIS1": 1024,
		"NAXIS2": 1024,
		"CTYPE1": "RA---TAN",
		"CTYPE2": "DEC--TAN",
		"CRPIX1": 512.0,
		"CRPIX2": 512.0,
		"CRVAL1": 182.63442,
		"CRVAL2": 39.404782,
		"CD1_1":  -5.0e-5,
		"CD1_2":  0.0,
		"CD2_1":  0.0,
		"CD2_2":  5.0e-5,
	}
}

/*****************************************************************************************************************/

func aitHeader() keywords.MapKeywordSource {
	return keywords.MapKeywordSource{
		"NAXIS":  2,
		"NAXIS1": 192,
		"NAXIS2": 192,
		"CTYPE1": "RA---AIT",
		"CTYPE2": "DEC--AIT",
		"CRPIX1": 96.0,
		"CRPIX2": 96.0,
		"CRVAL1": 280.0,
		"CRVAL2": -66.0,
		"CD1_1":  -0.08,
		"CD1_2":  0.0,
		"CD2_1":  0.0,
		"CD2_2":  0.08,
	}
}

/*****************************************************************************************************************/

func TestInitRejectsUnrecognizedAxisPair(t *testing.T) {
	src := tanHeader()
	src["CTYPE1"] = "FOO--TAN"
	src["CTYPE2"] = "BAR--TAN"

	if _, err := Init(src); err == nil {
		t.Fatal("expected an error for an unrecognized celestial axis pair")
	}
}

/*****************************************************************************************************************/

func TestInitResolvesEquatorialCrs(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Crs.Kind != frame.Equatorial {
		t.Errorf("Crs.Kind = %v; want Equatorial", w.Crs.Kind)
	}
}

/*****************************************************************************************************************/

func TestCenterRecoversReferencePoint(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lon, lat, err := w.Center()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(lon-182.63442) > 1e-6 || math.Abs(lat-39.404782) > 1e-6 {
		t.Errorf("Center() = (%v, %v); want (182.63442, 39.404782)", lon, lat)
	}
}

/*****************************************************************************************************************/

func TestPixelToSkyToPixelRoundTrip(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := [][2]float64{{1, 1}, {1, 1024}, {1024, 1024}, {1024, 1}, {512, 512}}

	for _, c := range cases {
		lon, lat, err := w.PixelToSky(c[0], c[1])
		if err != nil {
			t.Fatalf("PixelToSky(%v) unexpected error: %v", c, err)
		}

		i, j, err := w.SkyToPixel(lon, lat)
		if err != nil {
			t.Fatalf("SkyToPixel unexpected error: %v", err)
		}

		if math.Abs(i-c[0]) > 1e-5 || math.Abs(j-c[1]) > 1e-5 {
			t.Errorf("round trip for pixel %v = (%v, %v)", c, i, j)
		}
	}
}

/*****************************************************************************************************************/

func TestSkyToPixelToSkyRoundTrip(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lon0, lat0 := 182.6, 39.40

	i, j, err := w.SkyToPixel(lon0, lat0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lon, lat, err := w.PixelToSky(i, j)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(lon-lon0) > 1e-6 || math.Abs(lat-lat0) > 1e-6 {
		t.Errorf("round trip = (%v, %v); want (%v, %v)", lon, lat, lon0, lat0)
	}
}

/*****************************************************************************************************************/

func TestPixelToSkyProducesNormalizedLongitude(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range [][2]float64{{1, 1}, {1024, 1024}, {512, 512}} {
		lon, _, err := w.PixelToSky(c[0], c[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lon < 0 || lon >= 360 {
			t.Errorf("PixelToSky(%v) lon = %v; not in [0,360)", c, lon)
		}
	}
}

/*****************************************************************************************************************/

func TestAITProjectionRoundTripsAtCorners(t *testing.T) {
	w, err := Init(aitHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range [][2]float64{{1, 1}, {192, 192}, {1, 192}, {192, 1}} {
		lon, lat, err := w.PixelToSky(c[0], c[1])
		if err != nil {
			t.Fatalf("PixelToSky(%v) unexpected error: %v", c, err)
		}

		i, j, err := w.SkyToPixel(lon, lat)
		if err != nil {
			t.Fatalf("SkyToPixel unexpected error: %v", err)
		}

		if math.Abs(i-c[0]) > 1e-4 || math.Abs(j-c[1]) > 1e-4 {
			t.Errorf("AIT round trip for pixel %v = (%v, %v)", c, i, j)
		}
	}
}

/*****************************************************************************************************************/

func TestConvertToRoutesThroughCrs(t *testing.T) {
	w, err := Init(tanHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lon, lat, err := w.PixelToSky(512, 512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	galLon, galLat, err := w.ConvertTo(frame.Crs{Kind: frame.Galactic}, lon, lat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backLon, backLat, err := (frame.Crs{Kind: frame.Galactic}).ConvertTo(w.Crs, galLon, galLat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(backLon-lon) > 1e-9 || math.Abs(backLat-lat) > 1e-9 {
		t.Errorf("galactic round trip = (%v, %v); want (%v, %v)", backLon, backLat, lon, lat)
	}
}

/*****************************************************************************************************************/
