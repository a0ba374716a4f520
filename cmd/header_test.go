/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

/*****************************************************************************************************************/

func writeTanHeaderFile(t *testing.T) string {
	t.Helper()

	header := map[string]interface{}{
		"NAXIS": 2, "NAXIS1": 1024, "NAXIS2": 1024,
		"CTYPE1": "RA---TAN", "CTYPE2": "DEC--TAN",
		"CRPIX1": 512.0, "CRPIX2": 512.0,
		"CRVAL1": 182.63442, "CRVAL2": 39.404782,
		"CD1_1": -5.0e-5, "CD1_2": 0.0, "CD2_1": 0.0, "CD2_2": 5.0e-5,
	}

	raw, err := json.Marshal(header)
	if err != nil {
		t.Fatalf("unexpected error marshalling header: %v", err)
	}

	path := filepath.Join(t.TempDir(), "header.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("unexpected error writing header file: %v", err)
	}
	return path
}

/*****************************************************************************************************************/

func TestLoadHeaderFromJSONFile(t *testing.T) {
	path := writeTanHeaderFile(t)

	header, err := loadHeader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !header.Has("CRVAL1") {
		t.Fatal("expected loaded header to contain CRVAL1")
	}
}

/*****************************************************************************************************************/

func TestLoadHeaderFromNamedFixture(t *testing.T) {
	header, err := loadHeader("foCx38")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !header.Has("CRVAL1") {
		t.Fatal("expected loaded fixture header to contain CRVAL1")
	}
}

/*****************************************************************************************************************/

func TestLoadHeaderMissingFileIsError(t *testing.T) {
	if _, err := loadHeader(filepath.Join(t.TempDir(), "does-not-exist.json")); err == nil {
		t.Fatal("expected an error for a missing header file")
	}
}

/*****************************************************************************************************************/
