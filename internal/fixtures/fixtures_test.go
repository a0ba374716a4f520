/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package fixtures

/*****************************************************************************************************************/

import (
	"path/filepath"
	"testing"

	"github.com/observerly/skywcs/pkg/wcs"
)

/*****************************************************************************************************************/

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixtures.sqlite")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening fixture store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

/*****************************************************************************************************************/

func TestLoadSeededFixture(t *testing.T) {
	s := openTestStore(t)

	header, err := s.Load(FOCx38)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !header.Has("CRVAL1") {
		t.Fatal("expected loaded fixture to contain CRVAL1")
	}
}

/*****************************************************************************************************************/

func TestLoadUnknownFixtureIsError(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Load("does-not-exist"); err == nil {
		t.Fatal("expected an error loading an unseeded fixture")
	}
}

/*****************************************************************************************************************/

func TestSeededFixtureInitializesAWcs(t *testing.T) {
	s := openTestStore(t)

	header, err := s.Load(AIT1904_66)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := wcs.Init(header); err != nil {
		t.Fatalf("unexpected error initializing Wcs from fixture: %v", err)
	}
}

/*****************************************************************************************************************/
