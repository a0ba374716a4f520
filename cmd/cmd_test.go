/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

/*****************************************************************************************************************/

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. The CLI subcommands print their results with
// fmt.Printf rather than cmd.Print, so this is the only way to observe
// their stdout output from a test.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("unexpected error creating pipe: %v", err)
	}

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("unexpected error reading captured stdout: %v", err)
	}
	return buf.String()
}

/*****************************************************************************************************************/

func TestProjectCommandPrintsRaDec(t *testing.T) {
	path := writeTanHeaderFile(t)

	var runErr error
	out := captureStdout(t, func() {
		rootCommand.SetArgs([]string{"project", path, "512", "512"})
		runErr = rootCommand.Execute()
	})

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if !strings.Contains(out, "(ra,dec)=") {
		t.Errorf("output = %q; want it to contain (ra,dec)=", out)
	}
}

/*****************************************************************************************************************/

func TestUnprojectCommandPrintsXY(t *testing.T) {
	path := writeTanHeaderFile(t)

	var runErr error
	out := captureStdout(t, func() {
		rootCommand.SetArgs([]string{"unproject", path, "182.63442", "39.404782"})
		runErr = rootCommand.Execute()
	})

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if !strings.Contains(out, "(x,y)=") {
		t.Errorf("output = %q; want it to contain (x,y)=", out)
	}
}

/*****************************************************************************************************************/

func TestConvertCommandPrintsConvertedCoordinate(t *testing.T) {
	var runErr error
	out := captureStdout(t, func() {
		rootCommand.SetArgs([]string{"convert", "182.63442,39.404782", "EQUATORIAL(ICRS())", "GALACTIC"})
		runErr = rootCommand.Execute()
	})

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if len(strings.Fields(out)) != 2 {
		t.Errorf("output = %q; want two space-separated fields", out)
	}
}

/*****************************************************************************************************************/

func TestConvertCommandRejectsBadCrsGrammar(t *testing.T) {
	var runErr error
	captureStdout(t, func() {
		rootCommand.SetArgs([]string{"convert", "1,2", "NOT_A_CRS", "GALACTIC"})
		runErr = rootCommand.Execute()
	})

	if runErr == nil {
		t.Fatal("expected an error for an unrecognized CRS")
	}
}

/*****************************************************************************************************************/

func TestGuiCommandWritesAPNGFile(t *testing.T) {
	path := writeTanHeaderFile(t)
	output := filepath.Join(t.TempDir(), "grid.png")

	var runErr error
	captureStdout(t, func() {
		rootCommand.SetArgs([]string{"gui", path, "--output", output})
		runErr = rootCommand.Execute()
	})

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty PNG file")
	}
}

/*****************************************************************************************************************/
