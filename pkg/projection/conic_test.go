/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestConicRoundTrips(t *testing.T) {
	pose := Pose{}

	cases := []struct {
		code string
		x, y float64
	}{
		{"COD", 5, 40},
		{"COE", 5, 40},
		{"COO", 5, 40},
		{"COP", 5, 40},
	}

	for _, c := range cases {
		p, err := New(c.code, []float64{20, 50}, pose)
		if err != nil {
			t.Fatalf("New(%s): unexpected error: %v", c.code, err)
		}
		roundTrip(t, p, c.x, c.y)
	}
}

/*****************************************************************************************************************/

func TestConicDefaultNativePoseIsMidParallel(t *testing.T) {
	p, err := New("COD", []float64{20, 50}, Pose{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, theta0 := p.DefaultNativePose()
	want := (20.0 + 50.0) / 2 * (3.14159265358979 / 180)
	if theta0 < want-1e-6 || theta0 > want+1e-6 {
		t.Errorf("DefaultNativePose theta0 = %v; want ~%v", theta0, want)
	}
}

/*****************************************************************************************************************/

func TestCOPRejectsEquatorialStandardParallel(t *testing.T) {
	_, err := newCOP([]float64{0}, Pose{})
	if err == nil {
		t.Fatal("expected an error for a standard parallel at the equator")
	}
}

/*****************************************************************************************************************/
