/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package frame

/*****************************************************************************************************************/

import "github.com/observerly/skywcs/pkg/matrix"

/*****************************************************************************************************************/

// Frame bias angles between the dynamical mean equator/equinox of J2000.0
// (FK5) and the ICRS (Kaplan 2005 / IERS conventions), in arcseconds.
const (
	frameBiasXi0  = -0.0166170
	frameBiasEta0 = -0.0068192
	frameBiasDA0  = -0.01460
)

/*****************************************************************************************************************/

// icrsToFK5J2000Matrix returns the small frame-bias rotation carrying an
// ICRS vector to the FK5/J2000.0 dynamical mean-equatorial frame.
func icrsToFK5J2000Matrix() matrix.Matrix3 {
	return matrix.Compose(
		matrix.RotationX(frameBiasEta0*arcsecToRad),
		matrix.RotationY(frameBiasXi0*arcsecToRad),
		matrix.RotationZ(-frameBiasDA0*arcsecToRad),
	)
}

/*****************************************************************************************************************/

// fk4B1950ToFK5J2000Matrix is the fixed (no proper motion) rotation
// carrying an FK4 mean place at equinox B1950.0 to an FK5 mean place at
// equinox J2000.0 (Aoki et al. 1983 / Standish 1982).
func fk4B1950ToFK5J2000Matrix() matrix.Matrix3 {
	return matrix.Matrix3{
		{0.9999256782, 0.0111820610, 0.0048579479},
		{-0.0111820610, 0.9999374784, -0.0000271474},
		{-0.0048579479, -0.0000271474, 0.9999881997},
	}
}

/*****************************************************************************************************************/
