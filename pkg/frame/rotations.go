/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package frame

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/matrix"
)

/*****************************************************************************************************************/

const deg = math.Pi / 180.0

/*****************************************************************************************************************/

// j2000Obliquity is the mean obliquity of the ecliptic at J2000.0
// (IAU 1980), ε = 23°26'21.448".
const j2000Obliquity = 23.4392911 * deg

/*****************************************************************************************************************/

// Galactic pole and node constants (J2000), IAU 1958 system.
const (
	galacticPoleRA  = 192.859508 * deg
	galacticPoleDec = 27.128336 * deg
	galacticNodeL   = 122.932 * deg // galactic longitude of the celestial pole
)

/*****************************************************************************************************************/

// SuperGalactic pole and node constants (de Vaucouleurs et al. 1976),
// expressed in galactic coordinates.
const (
	superGalacticPoleL = 47.37 * deg
	superGalacticPoleB = 6.32 * deg
	superGalacticNodeL = 137.37 * deg
)

/*****************************************************************************************************************/

// eulerPoleMatrix returns the rotation M carrying a unit vector expressed
// in a secondary spherical system into the primary system, given the
// secondary pole's (longitude,latitude) in the primary frame and
// nodeLonRad, which is 90° minus the secondary-frame longitude of the
// ascending node of the secondary equator on the primary equator
// (180° − l_NCP for galactic; 90° for supergalactic, whose zero point is
// that node). This is the same ZYZ construction as the
// native/celestial pole rotation in pkg/projection, applied here to
// fixed, non-projective coordinate systems (galactic, supergalactic,
// ecliptic all reduce to a single pole+node pair).
func eulerPoleMatrix(poleLonRad, poleLatRad, nodeLonRad float64) matrix.Matrix3 {
	return matrix.Compose(
		matrix.RotationZ(-nodeLonRad),
		matrix.RotationY(poleLatRad-math.Pi/2),
		matrix.RotationZ(-poleLonRad),
	)
}

/*****************************************************************************************************************/

func galacticToEquatorialMatrix() matrix.Matrix3 {
	return eulerPoleMatrix(galacticPoleRA, galacticPoleDec, math.Pi-galacticNodeL)
}

/*****************************************************************************************************************/

func superGalacticToGalacticMatrix() matrix.Matrix3 {
	return eulerPoleMatrix(superGalacticPoleL, superGalacticPoleB, superGalacticNodeL-superGalacticPoleL)
}

/*****************************************************************************************************************/

// EclipticToEquatorialMatrix returns the rotation about the x-axis by the
// mean obliquity ε carrying an ecliptic vector to an equatorial one.
func EclipticToEquatorialMatrix(epsilonRad float64) matrix.Matrix3 {
	return matrix.RotationX(-epsilonRad)
}

/*****************************************************************************************************************/
