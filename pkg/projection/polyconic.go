/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/skywcs/pkg/angle"
)

/*****************************************************************************************************************/

// pcoKernel is the American polyconic projection: every parallel is
// developed from its own tangent cone, so neither meridians nor
// parallels are simple curves and the inverse has no closed form.
type pcoKernel struct{ pose Pose }

/*****************************************************************************************************************/

func newPCO(pose Pose) Projection { return &pcoKernel{pose: pose} }

/*****************************************************************************************************************/

func (k *pcoKernel) Code() string { return "PCO" }

/*****************************************************************************************************************/

func (k *pcoKernel) forward(phi, theta float64) (float64, float64) {
	if theta == 0 {
		return angle.RAD2DEG * phi, 0
	}

	cotTheta := math.Cos(theta) / math.Sin(theta)
	e := phi * math.Sin(theta)

	x := angle.RAD2DEG * cotTheta * math.Sin(e)
	y := angle.RAD2DEG * (theta + cotTheta*(1-math.Cos(e)))

	return x, y
}

/*****************************************************************************************************************/

func (k *pcoKernel) Project(xDeg, yDeg float64) (phiRad, thetaRad float64, err error) {
	if xDeg == 0 {
		return 0, angle.Radians(yDeg), nil
	}

	phiRad, thetaRad, err = newton2D("PCO", k.forward, [2]float64{xDeg, yDeg}, [2]float64{angle.Radians(xDeg), angle.Radians(yDeg)})
	if err != nil {
		return 0, 0, err
	}

	return phiRad, thetaRad, nil
}

/*****************************************************************************************************************/

func (k *pcoKernel) ProjectInverse(phiRad, thetaRad float64) (xDeg, yDeg float64, err error) {
	xDeg, yDeg = k.forward(phiRad, thetaRad)
	return xDeg, yDeg, nil
}

/*****************************************************************************************************************/

func (k *pcoKernel) Inside(phiRad, thetaRad float64) bool {
	return thetaRad >= -math.Pi/2 && thetaRad <= math.Pi/2
}

/*****************************************************************************************************************/

func (k *pcoKernel) DefaultNativePose() (float64, float64) { return DefaultNativePose("PCO") }

/*****************************************************************************************************************/

func (k *pcoKernel) Parameters() []float64 { return nil }

/*****************************************************************************************************************/
