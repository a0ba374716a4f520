/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package frame

/*****************************************************************************************************************/

import "github.com/observerly/skywcs/pkg/matrix"

/*****************************************************************************************************************/

// eTermsVectorB1950 is the elliptic terms of aberration vector (the "A"
// vector of the Explanatory Supplement), baked into FK4 mean places at
// equinox B1950.0, expressed as a small rectangular offset on the unit
// sphere.
var eTermsVectorB1950 = matrix.Vector3{-1.62557e-6, -0.31919e-6, -0.13843e-6}

/*****************************************************************************************************************/

// addETerms reintroduces the E-terms of aberration into a mean FK4_NO_E
// place, producing the FK4 apparent-free place used by historical FK4
// catalogues (spec.md §4.7).
func addETerms(v matrix.Vector3) matrix.Vector3 {
	a := eTermsVectorB1950
	w := v.Add(a.Sub(v.Scale(a.Dot(v))))
	return w.Normalized()
}

/*****************************************************************************************************************/

// removeETerms is the (first-order) inverse of addETerms.
func removeETerms(v matrix.Vector3) matrix.Vector3 {
	a := eTermsVectorB1950
	w := v.Sub(a).Add(v.Scale(a.Dot(v)))
	return w.Normalized()
}

/*****************************************************************************************************************/
