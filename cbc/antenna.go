package cbc

import "math"

// FPlus is the plus-polarization antenna response of a right-angle
// interferometer, with (theta, phi) spherical coordinates measured from
// directly overhead and psi the polarization angle.
func FPlus(theta, phi, psi float64) float64 {
	ct := math.Cos(theta)
	return 0.5*(1+ct*ct)*math.Cos(2*phi)*math.Cos(2*psi) -
		ct*math.Sin(2*phi)*math.Sin(2*psi)
}

// FCross is the cross-polarization antenna response.
func FCross(theta, phi, psi float64) float64 {
	ct := math.Cos(theta)
	return 0.5*(1+ct*ct)*math.Cos(2*phi)*math.Sin(2*psi) +
		ct*math.Sin(2*phi)*math.Cos(2*psi)
}
