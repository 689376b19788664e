package cbc

import (
	"fmt"
	"math"
)

// Mass conversions follow the m1 >= m2 convention throughout.

// ChirpMass returns the chirp mass of the component masses.
func ChirpMass(m1, m2 float64) float64 {
	return math.Pow(m1*m2, 3.0/5) * math.Pow(m1+m2, -1.0/5)
}

// SymmetricMassRatio returns eta = m1*m2/(m1+m2)^2, at most 1/4.
func SymmetricMassRatio(m1, m2 float64) float64 {
	return m1 * m2 / ((m1 + m2) * (m1 + m2))
}

// ChirpMassEta returns both chirp mass and symmetric mass ratio.
func ChirpMassEta(m1, m2 float64) (mc, eta float64) {
	return ChirpMass(m1, m2), SymmetricMassRatio(m1, m2)
}

// Mass1 returns the larger component mass for the given chirp mass and
// symmetric mass ratio. eta must lie in (0, 1/4].
func Mass1(mc, eta float64) float64 {
	return 0.5 * mc * math.Pow(eta, -3.0/5) * (1 + math.Sqrt(1-4*eta))
}

// Mass2 returns the smaller component mass for the given chirp mass and
// symmetric mass ratio. eta must lie in (0, 1/4].
func Mass2(mc, eta float64) float64 {
	return 0.5 * mc * math.Pow(eta, -3.0/5) * (1 - math.Sqrt(1-4*eta))
}

// ComponentMasses returns both component masses, m1 >= m2.
func ComponentMasses(mc, eta float64) (m1, m2 float64) {
	return Mass1(mc, eta), Mass2(mc, eta)
}

// SanitizeEta pushes a symmetric mass ratio that is within tol of the
// physical range (0, 1/4] back inside it. Values further out are an error.
func SanitizeEta(eta, tol float64) (float64, error) {
	const max = 0.25
	switch {
	case eta < 0 || eta > max+tol:
		return 0, fmt.Errorf("%w: eta %g outside (0, 0.25]", ErrParams, eta)
	case eta < tol:
		return tol, nil
	case eta > max:
		return max, nil
	default:
		return eta, nil
	}
}
