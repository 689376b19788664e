package cbc

import (
	"fmt"
	"math"
)

// EstimateDuration returns the Newtonian chirp time in seconds from FMin
// to coalescence for the masses in p. It is an upper-frequency-unbounded
// estimate, useful for sizing buffers before generating a waveform.
func EstimateDuration(p Params) (float64, error) {
	if p.M1 <= 0 || p.M2 <= 0 {
		return 0, fmt.Errorf("%w: masses %g, %g kg", ErrParams, p.M1, p.M2)
	}
	if p.FMin <= 0 {
		return 0, fmt.Errorf("%w: fMin %g Hz", ErrParams, p.FMin)
	}

	mSec := (p.M1 + p.M2) * NewtonG / (SpeedOfLight * SpeedOfLight * SpeedOfLight)
	fM := p.FMin * mSec
	eta := SymmetricMassRatio(p.M1, p.M2)

	return mSec * 5 / 256 / eta * math.Pow(math.Pi*fM, -8.0/3), nil
}
