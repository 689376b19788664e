package cbc

import "fmt"

// Taper selects which edges of a generated waveform get ramped to zero.
type Taper int

const (
	TaperNone Taper = iota
	TaperStart
	TaperEnd
	TaperStartEnd
)

// String returns the taper name.
func (t Taper) String() string {
	switch t {
	case TaperNone:
		return "none"
	case TaperStart:
		return "start"
	case TaperEnd:
		return "end"
	case TaperStartEnd:
		return "startend"
	default:
		return fmt.Sprintf("taper(%d)", int(t))
	}
}

// Params carries every argument a waveform generator needs, plus the
// orientation angles that project the polarizations onto a detector.
// Masses are in kg, distance in m, frequencies in Hz, angles in radians.
//
// Theta and Phi are spherical coordinates in a frame centered on an
// overhead detector; Psi is the polarization angle. A zero DeltaF leaves
// spectra padded to the next power of two instead of a fixed duration.
type Params struct {
	PhiRef float64
	DeltaT float64

	M1, M2        float64
	S1X, S1Y, S1Z float64
	S2X, S2Y, S2Z float64

	FMin, FRef, FMax float64
	Dist             float64
	Incl             float64
	Lambda1, Lambda2 float64

	Theta, Phi, Psi float64
	TRef            float64
	Detector        string

	DeltaF float64
	Taper  Taper
}

// Default returns the reference configuration: two 10 solar-mass
// components at 1 Mpc, sampled at 4096 Hz from 40 Hz, seen overhead by H1.
func Default() Params {
	return Params{
		DeltaT:   1.0 / 4096,
		M1:       10 * SolarMass,
		M2:       10 * SolarMass,
		FMin:     40,
		Dist:     1e6 * Parsec,
		Detector: "H1",
	}
}

// Copy returns an independent copy.
func (p Params) Copy() Params { return p }

// String returns a compact one-line summary.
func (p Params) String() string {
	mc, eta := ChirpMassEta(p.M1, p.M2)
	return fmt.Sprintf(
		"m1=%.3g m2=%.3g Msun (mc=%.3g eta=%.4f) d=%.3g Mpc incl=%.2f fmin=%g Hz deltaT=%.3g taper=%s",
		p.M1/SolarMass, p.M2/SolarMass, mc/SolarMass, eta,
		p.Dist/(1e6*Parsec), p.Incl, p.FMin, p.DeltaT, p.Taper)
}
