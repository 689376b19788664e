package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicGaussianNoise generates zero-mean Gaussian noise with the
// given standard deviation and a fixed seed.
func DeterministicGaussianNoise(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// GaussianPulse generates a sine at freqHz under a Gaussian envelope
// centered at sample center with width sigma in samples. Useful as a
// burst-like test waveform with compact support in both domains.
func GaussianPulse(freqHz, sampleRate, amplitude float64, length, center int, sigma float64) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		d := (float64(i) - float64(center)) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d) * math.Sin(step*float64(i))
	}
	return out
}

// LinearChirp generates a sine sweeping linearly from f0 to f1 over the
// series, as a crude stand-in for an inspiral-like signal.
func LinearChirp(f0, f1, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}

	rate := (f1 - f0) / (float64(length) / sampleRate)
	for i := range out {
		t := float64(i) / sampleRate
		phase := 2 * math.Pi * (f0*t + 0.5*rate*t*t)
		out[i] = amplitude * math.Sin(phase)
	}
	return out
}
