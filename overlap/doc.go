// Package overlap implements noise-weighted inner products between
// frequency-domain strain signals and the maximizations built on them.
//
// Every product is configured by a frequency grid (deltaF, Nyquist), an
// integration band [fLow, fMax), and a one-sided PSD source, from which a
// table of spectral weights 1/S(f) is precomputed. Three conventions are
// provided: a real-valued and a complex-valued product over one-sided
// (Hermitian) signals with prefactor 4*deltaF, and a complex product over
// two-sided signals with prefactor 2*deltaF. The maximizers evaluate the
// weighted correlation at every relative time shift with a single inverse
// FFT and report the peak modulus, so the result is maximized over arrival
// time, and over phase for one-sided inputs or polarization angle for
// two-sided inputs.
//
// Weights may optionally be conditioned by inverse-spectrum truncation,
// which limits the effective duration of the whitening-filter impulse
// response before the weights are squared back into the frequency domain.
package overlap
