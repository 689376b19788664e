// Package noise provides one-sided power spectral density sources for
// noise-weighted inner products: analytic detector models, sampled spectra,
// grid resampling, and Welch-method estimation from strain data.
//
// All densities are one-sided, in strain^2/Hz. Bins that are unmeasured or
// unusable are set to +Inf, which downstream weighting turns into zero
// weight rather than an error.
package noise
