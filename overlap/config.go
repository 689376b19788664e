package overlap

import (
	"fmt"

	"github.com/johnveitch/lalsuite/noise"
)

// TolDeltaF is the absolute tolerance, in Hz, within which two frequency
// spacings are considered the same grid.
const TolDeltaF = 1e-6

// Option configures a product or maximizer.
type Option func(*config)

type config struct {
	fLow, fMax   float64
	fNyq, deltaF float64
	model        noise.Func
	spectrum     *noise.Spectrum
	tSpec        float64
}

func defaultConfig() config {
	return config{
		fLow:   10,
		fNyq:   2048,
		deltaF: 1.0 / 8,
	}
}

// WithBand sets the integration band [fLow, fMax). fMax = 0 extends the
// band to the Nyquist frequency.
func WithBand(fLow, fMax float64) Option {
	return func(c *config) {
		c.fLow = fLow
		c.fMax = fMax
	}
}

// WithNyquist sets the Nyquist frequency of the grid in Hz.
func WithNyquist(fNyq float64) Option {
	return func(c *config) {
		c.fNyq = fNyq
	}
}

// WithDeltaF sets the frequency spacing of the grid in Hz.
func WithDeltaF(deltaF float64) Option {
	return func(c *config) {
		c.deltaF = deltaF
	}
}

// WithModel selects an analytic PSD model as the noise source.
func WithModel(m noise.Func) Option {
	return func(c *config) {
		c.model = m
	}
}

// WithSpectrum selects a sampled PSD as the noise source. The spectrum
// must start at DC and share the configured frequency spacing.
func WithSpectrum(s *noise.Spectrum) Option {
	return func(c *config) {
		c.spectrum = s
	}
}

// WithTruncation enables inverse-spectrum truncation, limiting the
// whitening-filter impulse response to tSpec seconds.
func WithTruncation(tSpec float64) Option {
	return func(c *config) {
		c.tSpec = tSpec
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.deltaF <= 0 {
		return cfg, fmt.Errorf("%w: deltaF %g", ErrConfig, cfg.deltaF)
	}
	if cfg.fNyq <= 0 {
		return cfg, fmt.Errorf("%w: fNyq %g", ErrConfig, cfg.fNyq)
	}
	if cfg.fLow < 0 {
		return cfg, fmt.Errorf("%w: fLow %g", ErrConfig, cfg.fLow)
	}
	if cfg.fMax == 0 {
		cfg.fMax = cfg.fNyq
	}
	if cfg.fMax > cfg.fNyq {
		return cfg, fmt.Errorf("%w: fMax %g exceeds Nyquist %g", ErrConfig, cfg.fMax, cfg.fNyq)
	}
	if cfg.fLow >= cfg.fMax {
		return cfg, fmt.Errorf("%w: empty band [%g, %g)", ErrConfig, cfg.fLow, cfg.fMax)
	}
	if cfg.tSpec < 0 {
		return cfg, fmt.Errorf("%w: truncation time %g", ErrConfig, cfg.tSpec)
	}

	if cfg.model != nil && cfg.spectrum != nil {
		return cfg, fmt.Errorf("%w: both analytic model and sampled spectrum set", ErrConfig)
	}
	if cfg.model == nil && cfg.spectrum == nil {
		cfg.model = noise.AdvLIGOZeroDetHighPower
	}

	return cfg, nil
}
