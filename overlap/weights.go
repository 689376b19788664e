package overlap

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/johnveitch/lalsuite/strain"
)

// Weights holds the precomputed spectral weighting 1/S(f) of a product.
// The one-sided table runs DC..Nyquist; the two-sided table is packed
// monotonically from -fNyq to +fNyq-deltaF with DC at the center.
type Weights struct {
	fLow, fMax   float64
	fNyq, deltaF float64
	minIdx       int
	maxIdx       int

	oneSided []float64
	twoSided []float64
}

func newWeights(cfg config) (*Weights, error) {
	n1 := int(cfg.fNyq/cfg.deltaF) + 1
	if n1 < 3 {
		return nil, fmt.Errorf("%w: grid of %d bins too small", ErrConfig, n1)
	}

	w := &Weights{
		fLow:     cfg.fLow,
		fMax:     cfg.fMax,
		fNyq:     cfg.fNyq,
		deltaF:   cfg.deltaF,
		minIdx:   int(math.Round(cfg.fLow / cfg.deltaF)),
		maxIdx:   int(math.Round(cfg.fMax / cfg.deltaF)),
		oneSided: make([]float64, n1),
	}
	if w.maxIdx > n1 {
		w.maxIdx = n1
	}

	if cfg.spectrum != nil {
		s := cfg.spectrum
		if s.F0 != 0 {
			return nil, fmt.Errorf("%w: sampled PSD starts at %g Hz, want DC", ErrConfig, s.F0)
		}
		if math.Abs(s.DeltaF-cfg.deltaF) > TolDeltaF {
			return nil, fmt.Errorf("%w: sampled PSD deltaF %g, want %g", ErrConfig, s.DeltaF, cfg.deltaF)
		}

		for i := w.minIdx; i < w.maxIdx && i < len(s.Data); i++ {
			w.oneSided[i] = invert(s.Data[i])
		}
	} else {
		for i := w.minIdx; i < w.maxIdx; i++ {
			w.oneSided[i] = invert(cfg.model(float64(i) * cfg.deltaF))
		}
	}

	w.twoSided = make([]float64, 2*(n1-1))
	w.packTwoSided()

	if cfg.tSpec > 0 {
		if err := w.truncateInverseSpectrum(cfg.tSpec); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// invert maps a PSD value to a weight. Unmeasured, infinite, or non-positive
// noise gives zero weight so the bin drops out of every integral.
func invert(s float64) float64 {
	if s <= 0 || math.IsInf(s, 1) || math.IsNaN(s) {
		return 0
	}
	return 1 / s
}

// packTwoSided mirrors the one-sided weights into monotonic two-sided
// packing: negative frequencies first, DC at index n1-1, then positive
// frequencies up to fNyq-deltaF.
func (w *Weights) packTwoSided() {
	n1 := len(w.oneSided)
	for i, v := range w.oneSided {
		w.twoSided[n1-1-i] = v
	}
	copy(w.twoSided[n1-1:], w.oneSided[:n1-1])
}

// truncateInverseSpectrum limits the duration of the whitening-filter
// impulse response sqrt(w) to tSpec seconds: transform the Hermitian
// root-weight spectrum to the time domain, zero all samples outside
// tSpec around lag zero, transform back, and square.
func (w *Weights) truncateInverseSpectrum(tSpec float64) error {
	n1 := len(w.oneSided)
	n2 := len(w.twoSided)

	deltaT := 1 / (2 * w.fNyq)
	nSpec := int(tSpec / deltaT)
	if nSpec >= n2/2 {
		return fmt.Errorf("%w: truncation %g s spans %d samples, grid holds %d",
			ErrConfig, tSpec, nSpec, n2/2)
	}

	plan, err := algofft.NewPlan64(n2)
	if err != nil {
		return fmt.Errorf("overlap: create truncation FFT plan: %w", err)
	}

	// Hermitian spectrum of sqrt(w), with DC and Nyquist removed.
	buf := make([]complex128, n2)
	for k := 1; k < n1-1; k++ {
		r := math.Sqrt(w.oneSided[k])
		buf[k] = complex(r, 0)
		buf[n2-k] = complex(r, 0)
	}

	if err := plan.Inverse(buf, buf); err != nil {
		return fmt.Errorf("overlap: truncation inverse FFT: %w", err)
	}

	// The retained response is cyclically centered on lag zero: the first
	// and last nSpec/2 samples survive.
	for i := nSpec / 2; i < n2-nSpec/2; i++ {
		buf[i] = 0
	}

	if err := plan.Forward(buf, buf); err != nil {
		return fmt.Errorf("overlap: truncation forward FFT: %w", err)
	}

	w.oneSided[0] = 0
	w.oneSided[n1-1] = 0
	for k := 1; k < n1-1; k++ {
		c := buf[k]
		w.oneSided[k] = real(c)*real(c) + imag(c)*imag(c)
	}

	w.packTwoSided()
	return nil
}

// Band returns the integration band [fLow, fMax).
func (w *Weights) Band() (fLow, fMax float64) { return w.fLow, w.fMax }

// Nyquist returns the Nyquist frequency of the grid.
func (w *Weights) Nyquist() float64 { return w.fNyq }

// DeltaF returns the frequency spacing of the grid.
func (w *Weights) DeltaF() float64 { return w.deltaF }

// Size returns the number of one-sided bins (DC through Nyquist).
func (w *Weights) Size() int { return len(w.oneSided) }

// TwoSidedSize returns the number of two-sided bins.
func (w *Weights) TwoSidedSize() int { return len(w.twoSided) }

// OneSided returns a copy of the one-sided weight table.
func (w *Weights) OneSided() []float64 {
	return append([]float64(nil), w.oneSided...)
}

// TwoSided returns a copy of the two-sided weight table.
func (w *Weights) TwoSided() []float64 {
	return append([]float64(nil), w.twoSided...)
}

// checkOneSided validates operands against the one-sided grid.
func (w *Weights) checkOneSided(h1, h2 *strain.FrequencySeries) error {
	n1 := len(w.oneSided)
	if len(h1.Data) != n1 || len(h2.Data) != n1 {
		return fmt.Errorf("%w: %d and %d bins, want %d one-sided",
			ErrSeries, len(h1.Data), len(h2.Data), n1)
	}

	return w.checkDeltaF(h1, h2)
}

// checkTwoSided validates operands against the two-sided grid.
func (w *Weights) checkTwoSided(h1, h2 *strain.FrequencySeries) error {
	n2 := len(w.twoSided)
	if len(h1.Data) != n2 || len(h2.Data) != n2 {
		return fmt.Errorf("%w: %d and %d bins, want %d two-sided",
			ErrSeries, len(h1.Data), len(h2.Data), n2)
	}

	return w.checkDeltaF(h1, h2)
}

func (w *Weights) checkDeltaF(h1, h2 *strain.FrequencySeries) error {
	if math.Abs(h1.DeltaF-h2.DeltaF) > TolDeltaF {
		return fmt.Errorf("%w: operand deltaF %g vs %g", ErrSeries, h1.DeltaF, h2.DeltaF)
	}
	if math.Abs(h1.DeltaF-w.deltaF) > TolDeltaF {
		return fmt.Errorf("%w: operand deltaF %g, weights %g", ErrSeries, h1.DeltaF, w.deltaF)
	}
	return nil
}
