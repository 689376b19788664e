package strain

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Transformer packs fixed-length time series into frequency series. The FFT
// plan and scratch buffer are allocated once and reused across calls, so a
// Transformer is not safe for concurrent use.
type Transformer struct {
	n    int
	plan *algofft.Plan[complex128]
	buf  []complex128
}

// NewTransformer creates a transformer for series of n samples. The length
// must be even so that one- and two-sided spectra share a common grid.
func NewTransformer(n int) (*Transformer, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: transformer size %d", ErrLength, n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: transformer size %d", ErrOddLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("strain: create FFT plan: %w", err)
	}

	return &Transformer{
		n:    n,
		plan: plan,
		buf:  make([]complex128, n),
	}, nil
}

// Size returns the time-domain length the transformer accepts.
func (t *Transformer) Size() int { return t.n }

// Spectrum returns the one-sided spectrum of a real time series:
// H[k] = deltaT * sum_j h[j] exp(-2*pi*i*j*k/n) for k = 0..n/2,
// with deltaF = 1/(n*deltaT).
func (t *Transformer) Spectrum(ts *TimeSeries) (*FrequencySeries, error) {
	if len(ts.Data) != t.n {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrSize, len(ts.Data), t.n)
	}

	for i, v := range ts.Data {
		t.buf[i] = complex(v, 0)
	}

	if err := t.plan.Forward(t.buf, t.buf); err != nil {
		return nil, fmt.Errorf("strain: forward FFT: %w", err)
	}

	deltaF := 1 / (float64(t.n) * ts.DeltaT)
	out := NewFrequencySeries(ts.Epoch, 0, deltaF, t.n/2+1)

	scale := complex(ts.DeltaT, 0)
	for k := range out.Data {
		out.Data[k] = scale * t.buf[k]
	}

	return out, nil
}

// TwoSidedSpectrum returns the two-sided spectrum of a complex time series,
// packed monotonically from -fNyq to +fNyq-deltaF with DC at index n/2.
func (t *Transformer) TwoSidedSpectrum(ts *ComplexTimeSeries) (*FrequencySeries, error) {
	if len(ts.Data) != t.n {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrSize, len(ts.Data), t.n)
	}

	copy(t.buf, ts.Data)

	if err := t.plan.Forward(t.buf, t.buf); err != nil {
		return nil, fmt.Errorf("strain: forward FFT: %w", err)
	}

	deltaF := 1 / (float64(t.n) * ts.DeltaT)
	out := NewFrequencySeries(ts.Epoch, -float64(t.n/2)*deltaF, deltaF, t.n)

	// Rotate standard DFT order (DC first) into monotonic order.
	scale := complex(ts.DeltaT, 0)
	half := t.n / 2
	for m := range out.Data {
		out.Data[m] = scale * t.buf[(m+half)%t.n]
	}

	return out, nil
}

// Spectrum is a convenience wrapper creating a one-shot transformer.
func Spectrum(ts *TimeSeries) (*FrequencySeries, error) {
	t, err := NewTransformer(len(ts.Data))
	if err != nil {
		return nil, err
	}

	return t.Spectrum(ts)
}

// TwoSidedSpectrum is a convenience wrapper creating a one-shot transformer.
func TwoSidedSpectrum(ts *ComplexTimeSeries) (*FrequencySeries, error) {
	t, err := NewTransformer(len(ts.Data))
	if err != nil {
		return nil, err
	}

	return t.TwoSidedSpectrum(ts)
}
