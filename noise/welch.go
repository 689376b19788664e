package noise

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/johnveitch/lalsuite/strain"
	"github.com/johnveitch/lalsuite/window"
)

// Estimator computes one-sided PSD estimates from strain data using
// Welch's method: windowed overlapping segments, periodogram averaging,
// density scaling by the window's squared sum.
type Estimator struct {
	segment  int
	overlap  float64
	winType  window.Type
	winAlpha float64

	coeffs []float64
	sumSq  float64
	fft    *fourier.FFT
	buf    []float64
	bins   []complex128
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithSegmentLength sets the samples per segment (the FFT length).
func WithSegmentLength(n int) EstimatorOption {
	return func(e *Estimator) { e.segment = n }
}

// WithOverlap sets the fractional overlap between consecutive segments.
func WithOverlap(frac float64) EstimatorOption {
	return func(e *Estimator) { e.overlap = frac }
}

// WithWindow selects the segment window and its parameter (Tukey alpha or
// Kaiser beta; ignored by fixed windows).
func WithWindow(t window.Type, alpha float64) EstimatorOption {
	return func(e *Estimator) {
		e.winType = t
		e.winAlpha = alpha
	}
}

// NewEstimator creates a Welch estimator. Defaults: 1024-sample segments,
// 50% overlap, Hann window.
func NewEstimator(opts ...EstimatorOption) (*Estimator, error) {
	e := &Estimator{
		segment:  1024,
		overlap:  0.5,
		winType:  window.TypeHann,
		winAlpha: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.segment < 2 {
		return nil, fmt.Errorf("%w: segment length %d", ErrSegment, e.segment)
	}
	if e.overlap < 0 || e.overlap >= 1 {
		return nil, fmt.Errorf("%w: overlap %g", ErrSegment, e.overlap)
	}

	e.coeffs = window.Generate(e.winType, e.segment, window.WithPeriodic(), window.WithAlpha(e.winAlpha))

	sumSq, err := window.SumSquares(e.coeffs)
	if err != nil {
		return nil, err
	}
	if sumSq == 0 {
		return nil, fmt.Errorf("%w: window has zero energy", ErrSegment)
	}

	e.sumSq = sumSq
	e.fft = fourier.NewFFT(e.segment)
	e.buf = make([]float64, e.segment)
	e.bins = make([]complex128, e.segment/2+1)

	return e, nil
}

// SegmentLength returns the configured samples per segment.
func (e *Estimator) SegmentLength() int { return e.segment }

// EstimateSpectrum estimates the one-sided PSD of ts. The series must span
// at least one segment; trailing samples that do not fill a segment are
// dropped. Each segment has its mean removed before windowing.
func (e *Estimator) EstimateSpectrum(ts *strain.TimeSeries) (*Spectrum, error) {
	n := e.segment
	if len(ts.Data) < n {
		return nil, fmt.Errorf("%w: %d samples, segment %d", ErrTooShort, len(ts.Data), n)
	}
	if ts.DeltaT <= 0 {
		return nil, fmt.Errorf("%w: deltaT %g", ErrGrid, ts.DeltaT)
	}

	step := n - int(float64(n)*e.overlap)
	if step < 1 {
		step = 1
	}

	acc := make([]float64, n/2+1)
	count := 0

	for start := 0; start+n <= len(ts.Data); start += step {
		seg := ts.Data[start : start+n]

		mean := 0.0
		for _, v := range seg {
			mean += v
		}
		mean /= float64(n)

		for i := range e.buf {
			e.buf[i] = e.coeffs[i] * (seg[i] - mean)
		}

		e.fft.Coefficients(e.bins, e.buf)

		for k, c := range e.bins {
			acc[k] += real(c)*real(c) + imag(c)*imag(c)
		}

		count++
	}

	fs := ts.SampleRate()
	scale := 1 / (e.sumSq * fs * float64(count))

	out := &Spectrum{Epoch: ts.Epoch, DeltaF: fs / float64(n), Data: acc}
	for k := range out.Data {
		out.Data[k] *= scale
		if k > 0 && k < len(out.Data)-1 {
			out.Data[k] *= 2
		}
	}

	return out, nil
}
