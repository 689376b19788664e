package strain

import (
	"fmt"

	"github.com/johnveitch/lalsuite/window"
)

// TimeSeries is uniformly sampled real detector strain. Epoch is the GPS
// time of the first sample in seconds.
type TimeSeries struct {
	Epoch  float64
	DeltaT float64
	Data   []float64
}

// NewTimeSeries allocates a zeroed time series of n samples.
func NewTimeSeries(epoch, deltaT float64, n int) *TimeSeries {
	return &TimeSeries{Epoch: epoch, DeltaT: deltaT, Data: make([]float64, n)}
}

// SampleRate returns the sampling rate in Hz.
func (ts *TimeSeries) SampleRate() float64 {
	if ts.DeltaT == 0 {
		return 0
	}
	return 1 / ts.DeltaT
}

// Duration returns the span of the series in seconds.
func (ts *TimeSeries) Duration() float64 {
	return float64(len(ts.Data)) * ts.DeltaT
}

// Nyquist returns half the sampling rate in Hz.
func (ts *TimeSeries) Nyquist() float64 {
	return ts.SampleRate() / 2
}

// Copy returns a deep copy.
func (ts *TimeSeries) Copy() *TimeSeries {
	out := *ts
	out.Data = append([]float64(nil), ts.Data...)
	return &out
}

// Resize grows the series with trailing zeros or truncates it to n samples.
// The epoch is unchanged.
func (ts *TimeSeries) Resize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: resize to %d samples", ErrLength, n)
	}

	switch {
	case n <= len(ts.Data):
		ts.Data = ts.Data[:n]
	case n <= cap(ts.Data):
		old := len(ts.Data)
		ts.Data = ts.Data[:n]
		clear(ts.Data[old:])
	default:
		grown := make([]float64, n)
		copy(grown, ts.Data)
		ts.Data = grown
	}

	return nil
}

// Taper applies a symmetric Tukey window in place. Alpha is the total
// fraction of the series inside the cosine ramps.
func (ts *TimeSeries) Taper(alpha float64) error {
	if len(ts.Data) == 0 {
		return ErrEmpty
	}

	coeffs, err := window.Tukey(len(ts.Data), alpha)
	if err != nil {
		return err
	}

	return window.ApplyCoefficientsInPlace(ts.Data, coeffs)
}

// ComplexTimeSeries is uniformly sampled complex strain, typically
// h+ + i*sgn*hx from the two polarizations.
type ComplexTimeSeries struct {
	Epoch  float64
	DeltaT float64
	Data   []complex128
}

// NewComplexTimeSeries allocates a zeroed complex time series of n samples.
func NewComplexTimeSeries(epoch, deltaT float64, n int) *ComplexTimeSeries {
	return &ComplexTimeSeries{Epoch: epoch, DeltaT: deltaT, Data: make([]complex128, n)}
}

// SampleRate returns the sampling rate in Hz.
func (ts *ComplexTimeSeries) SampleRate() float64 {
	if ts.DeltaT == 0 {
		return 0
	}
	return 1 / ts.DeltaT
}

// Duration returns the span of the series in seconds.
func (ts *ComplexTimeSeries) Duration() float64 {
	return float64(len(ts.Data)) * ts.DeltaT
}

// Nyquist returns half the sampling rate in Hz.
func (ts *ComplexTimeSeries) Nyquist() float64 {
	return ts.SampleRate() / 2
}

// Copy returns a deep copy.
func (ts *ComplexTimeSeries) Copy() *ComplexTimeSeries {
	out := *ts
	out.Data = append([]complex128(nil), ts.Data...)
	return &out
}

// Resize grows the series with trailing zeros or truncates it to n samples.
func (ts *ComplexTimeSeries) Resize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: resize to %d samples", ErrLength, n)
	}

	switch {
	case n <= len(ts.Data):
		ts.Data = ts.Data[:n]
	case n <= cap(ts.Data):
		old := len(ts.Data)
		ts.Data = ts.Data[:n]
		clear(ts.Data[old:])
	default:
		grown := make([]complex128, n)
		copy(grown, ts.Data)
		ts.Data = grown
	}

	return nil
}

// FrequencySeries holds complex spectrum bins. F0 is the frequency of bin 0:
// zero for one-sided series, -Nyquist for two-sided series.
type FrequencySeries struct {
	Epoch  float64
	F0     float64
	DeltaF float64
	Data   []complex128
}

// NewFrequencySeries allocates a zeroed frequency series of n bins.
func NewFrequencySeries(epoch, f0, deltaF float64, n int) *FrequencySeries {
	return &FrequencySeries{Epoch: epoch, F0: f0, DeltaF: deltaF, Data: make([]complex128, n)}
}

// FrequencyAt returns the frequency of bin i in Hz.
func (fs *FrequencySeries) FrequencyAt(i int) float64 {
	return fs.F0 + float64(i)*fs.DeltaF
}

// Copy returns a deep copy.
func (fs *FrequencySeries) Copy() *FrequencySeries {
	out := *fs
	out.Data = append([]complex128(nil), fs.Data...)
	return &out
}

// Scale multiplies every bin by s in place and returns the series.
func (fs *FrequencySeries) Scale(s complex128) *FrequencySeries {
	for i := range fs.Data {
		fs.Data[i] *= s
	}
	return fs
}
