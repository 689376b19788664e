package overlap

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/johnveitch/lalsuite/strain"
)

// Detail is the full output of a maximized overlap: the peak modulus, the
// complex overlap as a function of relative time shift, the peak sample
// index, and the phase of the peak sample.
type Detail struct {
	Max    float64
	Series *strain.ComplexTimeSeries
	Index  int
	Phase  float64
}

// TimeMaximizer computes the one-sided (Hermitian) inner product at every
// relative time shift with a single inverse FFT and maximizes the modulus
// over shift and phase. The FFT plan and scratch buffers are reused across
// calls, so a TimeMaximizer is not safe for concurrent use.
type TimeMaximizer struct {
	w         *Weights
	plan      *algofft.Plan[complex128]
	integrand []complex128
	ovlp      []complex128
}

// NewTimeMaximizer builds the weights and transform for the configured grid.
func NewTimeMaximizer(opts ...Option) (*TimeMaximizer, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	w, err := newWeights(cfg)
	if err != nil {
		return nil, err
	}

	n2 := w.TwoSidedSize()
	plan, err := algofft.NewPlan64(n2)
	if err != nil {
		return nil, fmt.Errorf("overlap: create maximizer FFT plan: %w", err)
	}

	return &TimeMaximizer{
		w:         w,
		plan:      plan,
		integrand: make([]complex128, n2),
		ovlp:      make([]complex128, n2),
	}, nil
}

// Weights returns the precomputed spectral weights.
func (m *TimeMaximizer) Weights() *Weights { return m.w }

// Max returns the overlap maximized over relative time shift and phase.
func (m *TimeMaximizer) Max(h1, h2 *strain.FrequencySeries) (float64, error) {
	if err := m.correlate(h1, h2); err != nil {
		return 0, err
	}

	peak, _ := peakBin(m.ovlp)
	return peak, nil
}

// MaxDetail returns the maximized overlap together with the full overlap
// series. The series is a fresh copy on every call.
func (m *TimeMaximizer) MaxDetail(h1, h2 *strain.FrequencySeries) (*Detail, error) {
	if err := m.correlate(h1, h2); err != nil {
		return nil, err
	}

	return m.detail(), nil
}

// IP returns the maximized overlap with zero imaginary part, satisfying
// the Product interface.
func (m *TimeMaximizer) IP(h1, h2 *strain.FrequencySeries) (complex128, error) {
	v, err := m.Max(h1, h2)
	if err != nil {
		return 0, err
	}
	return complex(v, 0), nil
}

// Norm returns the Hermitian norm sqrt(|4*deltaF*sum conj(h)*h*w|).
func (m *TimeMaximizer) Norm(h *strain.FrequencySeries) (float64, error) {
	if err := m.w.checkOneSided(h, h); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, wi := range m.w.oneSided {
		if wi == 0 {
			continue
		}
		c := h.Data[i]
		sum += (real(c)*real(c) + imag(c)*imag(c)) * wi
	}

	return math.Sqrt(4 * m.w.deltaF * sum), nil
}

// WrapTimes returns the relative time shift of every overlap sample:
// non-negative shifts first, then the wrapped negative shifts.
func (m *TimeMaximizer) WrapTimes() []float64 {
	return wrapTimes(len(m.ovlp), m.w.deltaF)
}

// correlate fills ovlp with the complex overlap at every time shift. The
// integrand carries the positive frequencies 4*conj(h1)*h2*w below Nyquist;
// negative frequencies and the Nyquist bin stay zero, which is what makes
// the modulus phase-maximized.
func (m *TimeMaximizer) correlate(h1, h2 *strain.FrequencySeries) error {
	if err := m.w.checkOneSided(h1, h2); err != nil {
		return err
	}

	n1 := m.w.Size()
	clear(m.integrand)
	for k := range n1 - 1 {
		wi := m.w.oneSided[k]
		if wi == 0 {
			continue
		}
		m.integrand[k] = 4 * cmplx.Conj(h1.Data[k]) * h2.Data[k] * complex(wi, 0)
	}

	if err := m.plan.Inverse(m.ovlp, m.integrand); err != nil {
		return fmt.Errorf("overlap: maximizer inverse FFT: %w", err)
	}

	// The normalized inverse carries 1/n; the physical series is
	// deltaF * sum, so rescale by n*deltaF.
	scale := complex(float64(len(m.ovlp))*m.w.deltaF, 0)
	for i := range m.ovlp {
		m.ovlp[i] *= scale
	}

	return nil
}

func (m *TimeMaximizer) detail() *Detail {
	peak, idx := peakBin(m.ovlp)

	n2 := len(m.ovlp)
	series := &strain.ComplexTimeSeries{
		DeltaT: 1 / (m.w.deltaF * float64(n2)),
		Data:   append([]complex128(nil), m.ovlp...),
	}

	return &Detail{
		Max:    peak,
		Series: series,
		Index:  idx,
		Phase:  cmplx.Phase(m.ovlp[idx]),
	}
}

// PolarizationMaximizer computes the two-sided inner product at every
// relative time shift and maximizes the modulus over shift and
// polarization angle. Operands are two-sided series in monotonic packing,
// typically spectra of h+ + i*hx. Not safe for concurrent use.
type PolarizationMaximizer struct {
	w         *Weights
	plan      *algofft.Plan[complex128]
	integrand []complex128
	ovlp      []complex128
}

// NewPolarizationMaximizer builds the weights and transform for the
// configured grid.
func NewPolarizationMaximizer(opts ...Option) (*PolarizationMaximizer, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	w, err := newWeights(cfg)
	if err != nil {
		return nil, err
	}

	n2 := w.TwoSidedSize()
	plan, err := algofft.NewPlan64(n2)
	if err != nil {
		return nil, fmt.Errorf("overlap: create maximizer FFT plan: %w", err)
	}

	return &PolarizationMaximizer{
		w:         w,
		plan:      plan,
		integrand: make([]complex128, n2),
		ovlp:      make([]complex128, n2),
	}, nil
}

// Weights returns the precomputed spectral weights.
func (m *PolarizationMaximizer) Weights() *Weights { return m.w }

// Max returns the overlap maximized over relative time shift and
// polarization angle.
func (m *PolarizationMaximizer) Max(h1, h2 *strain.FrequencySeries) (float64, error) {
	if err := m.correlate(h1, h2); err != nil {
		return 0, err
	}

	peak, _ := peakBin(m.ovlp)
	return peak, nil
}

// MaxDetail returns the maximized overlap together with the full overlap
// series. The series is a fresh copy on every call.
func (m *PolarizationMaximizer) MaxDetail(h1, h2 *strain.FrequencySeries) (*Detail, error) {
	if err := m.correlate(h1, h2); err != nil {
		return nil, err
	}

	peak, idx := peakBin(m.ovlp)
	n2 := len(m.ovlp)

	return &Detail{
		Max: peak,
		Series: &strain.ComplexTimeSeries{
			DeltaT: 1 / (m.w.deltaF * float64(n2)),
			Data:   append([]complex128(nil), m.ovlp...),
		},
		Index: idx,
		Phase: cmplx.Phase(m.ovlp[idx]),
	}, nil
}

// IP returns the maximized overlap with zero imaginary part, satisfying
// the Product interface.
func (m *PolarizationMaximizer) IP(h1, h2 *strain.FrequencySeries) (complex128, error) {
	v, err := m.Max(h1, h2)
	if err != nil {
		return 0, err
	}
	return complex(v, 0), nil
}

// Norm returns the two-sided norm sqrt(|2*deltaF*sum conj(h)*h*w|).
func (m *PolarizationMaximizer) Norm(h *strain.FrequencySeries) (float64, error) {
	if err := m.w.checkTwoSided(h, h); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, wi := range m.w.twoSided {
		if wi == 0 {
			continue
		}
		c := h.Data[i]
		sum += (real(c)*real(c) + imag(c)*imag(c)) * wi
	}

	return math.Sqrt(2 * m.w.deltaF * sum), nil
}

// WrapTimes returns the relative time shift of every overlap sample.
func (m *PolarizationMaximizer) WrapTimes() []float64 {
	return wrapTimes(len(m.ovlp), m.w.deltaF)
}

// correlate fills ovlp with the overlap at every time shift. The monotonic
// two-sided integrand 2*conj(h1)*h2*w is rotated into standard DFT order
// before the inverse transform.
func (m *PolarizationMaximizer) correlate(h1, h2 *strain.FrequencySeries) error {
	if err := m.w.checkTwoSided(h1, h2); err != nil {
		return err
	}

	n2 := len(m.integrand)
	half := n2 / 2
	clear(m.integrand)
	for i, wi := range m.w.twoSided {
		if wi == 0 {
			continue
		}
		m.integrand[(i+half)%n2] = 2 * cmplx.Conj(h1.Data[i]) * h2.Data[i] * complex(wi, 0)
	}

	if err := m.plan.Inverse(m.ovlp, m.integrand); err != nil {
		return fmt.Errorf("overlap: maximizer inverse FFT: %w", err)
	}

	scale := complex(float64(n2)*m.w.deltaF, 0)
	for i := range m.ovlp {
		m.ovlp[i] *= scale
	}

	return nil
}

// peakBin returns the largest modulus in data and its index.
func peakBin(data []complex128) (float64, int) {
	best := -1.0
	idx := 0
	for i, c := range data {
		p := real(c)*real(c) + imag(c)*imag(c)
		if p > best {
			best = p
			idx = i
		}
	}

	return math.Sqrt(best), idx
}

// wrapTimes maps overlap sample indices to relative time shifts: indices
// past the one-sided length wrap to negative shifts.
func wrapTimes(n2 int, deltaF float64) []float64 {
	dt := 1 / (deltaF * float64(n2))
	n1 := n2/2 + 1

	out := make([]float64, n2)
	for i := range out {
		out[i] = float64(i) * dt
		if i >= n1 {
			out[i] -= float64(n2) * dt
		}
	}

	return out
}
