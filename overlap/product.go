package overlap

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/johnveitch/lalsuite/strain"
)

// Product is a noise-weighted inner product between frequency-domain
// signals on a fixed grid.
type Product interface {
	// IP returns the weighted inner product of h1 and h2.
	IP(h1, h2 *strain.FrequencySeries) (complex128, error)
	// Norm returns sqrt(|IP(h, h)|).
	Norm(h *strain.FrequencySeries) (float64, error)
}

// Kind selects a product convention.
type Kind int

const (
	// KindReal is the real-valued product over one-sided signals.
	KindReal Kind = iota
	// KindHermitianComplex is the complex product over one-sided signals.
	KindHermitianComplex
	// KindTwoSidedComplex is the complex product over two-sided signals.
	KindTwoSidedComplex
	// KindTimeMaximized maximizes the one-sided product over time and phase.
	KindTimeMaximized
	// KindPolarizationMaximized maximizes the two-sided product over time
	// and polarization angle.
	KindPolarizationMaximized
)

// New constructs the product for the given kind.
func New(kind Kind, opts ...Option) (Product, error) {
	switch kind {
	case KindReal:
		return NewRealProduct(opts...)
	case KindHermitianComplex:
		return NewHermitianProduct(opts...)
	case KindTwoSidedComplex:
		return NewComplexProduct(opts...)
	case KindTimeMaximized:
		return NewTimeMaximizer(opts...)
	case KindPolarizationMaximized:
		return NewPolarizationMaximizer(opts...)
	default:
		return nil, fmt.Errorf("%w: product kind %d", ErrUnsupported, kind)
	}
}

// RealProduct is the real-valued inner product 4*deltaF*Re sum conj(h1)*h2*w
// over one-sided signals.
type RealProduct struct {
	w *Weights
}

// NewRealProduct builds the weights and returns the product.
func NewRealProduct(opts ...Option) (*RealProduct, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	w, err := newWeights(cfg)
	if err != nil {
		return nil, err
	}

	return &RealProduct{w: w}, nil
}

// Weights returns the precomputed spectral weights.
func (p *RealProduct) Weights() *Weights { return p.w }

// IP returns the inner product. The imaginary part is always zero.
func (p *RealProduct) IP(h1, h2 *strain.FrequencySeries) (complex128, error) {
	if err := p.w.checkOneSided(h1, h2); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, wi := range p.w.oneSided {
		if wi == 0 {
			continue
		}
		a, b := h1.Data[i], h2.Data[i]
		sum += (real(a)*real(b) + imag(a)*imag(b)) * wi
	}

	return complex(4*p.w.deltaF*sum, 0), nil
}

// Norm returns sqrt(|IP(h, h)|).
func (p *RealProduct) Norm(h *strain.FrequencySeries) (float64, error) {
	return productNorm(p, h)
}

// HermitianProduct is the complex inner product 4*deltaF*sum conj(h1)*h2*w
// over one-sided signals.
type HermitianProduct struct {
	w *Weights
}

// NewHermitianProduct builds the weights and returns the product.
func NewHermitianProduct(opts ...Option) (*HermitianProduct, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	w, err := newWeights(cfg)
	if err != nil {
		return nil, err
	}

	return &HermitianProduct{w: w}, nil
}

// Weights returns the precomputed spectral weights.
func (p *HermitianProduct) Weights() *Weights { return p.w }

// IP returns the inner product.
func (p *HermitianProduct) IP(h1, h2 *strain.FrequencySeries) (complex128, error) {
	if err := p.w.checkOneSided(h1, h2); err != nil {
		return 0, err
	}

	sum := complex(0, 0)
	for i, wi := range p.w.oneSided {
		if wi == 0 {
			continue
		}
		sum += cmplx.Conj(h1.Data[i]) * h2.Data[i] * complex(wi, 0)
	}

	return complex(4*p.w.deltaF, 0) * sum, nil
}

// Norm returns sqrt(|IP(h, h)|).
func (p *HermitianProduct) Norm(h *strain.FrequencySeries) (float64, error) {
	return productNorm(p, h)
}

// ComplexProduct is the complex inner product 2*deltaF*sum conj(h1)*h2*w
// over two-sided signals.
type ComplexProduct struct {
	w *Weights
}

// NewComplexProduct builds the weights and returns the product.
func NewComplexProduct(opts ...Option) (*ComplexProduct, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	w, err := newWeights(cfg)
	if err != nil {
		return nil, err
	}

	return &ComplexProduct{w: w}, nil
}

// Weights returns the precomputed spectral weights.
func (p *ComplexProduct) Weights() *Weights { return p.w }

// IP returns the inner product.
func (p *ComplexProduct) IP(h1, h2 *strain.FrequencySeries) (complex128, error) {
	if err := p.w.checkTwoSided(h1, h2); err != nil {
		return 0, err
	}

	sum := complex(0, 0)
	for i, wi := range p.w.twoSided {
		if wi == 0 {
			continue
		}
		sum += cmplx.Conj(h1.Data[i]) * h2.Data[i] * complex(wi, 0)
	}

	return complex(2*p.w.deltaF, 0) * sum, nil
}

// Norm returns sqrt(|IP(h, h)|).
func (p *ComplexProduct) Norm(h *strain.FrequencySeries) (float64, error) {
	return productNorm(p, h)
}

func productNorm(p Product, h *strain.FrequencySeries) (float64, error) {
	v, err := p.IP(h, h)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(cmplx.Abs(v)), nil
}

// SNR returns the matched-filter signal-to-noise ratio of two-sided data:
// the norm of the data under the complex product. The grid is derived from
// the series itself (fNyq = deltaF*len/2); options may further constrain
// the band or select the PSD source.
func SNR(data *strain.FrequencySeries, opts ...Option) (float64, error) {
	if len(data.Data) == 0 || data.DeltaF <= 0 {
		return 0, fmt.Errorf("%w: empty or unspaced data", ErrSeries)
	}

	derived := []Option{
		WithDeltaF(data.DeltaF),
		WithNyquist(data.DeltaF * float64(len(data.Data)) / 2),
	}

	p, err := NewComplexProduct(append(append([]Option{}, opts...), derived...)...)
	if err != nil {
		return 0, err
	}

	return p.Norm(data)
}
