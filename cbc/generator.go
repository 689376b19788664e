package cbc

import (
	"fmt"
	"math"

	"github.com/johnveitch/lalsuite/overlap"
	"github.com/johnveitch/lalsuite/strain"
)

// Generator produces the two time-domain polarizations of a waveform.
// Implementations return fresh series the caller owns, sampled at
// p.DeltaT, both the same length, with epochs relative to coalescence.
type Generator interface {
	Polarizations(p Params) (hp, hc *strain.TimeSeries, err error)
}

// FrequencyDomainGenerator is implemented by generators that can produce
// one-sided polarization spectra directly on the grid p.DeltaF.
// StrainSpectrum prefers this path when it is available.
type FrequencyDomainGenerator interface {
	PolarizationSpectra(p Params) (hpTilde, hcTilde *strain.FrequencySeries, err error)
}

// Strain generates the single-detector strain Fp*h+ + Fc*hx for the
// orientation angles in p, tapers the requested edges, and zero-pads to
// 1/DeltaF seconds when DeltaF is set.
func Strain(gen Generator, p Params) (*strain.TimeSeries, error) {
	if p.DeltaT <= 0 {
		return nil, fmt.Errorf("%w: deltaT %g", ErrParams, p.DeltaT)
	}

	hp, hc, err := gen.Polarizations(p)
	if err != nil {
		return nil, err
	}
	if err := checkPolarizations(len(hp.Data), len(hc.Data)); err != nil {
		return nil, err
	}

	fp := FPlus(p.Theta, p.Phi, p.Psi)
	fc := FCross(p.Theta, p.Phi, p.Psi)

	ht := strain.NewTimeSeries(hp.Epoch, p.DeltaT, len(hp.Data))
	for i := range ht.Data {
		ht.Data[i] = fp*hp.Data[i] + fc*hc.Data[i]
	}

	applyTaper(ht.Data, p.Taper)

	if p.DeltaF > 0 {
		n := durationSamples(p)
		if n < len(ht.Data) {
			return nil, fmt.Errorf("%w: waveform of %d samples exceeds the 1/deltaF window of %d",
				ErrParams, len(ht.Data), n)
		}
		if err := ht.Resize(n); err != nil {
			return nil, err
		}
	}

	return ht, nil
}

// StrainSpectrum returns the one-sided detector-strain spectrum. When the
// generator works in the frequency domain and p.DeltaF is set, the spectra
// come straight from it; otherwise the time-domain strain is padded to a
// power of two (or to 1/DeltaF seconds) and transformed. tr may be nil, or
// a Transformer sized for the padded series to share plans across calls.
func StrainSpectrum(gen Generator, p Params, tr *strain.Transformer) (*strain.FrequencySeries, error) {
	if fd, ok := gen.(FrequencyDomainGenerator); ok {
		return fdStrainSpectrum(fd, p)
	}

	ht, err := Strain(gen, p)
	if err != nil {
		return nil, err
	}
	if p.DeltaF == 0 {
		if err := ht.Resize(strain.NextPow2(len(ht.Data))); err != nil {
			return nil, err
		}
	}

	if tr == nil {
		return strain.Spectrum(ht)
	}
	return tr.Spectrum(ht)
}

// ComplexStrain returns h+ + i*sign*hx with the requested edges of each
// polarization tapered; sign must be +1 or -1. The epoch is shifted to
// the reference time.
func ComplexStrain(gen Generator, p Params, sign int) (*strain.ComplexTimeSeries, error) {
	if sign != 1 && sign != -1 {
		return nil, fmt.Errorf("%w: sign %d, want +1 or -1", ErrParams, sign)
	}
	if p.DeltaT <= 0 {
		return nil, fmt.Errorf("%w: deltaT %g", ErrParams, p.DeltaT)
	}

	hp, hc, err := gen.Polarizations(p)
	if err != nil {
		return nil, err
	}
	if err := checkPolarizations(len(hp.Data), len(hc.Data)); err != nil {
		return nil, err
	}

	applyTaper(hp.Data, p.Taper)
	applyTaper(hc.Data, p.Taper)

	ht := strain.NewComplexTimeSeries(hp.Epoch+p.TRef, p.DeltaT, len(hp.Data))
	s := float64(sign)
	for i := range ht.Data {
		ht.Data[i] = complex(hp.Data[i], s*hc.Data[i])
	}

	if p.DeltaF > 0 {
		n := durationSamples(p)
		if n < len(ht.Data) {
			return nil, fmt.Errorf("%w: waveform of %d samples exceeds the 1/deltaF window of %d",
				ErrParams, len(ht.Data), n)
		}
		if err := ht.Resize(n); err != nil {
			return nil, err
		}
	}

	return ht, nil
}

// ComplexStrainSpectrum returns the two-sided spectrum of the complex
// strain in monotonic packing, the operand form of the two-sided product
// and the polarization maximizer.
func ComplexStrainSpectrum(gen Generator, p Params, sign int, tr *strain.Transformer) (*strain.FrequencySeries, error) {
	ht, err := ComplexStrain(gen, p, sign)
	if err != nil {
		return nil, err
	}
	if p.DeltaF == 0 {
		if err := ht.Resize(strain.NextPow2(len(ht.Data))); err != nil {
			return nil, err
		}
	}

	if tr == nil {
		return strain.TwoSidedSpectrum(ht)
	}
	return tr.TwoSidedSpectrum(ht)
}

// NormalizedSpectrum returns the one-sided spectrum scaled to unit norm
// under prod.
func NormalizedSpectrum(gen Generator, p Params, prod overlap.Product, tr *strain.Transformer) (*strain.FrequencySeries, error) {
	hf, err := StrainSpectrum(gen, p, tr)
	if err != nil {
		return nil, err
	}
	return normalize(hf, prod)
}

// NormalizedComplexSpectrum returns the two-sided spectrum scaled to unit
// norm under prod.
func NormalizedComplexSpectrum(gen Generator, p Params, sign int, prod overlap.Product, tr *strain.Transformer) (*strain.FrequencySeries, error) {
	hf, err := ComplexStrainSpectrum(gen, p, sign, tr)
	if err != nil {
		return nil, err
	}
	return normalize(hf, prod)
}

// FindDeltaF generates the waveform and returns the frequency spacing its
// power-of-two padded length implies: the spacing a product grid needs to
// hold this waveform without wrapping.
func FindDeltaF(gen Generator, p Params) (float64, error) {
	ht, err := Strain(gen, p)
	if err != nil {
		return 0, err
	}
	return 1 / (float64(strain.NextPow2(len(ht.Data))) * p.DeltaT), nil
}

func fdStrainSpectrum(gen FrequencyDomainGenerator, p Params) (*strain.FrequencySeries, error) {
	if p.DeltaF <= 0 {
		return nil, fmt.Errorf("%w: frequency-domain generation", ErrDeltaF)
	}
	if p.DeltaT <= 0 {
		return nil, fmt.Errorf("%w: deltaT %g", ErrParams, p.DeltaT)
	}

	hp, hc, err := gen.PolarizationSpectra(p)
	if err != nil {
		return nil, err
	}
	if err := checkPolarizations(len(hp.Data), len(hc.Data)); err != nil {
		return nil, err
	}

	fp := FPlus(p.Theta, p.Phi, p.Psi)
	fc := FCross(p.Theta, p.Phi, p.Psi)

	out := hp.Copy()
	for i := range out.Data {
		out.Data[i] = complex(fp, 0)*hp.Data[i] + complex(fc, 0)*hc.Data[i]
	}

	// Generators may stop filling bins early (e.g. at ISCO); products
	// expect the full grid through Nyquist.
	resizeFrequencySeries(out, durationSamples(p)/2+1)
	return out, nil
}

func checkPolarizations(np, nc int) error {
	if np != nc {
		return fmt.Errorf("%w: polarization lengths %d and %d", ErrGenerator, np, nc)
	}
	if np == 0 {
		return fmt.Errorf("%w: empty polarizations", ErrGenerator)
	}
	return nil
}

// durationSamples is the sample count of a 1/DeltaF-second window.
func durationSamples(p Params) int {
	return int(math.Round(1 / (p.DeltaF * p.DeltaT)))
}

func resizeFrequencySeries(fs *strain.FrequencySeries, n int) {
	switch {
	case len(fs.Data) > n:
		fs.Data = fs.Data[:n]
	case len(fs.Data) < n:
		fs.Data = append(fs.Data, make([]complex128, n-len(fs.Data))...)
	}
}

// applyTaper ramps the selected edges with the rising and falling lobes
// of a Hann window spanning 5% of the series.
func applyTaper(data []float64, mode Taper) {
	if mode == TaperNone || len(data) == 0 {
		return
	}

	ramp := len(data) / 20
	if ramp < 1 {
		ramp = 1
	}

	for i := range ramp {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(ramp)))
		if mode == TaperStart || mode == TaperStartEnd {
			data[i] *= w
		}
		if mode == TaperEnd || mode == TaperStartEnd {
			data[len(data)-1-i] *= w
		}
	}
}

func normalize(hf *strain.FrequencySeries, prod overlap.Product) (*strain.FrequencySeries, error) {
	n, err := prod.Norm(hf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: zero norm in band", ErrGenerator)
	}
	return hf.Scale(complex(1/n, 0)), nil
}
