package overlap

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/johnveitch/lalsuite/internal/testutil"
	"github.com/johnveitch/lalsuite/noise"
)

func flatOpts(extra ...Option) []Option {
	opts := []Option{
		WithDeltaF(1),
		WithNyquist(16),
		WithBand(2, 10),
		WithModel(noise.Flat(4)),
	}
	return append(opts, extra...)
}

func TestWeightsBand(t *testing.T) {
	p, err := NewRealProduct(flatOpts()...)
	if err != nil {
		t.Fatal(err)
	}

	w := p.Weights()
	if w.Size() != 17 || w.TwoSidedSize() != 32 {
		t.Fatalf("sizes = %d/%d, want 17/32", w.Size(), w.TwoSidedSize())
	}

	fLow, fMax := w.Band()
	if fLow != 2 || fMax != 10 {
		t.Fatalf("band = [%g, %g)", fLow, fMax)
	}
	if w.Nyquist() != 16 || w.DeltaF() != 1 {
		t.Fatalf("grid = %g/%g", w.Nyquist(), w.DeltaF())
	}

	one := w.OneSided()
	for i, v := range one {
		want := 0.0
		if i >= 2 && i < 10 {
			want = 0.25
		}
		if v != want {
			t.Fatalf("weight[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestWeightsTwoSidedMirror(t *testing.T) {
	p, err := NewComplexProduct(flatOpts()...)
	if err != nil {
		t.Fatal(err)
	}

	w := p.Weights()
	one := w.OneSided()
	two := w.TwoSided()

	n1 := w.Size()
	// DC sits at index n1-1; each positive-frequency bin mirrors its
	// negative partner, and the -Nyquist bin carries the Nyquist weight.
	if two[n1-1] != one[0] {
		t.Fatalf("DC weight = %v, want %v", two[n1-1], one[0])
	}
	if two[0] != one[n1-1] {
		t.Fatalf("-Nyquist weight = %v, want %v", two[0], one[n1-1])
	}
	for i := 1; i < n1-1; i++ {
		if two[n1-1+i] != one[i] || two[n1-1-i] != one[i] {
			t.Fatalf("mirror broken at offset %d: %v %v vs %v",
				i, two[n1-1-i], two[n1-1+i], one[i])
		}
	}
}

func TestWeightsAccessorsCopy(t *testing.T) {
	p, err := NewRealProduct(flatOpts()...)
	if err != nil {
		t.Fatal(err)
	}

	w := p.Weights()
	one := w.OneSided()
	one[5] = 99
	if w.OneSided()[5] == 99 {
		t.Fatal("OneSided returns internal storage")
	}

	two := w.TwoSided()
	two[16] = 99
	if w.TwoSided()[16] == 99 {
		t.Fatal("TwoSided returns internal storage")
	}
}

func TestWeightsSampledSpectrum(t *testing.T) {
	spec, err := noise.Sample(noise.Flat(4), 16, 1)
	if err != nil {
		t.Fatal(err)
	}

	fromModel, err := NewRealProduct(flatOpts()...)
	if err != nil {
		t.Fatal(err)
	}

	fromSpec, err := NewRealProduct(
		WithDeltaF(1), WithNyquist(16), WithBand(2, 10), WithSpectrum(spec))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t,
		fromSpec.Weights().OneSided(), fromModel.Weights().OneSided(), 0)
}

func TestWeightsUnusableBins(t *testing.T) {
	spec, err := noise.Sample(noise.Flat(2), 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	spec.Data[4] = 0
	spec.Data[5] = math.Inf(1)
	spec.Data[6] = math.NaN()

	p, err := NewRealProduct(
		WithDeltaF(1), WithNyquist(16), WithBand(2, 10), WithSpectrum(spec))
	if err != nil {
		t.Fatal(err)
	}

	one := p.Weights().OneSided()
	for _, i := range []int{4, 5, 6} {
		if one[i] != 0 {
			t.Fatalf("unusable bin %d weight = %v, want 0", i, one[i])
		}
	}
	if one[3] != 0.5 || one[7] != 0.5 {
		t.Fatalf("usable bins = %v %v, want 0.5", one[3], one[7])
	}
}

func TestWeightsShortSpectrum(t *testing.T) {
	// Bins beyond the sampled extent get zero weight rather than an error.
	spec := &noise.Spectrum{DeltaF: 1, Data: []float64{2, 2, 2, 2, 2, 2}}

	p, err := NewRealProduct(
		WithDeltaF(1), WithNyquist(16), WithBand(2, 10), WithSpectrum(spec))
	if err != nil {
		t.Fatal(err)
	}

	one := p.Weights().OneSided()
	for i := 2; i < 6; i++ {
		if one[i] != 0.5 {
			t.Fatalf("weight[%d] = %v, want 0.5", i, one[i])
		}
	}
	for i := 6; i < 10; i++ {
		if one[i] != 0 {
			t.Fatalf("weight[%d] = %v, want 0 beyond extent", i, one[i])
		}
	}
}

func TestWeightsConfigErrors(t *testing.T) {
	spec, _ := noise.Sample(noise.Flat(1), 16, 1)
	offGrid := &noise.Spectrum{F0: 0, DeltaF: 1.001, Data: make([]float64, 17)}
	offDC := &noise.Spectrum{F0: 1, DeltaF: 1, Data: make([]float64, 17)}

	cases := []struct {
		name string
		opts []Option
	}{
		{"zero deltaF", []Option{WithDeltaF(0)}},
		{"negative nyquist", []Option{WithNyquist(-1)}},
		{"negative fLow", []Option{WithBand(-1, 10)}},
		{"fMax beyond nyquist", flatOpts(WithBand(2, 17))},
		{"empty band", flatOpts(WithBand(10, 10))},
		{"negative truncation", flatOpts(WithTruncation(-1))},
		{"two PSD sources", flatOpts(WithSpectrum(spec))},
		{"spectrum off grid", []Option{WithDeltaF(1), WithNyquist(16), WithBand(2, 10), WithSpectrum(offGrid)}},
		{"spectrum not at DC", []Option{WithDeltaF(1), WithNyquist(16), WithBand(2, 10), WithSpectrum(offDC)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRealProduct(tc.opts...); !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestTruncationTooLong(t *testing.T) {
	// deltaT = 1/32 s, so half the 32-sample grid is 0.5 s.
	_, err := NewHermitianProduct(flatOpts(WithTruncation(0.5))...)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}

	if _, err := NewHermitianProduct(flatOpts(WithTruncation(0.4))...); err != nil {
		t.Fatalf("tSpec below the limit rejected: %v", err)
	}
}

// directTruncatedWeights recomputes inverse-spectrum truncation with naive
// DFT loops as an independent reference.
func directTruncatedWeights(oneSided []float64, nSpec int) []float64 {
	n1 := len(oneSided)
	n2 := 2 * (n1 - 1)

	spec := make([]complex128, n2)
	for k := 1; k < n1-1; k++ {
		r := math.Sqrt(oneSided[k])
		spec[k] = complex(r, 0)
		spec[n2-k] = complex(r, 0)
	}

	td := make([]complex128, n2)
	for j := range td {
		var s complex128
		for k := range spec {
			ang := 2 * math.Pi * float64(j) * float64(k) / float64(n2)
			s += spec[k] * cmplx.Exp(complex(0, ang))
		}
		td[j] = s / complex(float64(n2), 0)
	}

	for i := nSpec / 2; i < n2-nSpec/2; i++ {
		td[i] = 0
	}

	out := make([]float64, n1)
	for k := 1; k < n1-1; k++ {
		var s complex128
		for j := range td {
			ang := -2 * math.Pi * float64(j) * float64(k) / float64(n2)
			s += td[j] * cmplx.Exp(complex(0, ang))
		}
		out[k] = real(s)*real(s) + imag(s)*imag(s)
	}

	return out
}

func TestTruncationMatchesDirectDFT(t *testing.T) {
	opts := []Option{
		WithDeltaF(1),
		WithNyquist(16),
		WithBand(0, 0),
		WithModel(noise.Flat(1)),
	}

	plain, err := NewHermitianProduct(opts...)
	if err != nil {
		t.Fatal(err)
	}

	truncated, err := NewHermitianProduct(append(opts, WithTruncation(0.25))...)
	if err != nil {
		t.Fatal(err)
	}

	// tSpec = 0.25 s at deltaT = 1/32 s retains 8 samples.
	want := directTruncatedWeights(plain.Weights().OneSided(), 8)
	got := truncated.Weights().OneSided()

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

	if got[0] != 0 || got[16] != 0 {
		t.Fatalf("DC/Nyquist weights = %v/%v, want 0", got[0], got[16])
	}

	// Truncation smears but must keep weights non-negative and finite.
	testutil.RequireFinite(t, got)
	for i, v := range got {
		if v < 0 {
			t.Fatalf("weight[%d] = %v negative", i, v)
		}
	}
}

func TestTruncatedTwoSidedRepacked(t *testing.T) {
	p, err := NewComplexProduct(flatOpts(WithTruncation(0.25))...)
	if err != nil {
		t.Fatal(err)
	}

	w := p.Weights()
	one := w.OneSided()
	two := w.TwoSided()
	for i := 1; i < w.Size()-1; i++ {
		if two[w.Size()-1+i] != one[i] {
			t.Fatalf("two-sided not repacked after truncation at %d", i)
		}
	}
}
