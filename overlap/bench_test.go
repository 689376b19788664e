package overlap

import (
	"testing"

	"github.com/johnveitch/lalsuite/strain"
)

// benchSeries fills every interior bin of an n-bin operand with
// deterministic amplitudes on the default production grid.
func benchSeries(n int, f0, deltaF float64) *strain.FrequencySeries {
	h := strain.NewFrequencySeries(0, f0, deltaF, n)
	for k := 1; k < n-1; k++ {
		h.Data[k] = complex(1+1e-3*float64(k%97), 1e-3*float64(k%53)-0.025)
	}
	return h
}

func BenchmarkHermitianIP(b *testing.B) {
	p, err := NewHermitianProduct()
	if err != nil {
		b.Fatal(err)
	}
	h := benchSeries(p.Weights().Size(), 0, p.Weights().DeltaF())

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if _, err := p.IP(h, h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTimeMaximizerMax(b *testing.B) {
	m, err := NewTimeMaximizer()
	if err != nil {
		b.Fatal(err)
	}
	w := m.Weights()
	h := benchSeries(w.Size(), 0, w.DeltaF())

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if _, err := m.Max(h, h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPolarizationMaximizerMax(b *testing.B) {
	m, err := NewPolarizationMaximizer()
	if err != nil {
		b.Fatal(err)
	}
	w := m.Weights()
	h := benchSeries(w.TwoSidedSize(), -w.Nyquist(), w.DeltaF())

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if _, err := m.Max(h, h); err != nil {
			b.Fatal(err)
		}
	}
}
