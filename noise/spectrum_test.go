package noise

import (
	"errors"
	"math"
	"testing"

	"github.com/johnveitch/lalsuite/internal/testutil"
)

func TestSampleGrid(t *testing.T) {
	s, err := Sample(Flat(3), 2048, 0.125)
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Data) != 16385 {
		t.Fatalf("bins = %d, want 16385", len(s.Data))
	}
	testutil.RequireNearlyEqual(t, s.FrequencyAt(0), 0, 0)
	testutil.RequireNearlyEqual(t, s.Fmax(), 2048, 1e-9)
	for i, v := range s.Data {
		if v != 3 {
			t.Fatalf("bin %d = %v, want 3", i, v)
		}
	}
}

func TestSampleValidation(t *testing.T) {
	if _, err := Sample(nil, 100, 1); !errors.Is(err, ErrGrid) {
		t.Fatalf("nil model err = %v", err)
	}
	if _, err := Sample(Flat(1), 0, 1); !errors.Is(err, ErrGrid) {
		t.Fatalf("zero fNyq err = %v", err)
	}
	if _, err := Sample(Flat(1), 100, -1); !errors.Is(err, ErrGrid) {
		t.Fatalf("negative deltaF err = %v", err)
	}
}

func TestResampleLinearIsExact(t *testing.T) {
	// Piecewise-linear interpolation reproduces a linear density exactly.
	src := &Spectrum{DeltaF: 2, Data: make([]float64, 9)}
	for i := range src.Data {
		src.Data[i] = 5 + 3*src.FrequencyAt(i)
	}

	out, err := Resample(src, 0.5, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, out.DeltaF, 0.5, 0)
	if len(out.Data) != 32 {
		t.Fatalf("bins = %d, want 32", len(out.Data))
	}
	for i, v := range out.Data {
		want := 5 + 3*out.FrequencyAt(i)
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("bin %d (%g Hz) = %v, want %v", i, out.FrequencyAt(i), v, want)
		}
	}
}

func TestResampleOutOfRangeIsInf(t *testing.T) {
	src := &Spectrum{F0: 10, DeltaF: 1, Data: []float64{1, 1, 1, 1, 1}}

	out, err := Resample(src, 1, 5, 20)
	if err != nil {
		t.Fatal(err)
	}

	for i := range out.Data {
		f := out.FrequencyAt(i)
		inside := f >= 10 && f <= 14
		if inside && math.IsInf(out.Data[i], 1) {
			t.Fatalf("bin %g Hz unexpectedly Inf", f)
		}
		if !inside && !math.IsInf(out.Data[i], 1) {
			t.Fatalf("bin %g Hz = %v, want +Inf", f, out.Data[i])
		}
	}
}

func TestResampleZeroBecomesInf(t *testing.T) {
	src := &Spectrum{DeltaF: 1, Data: []float64{1, 0, 1}}

	out, err := Resample(src, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsInf(out.Data[1], 1) {
		t.Fatalf("zero bin resampled to %v, want +Inf", out.Data[1])
	}
}

func TestResampleValidation(t *testing.T) {
	if _, err := Resample(&Spectrum{DeltaF: 1, Data: []float64{1}}, 1, 0, 0); !errors.Is(err, ErrSpectrum) {
		t.Fatalf("short spectrum err = %v", err)
	}

	src := &Spectrum{F0: 5, DeltaF: 1, Data: []float64{1, 1, 1}}
	if _, err := Resample(src, 1, 6, 6); !errors.Is(err, ErrGrid) {
		t.Fatalf("empty band err = %v", err)
	}
}

func TestSpectrumCopy(t *testing.T) {
	s := &Spectrum{DeltaF: 1, Data: []float64{1, 2, 3}}
	cp := s.Copy()
	cp.Data[0] = -1
	if s.Data[0] != 1 {
		t.Fatal("copy aliases source")
	}
}
