package noise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Resample linearly interpolates a sampled PSD onto a new grid running from
// fMin (inclusive) to fMax (exclusive) with the given spacing. Zero or
// negative arguments keep the corresponding property of the source grid.
// Bins outside the source extent, and bins interpolating to zero, are set
// to +Inf.
func Resample(s *Spectrum, deltaF, fMin, fMax float64) (*Spectrum, error) {
	if len(s.Data) < 2 {
		return nil, ErrSpectrum
	}

	if deltaF <= 0 {
		deltaF = s.DeltaF
	}
	if fMin <= 0 {
		fMin = s.F0
	}
	if fMax <= 0 {
		fMax = s.Fmax()
	}
	if fMax <= fMin {
		return nil, fmt.Errorf("%w: fMin=%g fMax=%g", ErrGrid, fMin, fMax)
	}

	xs := make([]float64, len(s.Data))
	for i := range xs {
		xs[i] = s.FrequencyAt(i)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, s.Data); err != nil {
		return nil, fmt.Errorf("noise: fit interpolant: %w", err)
	}

	n := int(math.Ceil((fMax - fMin - deltaF*1e-9) / deltaF))
	out := &Spectrum{Epoch: s.Epoch, F0: fMin, DeltaF: deltaF, Data: make([]float64, n)}

	lo, hi := xs[0], xs[len(xs)-1]
	for i := range out.Data {
		f := fMin + float64(i)*deltaF

		if f < lo || f > hi {
			out.Data[i] = math.Inf(1)
			continue
		}

		v := pl.Predict(f)
		if v == 0 {
			v = math.Inf(1)
		}
		out.Data[i] = v
	}

	return out, nil
}
