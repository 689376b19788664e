package noise

import "fmt"

// Spectrum is a sampled one-sided PSD on a uniform grid starting at F0.
type Spectrum struct {
	Epoch  float64
	F0     float64
	DeltaF float64
	Data   []float64
}

// Sample evaluates a model on the grid [0, fNyq] with the given spacing,
// producing int(fNyq/deltaF)+1 bins.
func Sample(model Func, fNyq, deltaF float64) (*Spectrum, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrGrid)
	}
	if fNyq <= 0 || deltaF <= 0 {
		return nil, fmt.Errorf("%w: fNyq=%g deltaF=%g", ErrGrid, fNyq, deltaF)
	}

	n := int(fNyq/deltaF) + 1
	s := &Spectrum{DeltaF: deltaF, Data: make([]float64, n)}
	for i := range s.Data {
		s.Data[i] = model(float64(i) * deltaF)
	}

	return s, nil
}

// FrequencyAt returns the frequency of bin i in Hz.
func (s *Spectrum) FrequencyAt(i int) float64 {
	return s.F0 + float64(i)*s.DeltaF
}

// Fmax returns the frequency of the last bin.
func (s *Spectrum) Fmax() float64 {
	if len(s.Data) == 0 {
		return s.F0
	}
	return s.FrequencyAt(len(s.Data) - 1)
}

// Copy returns a deep copy.
func (s *Spectrum) Copy() *Spectrum {
	out := *s
	out.Data = append([]float64(nil), s.Data...)
	return &out
}
