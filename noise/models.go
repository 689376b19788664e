package noise

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Func is an analytic one-sided PSD model, returning strain^2/Hz.
type Func func(freqHz float64) float64

// AdvLIGOZeroDetHighPower is the zero-detuning, high-laser-power
// advanced-detector design curve, as the broadband polynomial fit
//
//	S(f) = 1e-48 (0.0152 x^-4 + 0.2935 x^(9/4) + 2.7951 x^(3/2)
//	              - 6.5080 x^(3/4) + 17.7622),  x = f/245.4
//
// valid from roughly 10 Hz to a few kHz. Below the seismic wall the x^-4
// term diverges, so low-frequency weights vanish naturally.
func AdvLIGOZeroDetHighPower(freqHz float64) float64 {
	x := freqHz / 245.4

	return 1e-48 * (0.0152*math.Pow(x, -4) +
		0.2935*math.Pow(x, 9.0/4.0) +
		2.7951*math.Pow(x, 3.0/2.0) -
		6.5080*math.Pow(x, 3.0/4.0) +
		17.7622)
}

// InitialLIGOSRD is the initial-detector science-requirements fit
//
//	S(f) = 9e-46 ((4.49 x)^-56 + 0.16 x^-4.52 + 0.52 + 0.32 x^2),  x = f/150.
func InitialLIGOSRD(freqHz float64) float64 {
	x := freqHz / 150

	return 9e-46 * (math.Pow(4.49*x, -56) +
		0.16*math.Pow(x, -4.52) +
		0.52 +
		0.32*x*x)
}

// Flat returns a frequency-independent model at the given density.
func Flat(level float64) Func {
	return func(float64) float64 { return level }
}

var models = map[string]Func{
	"aligo-zerodet-highpower": AdvLIGOZeroDetHighPower,
	"iligo-srd":               InitialLIGOSRD,
}

var modelAliases = map[string]string{
	"aligo": "aligo-zerodet-highpower",
	"iligo": "iligo-srd",
}

// ModelNames returns the canonical names of the built-in analytic models,
// sorted alphabetically.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModelByName resolves a built-in analytic model. Matching is
// case-insensitive and accepts the short aliases "aligo" and "iligo".
// Unknown names return ErrModelName.
func ModelByName(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := modelAliases[key]; ok {
		key = canonical
	}
	fn, ok := models[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelName, name)
	}

	return fn, nil
}
