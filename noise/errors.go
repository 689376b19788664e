package noise

import "errors"

var (
	ErrGrid      = errors.New("noise: invalid frequency grid")
	ErrTooShort  = errors.New("noise: series shorter than one segment")
	ErrSegment   = errors.New("noise: invalid segment configuration")
	ErrSpectrum  = errors.New("noise: spectrum needs at least two bins")
	ErrModelName = errors.New("noise: unknown model name")
)
