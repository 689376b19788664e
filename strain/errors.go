package strain

import "errors"

var (
	ErrEmpty     = errors.New("strain: empty series")
	ErrOddLength = errors.New("strain: series length must be even")
	ErrLength    = errors.New("strain: invalid length")
	ErrSize      = errors.New("strain: series length does not match transformer size")
)
