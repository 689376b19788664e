package cbc

import "errors"

var (
	// ErrParams reports a parameter value outside its physical or
	// configured range.
	ErrParams = errors.New("cbc: invalid parameter")

	// ErrDeltaF reports an operation that needs Params.DeltaF set.
	ErrDeltaF = errors.New("cbc: deltaF required")

	// ErrGenerator reports unusable generator output.
	ErrGenerator = errors.New("cbc: bad generator output")
)
