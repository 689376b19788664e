package overlap

import "errors"

var (
	// ErrConfig reports an invalid grid, band, PSD source, or truncation
	// setting at construction time.
	ErrConfig = errors.New("overlap: invalid configuration")
	// ErrSeries reports an operand whose length or frequency spacing does
	// not match the configured weights.
	ErrSeries = errors.New("overlap: series incompatible with weights")
	// ErrUnsupported reports a request the product kind cannot serve.
	ErrUnsupported = errors.New("overlap: unsupported operation")
)
