package benchmark

import "errors"

// Validation errors surfaced by Config.Validate, the kernel factory and
// the report writer. The original exercises silently accepted malformed
// values; these make every bad input an explicit failure.
var (
	ErrInvalidRange      = errors.New("min must not exceed max")
	ErrNonPositiveSize   = errors.New("array size must be positive")
	ErrNonPositiveTrials = errors.New("number of loops must be positive")
	ErrNoKernels         = errors.New("no kernels configured")
	ErrNoOutputPath      = errors.New("output path must not be empty")
	ErrUnknownKernel     = errors.New("unknown kernel")
)
