package benchmark

import "fmt"

// Kernel is a single numeric routine under benchmark. Implementations
// carry their own parameters (e.g. the evaluation point of the polynomial
// kernels) and report a hand-derived theoretical operation count used for
// the CPI/IPC ratios.
type Kernel interface {
	// Name returns the short name used in logs and reports.
	Name() string

	// Description returns a human-readable description of the routine.
	Description() string

	// Ops returns the theoretical floating-point-operation count for an
	// input of length n. It is a property of the algorithm, not derived
	// from any measurement.
	Ops(n int) int

	// Run executes the routine over data and returns an integer result
	// usable as a checksum. Implementations may mutate data in place.
	Run(data []int) int
}

// KernelType represents available kernel types
type KernelType string

const (
	KernelNaivePolynomial  KernelType = "polynomial-naive"
	KernelHornerPolynomial KernelType = "polynomial-horner"
	KernelPrefixSum        KernelType = "prefix-sum"
	KernelAccumulate       KernelType = "accumulate"
)

// KernelConfig contains configuration specific to kernels
type KernelConfig struct {
	Type  KernelType
	Alpha int // evaluation point for the polynomial kernels
}

// NewKernel creates a kernel instance based on the type
func NewKernel(cfg KernelConfig) (Kernel, error) {
	switch cfg.Type {
	case KernelNaivePolynomial:
		return NewNaivePolynomial(cfg.Alpha), nil
	case KernelHornerPolynomial:
		return NewHornerPolynomial(cfg.Alpha), nil
	case KernelPrefixSum:
		return NewPrefixSum(), nil
	case KernelAccumulate:
		return NewAccumulate(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, cfg.Type)
	}
}
