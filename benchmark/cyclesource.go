package benchmark

// CycleSource reads a monotonically increasing CPU cycle counter.
// Absolute readings are only meaningful relative to other readings from
// the same source on the same machine; Name identifies which counter a
// measurement came from so numbers from different sources are never
// compared directly.
type CycleSource interface {
	// Cycles returns the current counter reading.
	Cycles() uint64

	// Name identifies the underlying counter, e.g. "rdtsc".
	Name() string
}

// DefaultCycleSource returns the hardware cycle counter for the build
// target, or the scaled monotonic clock on architectures without a
// counter-read instruction.
func DefaultCycleSource() CycleSource {
	return defaultCycleSource()
}
