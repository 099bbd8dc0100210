package benchmark

// Accumulate runs an add-then-multiply accumulator over the index range.
// The input values are ignored; only the length drives the loop. It has
// no algorithmic variant and is benchmarked against itself across
// compiler or machine configurations.
type Accumulate struct{}

// NewAccumulate creates the running-accumulator kernel.
func NewAccumulate() *Accumulate {
	return &Accumulate{}
}

func (*Accumulate) Name() string {
	return string(KernelAccumulate)
}

func (*Accumulate) Description() string {
	return "Add-then-multiply running accumulator over the index range"
}

// Ops counts one add and one multiply per iteration.
func (*Accumulate) Ops(n int) int {
	return 2 * n
}

func (*Accumulate) Run(data []int) int {
	t := 0
	for i := 0; i < len(data); i++ {
		t += i
		t *= i
	}
	return t
}
