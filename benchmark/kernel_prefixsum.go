package benchmark

// PrefixSum replaces each element with the running total including
// itself, in place: [1,2,3,4] becomes [1,3,6,10].
type PrefixSum struct{}

// NewPrefixSum creates the in-place inclusive scan kernel.
func NewPrefixSum() *PrefixSum {
	return &PrefixSum{}
}

func (*PrefixSum) Name() string {
	return string(KernelPrefixSum)
}

func (*PrefixSum) Description() string {
	return "In-place inclusive prefix sum over the input array"
}

// Ops counts one add per element.
func (*PrefixSum) Ops(n int) int {
	return n
}

func (*PrefixSum) Run(data []int) int {
	for i := 1; i < len(data); i++ {
		data[i] += data[i-1]
	}
	if len(data) == 0 {
		return 0
	}
	return data[len(data)-1]
}
