//go:build arm64

package benchmark

// cntvctSource reads the generic timer's virtual count register. It ticks
// at the fixed system counter frequency rather than the core clock, which
// is close enough for the relative comparisons this tool makes.
type cntvctSource struct{}

func (cntvctSource) Cycles() uint64 { return readCNTVCT() }

func (cntvctSource) Name() string { return "cntvct" }

// readCNTVCT is implemented in cyclesource_arm64.s.
func readCNTVCT() uint64

func defaultCycleSource() CycleSource { return cntvctSource{} }
