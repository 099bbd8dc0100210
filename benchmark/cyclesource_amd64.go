//go:build amd64

package benchmark

// tscSource reads the processor timestamp counter via RDTSC.
type tscSource struct{}

func (tscSource) Cycles() uint64 { return readTSC() }

func (tscSource) Name() string { return "rdtsc" }

// readTSC is implemented in cyclesource_amd64.s.
func readTSC() uint64

func defaultCycleSource() CycleSource { return tscSource{} }
