package benchmark

import "time"

// Probe measures a bracketed region of code using the CPU cycle counter
// and a monotonic wall clock. Every derived metric is recomputed from the
// two stored readings, so accessors can be called in any order and any
// number of times.
type Probe struct {
	source CycleSource

	startTime   time.Time
	stopTime    time.Time
	startCycles uint64
	stopCycles  uint64
}

// NewProbe creates a probe backed by the default cycle source for the
// build target.
func NewProbe() *Probe {
	return NewProbeWithSource(DefaultCycleSource())
}

// NewProbeWithSource creates a probe backed by an explicit cycle source.
// Tests use this to inject a deterministic source.
func NewProbeWithSource(source CycleSource) *Probe {
	return &Probe{source: source}
}

// Start records the beginning of the measured interval, overwriting any
// previous start.
func (p *Probe) Start() {
	p.startTime = time.Now()
	p.startCycles = p.source.Cycles()
}

// Stop records the end of the measured interval. It must follow a Start
// on the same probe; readings taken without a matching Start are garbage.
func (p *Probe) Stop() {
	p.stopCycles = p.source.Cycles()
	p.stopTime = time.Now()
}

// Cycles returns the cycle-counter delta of the last measured interval.
func (p *Probe) Cycles() uint64 {
	return p.stopCycles - p.startCycles
}

// Seconds returns the wall-clock delta in fractional seconds.
func (p *Probe) Seconds() float64 {
	return p.stopTime.Sub(p.startTime).Seconds()
}

// Milliseconds returns the wall-clock delta in fractional milliseconds.
func (p *Probe) Milliseconds() float64 {
	return p.Seconds() * 1000
}

// CPI returns ops / cycles for the last interval. The formula, inverted
// relative to the usual cycles-per-instruction reading, is kept as-is so
// results stay comparable with earlier runs. A zero cycle delta
// propagates as Inf or NaN, never a panic.
func (p *Probe) CPI(ops int) float64 {
	return float64(ops) / float64(p.Cycles())
}

// IPC returns cycles / ops for the last interval, the reciprocal of CPI.
func (p *Probe) IPC(ops int) float64 {
	return float64(p.Cycles()) / float64(ops)
}
