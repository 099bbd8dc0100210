package benchmark

// Totals accumulates probe readings across trials for one kernel.
type Totals struct {
	Trials  int
	Cycles  float64
	Seconds float64
	Millis  float64
	CPI     float64
	IPC     float64
}

// Add folds one measured trial into the totals, using the kernel's
// theoretical operation count for the trial's input size.
func (t *Totals) Add(p *Probe, ops int) {
	t.Trials++
	t.Cycles += float64(p.Cycles())
	t.Seconds += p.Seconds()
	t.Millis += p.Milliseconds()
	t.CPI += p.CPI(ops)
	t.IPC += p.IPC(ops)
}

// Average returns the per-trial mean of every accumulated metric.
func (t *Totals) Average() Metrics {
	if t.Trials == 0 {
		return Metrics{}
	}
	n := float64(t.Trials)
	return Metrics{
		Cycles:  t.Cycles / n,
		Seconds: t.Seconds / n,
		Millis:  t.Millis / n,
		CPI:     t.CPI / n,
		IPC:     t.IPC / n,
	}
}

// Metrics holds trial-averaged results for one kernel.
type Metrics struct {
	Kernel  string
	Cycles  float64
	Seconds float64
	Millis  float64
	CPI     float64
	IPC     float64
}
