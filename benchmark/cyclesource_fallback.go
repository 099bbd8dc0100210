//go:build !amd64 && !arm64

package benchmark

import "time"

// clockSource is the fallback for architectures without a counter-read
// instruction: the monotonic clock scaled at an assumed 1 GHz, so one
// "cycle" is one nanosecond. Deltas remain monotonic and proportional to
// elapsed time, but they are not hardware cycle counts and must not be
// compared against rdtsc or cntvct numbers.
type clockSource struct {
	base time.Time
}

func (s clockSource) Cycles() uint64 { return uint64(time.Since(s.base).Nanoseconds()) }

func (clockSource) Name() string { return "monotonic-1ghz" }

func defaultCycleSource() CycleSource { return clockSource{base: time.Now()} }
