package benchmark

import (
	"iter"
	"math/rand"
)

// TrialInputs produces one random input array per trial, values uniform
// in [min, max]. The generator is owned by the caller, so a run is fully
// reproducible from its seed.
func TrialInputs(rng *rand.Rand, trials, size, min, max int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for t := 0; t < trials; t++ {
			data := make([]int, size)
			for i := range data {
				data[i] = rng.Intn(max+1-min) + min
			}
			if !yield(data) {
				return
			}
		}
	}
}
