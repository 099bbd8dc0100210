package benchmark

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialInputsShapeAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	count := 0
	for data := range TrialInputs(rng, 10, 50, -3, 7) {
		count++
		require.Len(t, data, 50)
		for _, v := range data {
			assert.GreaterOrEqual(t, v, -3)
			assert.LessOrEqual(t, v, 7)
		}
	}
	assert.Equal(t, 10, count)
}

func TestTrialInputsDeterministicPerSeed(t *testing.T) {
	collect := func(seed int64) [][]int {
		rng := rand.New(rand.NewSource(seed))
		var out [][]int
		for data := range TrialInputs(rng, 5, 8, 0, 1000) {
			out = append(out, data)
		}
		return out
	}

	assert.Equal(t, collect(42), collect(42))
	assert.NotEqual(t, collect(42), collect(43))
}

func TestTrialInputsSingleValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for data := range TrialInputs(rng, 2, 4, 5, 5) {
		assert.Equal(t, []int{5, 5, 5, 5}, data)
	}
}

func TestTrialInputsEarlyBreak(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seen := 0
	for range TrialInputs(rng, 100, 4, 0, 9) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}
