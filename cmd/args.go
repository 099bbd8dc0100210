package cmd

import (
	"fmt"
	"strconv"
)

// parseInt converts a positional argument, rejecting anything that is not
// a whole number instead of silently zeroing it.
func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v, nil
}
