package main

import "runtime"

// Auto-sized worker bounds.
const (
	minAutoWorkers = 1
	maxAutoWorkers = 8
)

// resolveWorkers determines the number of concurrent page conversions.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2

	if n < minAutoWorkers {
		return minAutoWorkers
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
