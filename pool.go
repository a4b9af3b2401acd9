package md2site

import "runtime"

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps the worker count; page generation is short and
	// mostly bound by file I/O past this point.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the writer and the serve loop.
	cpuDivisor = 2
)

// ResolvePoolSize determines the worker count for a batch build.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs inside containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
