// Package gemmbench benchmark configuration constants
package gemmbench

// Timing protocol
const (
	// NumRuns is the number of timed runs averaged per (size, kernel) pair.
	NumRuns = 3
)

// Defaults for the parallel and blocked variants
const (
	// DefaultNumThreads is the worker count when the CLI gives none.
	DefaultNumThreads = 4

	// DefaultBlockSize is the tile edge when the CLI gives none.
	DefaultBlockSize = 32
)

// DefaultSizes returns the fixed candidate matrix sizes, ascending. The
// benchmark only constructs square matrices (m = n = k = size). A fresh
// slice is returned so callers can't perturb the canonical list.
func DefaultSizes() []int {
	return []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 200, 300, 400}
}
