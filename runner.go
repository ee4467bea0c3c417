package gemmbench

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"
)

// Config parameterizes a benchmark run. The zero value is not usable; start
// from DefaultConfig and override as needed (tests shrink Sizes and Runs,
// performance runs keep the defaults).
type Config struct {
	// Sizes are the square matrix sizes to benchmark (m = n = k = size).
	// They are benchmarked in ascending order regardless of slice order.
	Sizes []int

	// Runs is the number of timed runs averaged per (size, kernel) pair.
	Runs int

	// Seed seeds operand generation. Zero selects a time-based seed.
	Seed int64

	// Progress receives human-readable per-size and per-kernel lines.
	// Nil discards them. This stream is not part of any programmatic
	// contract; the CSV report is the output of record.
	Progress io.Writer

	// Verify re-runs each kernel once per size after timing and compares
	// the result against the Gonum reference product. A mismatch aborts
	// the run.
	Verify bool
}

// DefaultConfig returns the standard benchmark configuration: the fixed
// candidate sizes and NumRuns timed runs per kernel.
func DefaultConfig() Config {
	return Config{
		Sizes: DefaultSizes(),
		Runs:  NumRuns,
	}
}

// Runner drives the benchmark matrix: for each size, for each kernel, it
// zeroes C, times Runs kernel invocations with a monotonic clock, averages,
// and emits one CSV row per size through the report.
type Runner struct {
	cfg     Config
	kernels []Kernel
	report  *Report
}

// NewRunner validates the configuration and returns a Runner over the given
// kernels, which are benchmarked and reported in slice order. report may be
// nil when only console output is wanted.
func NewRunner(cfg Config, kernels []Kernel, report *Report) (*Runner, error) {
	if len(kernels) == 0 {
		return nil, NewConfigError("NewRunner", "no kernels to benchmark")
	}
	if cfg.Runs < 1 {
		return nil, NewConfigError("NewRunner", fmt.Sprintf("runs must be >= 1, got %d", cfg.Runs))
	}
	for _, size := range cfg.Sizes {
		if size < 0 {
			return nil, NewConfigError("NewRunner", fmt.Sprintf("negative matrix size %d", size))
		}
	}

	sizes := append([]int(nil), cfg.Sizes...)
	sort.Ints(sizes)
	cfg.Sizes = sizes

	return &Runner{cfg: cfg, kernels: kernels, report: report}, nil
}

// Run executes the full benchmark matrix. Matrices are allocated fresh per
// size, reused (after zeroing) across all kernels and runs for that size,
// and released before the next size. The first error aborts the run; rows
// already written stay flushed.
func (r *Runner) Run() error {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for _, size := range r.cfg.Sizes {
		if err := r.runSize(size, rng); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runSize(size int, rng *rand.Rand) error {
	m, n, k := size, size, size
	r.progressf("Testing matrices of size %d x %d...\n", size, size)

	a := NewRandomMatrix(m, k, rng)
	b := NewRandomMatrix(k, n, rng)
	c := NewMatrix(m, n)

	means := make([]float64, 0, len(r.kernels))
	for _, kern := range r.kernels {
		total := 0.0
		for run := 0; run < r.cfg.Runs; run++ {
			c.Zero()
			start := time.Now()
			kern.Apply(m, n, k, a.Data, b.Data, c.Data)
			total += time.Since(start).Seconds()
		}
		mean := total / float64(r.cfg.Runs)
		means = append(means, mean)
		r.progressf("  %s: %.6f s\n", kern.Name(), mean)

		if r.cfg.Verify {
			if err := VerifyKernel(kern, m, n, k, a, b); err != nil {
				return err
			}
		}
	}

	if r.report != nil {
		if err := r.report.WriteRow(size, means); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) progressf(format string, args ...interface{}) {
	if r.cfg.Progress != nil {
		fmt.Fprintf(r.cfg.Progress, format, args...)
	}
}
