package gemmbench

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

// Go-native benchmarks for quick comparisons during development. The CSV
// harness (Runner) remains the measurement of record since it reproduces the
// fixed NUM_RUNS averaging protocol.

func BenchmarkLoopOrders(b *testing.B) {
	sizes := []int{64, 128, 256}

	for _, size := range sizes {
		rng := rand.New(rand.NewSource(1))
		a := NewRandomMatrix(size, size, rng)
		bm := NewRandomMatrix(size, size, rng)
		c := NewMatrix(size, size)

		for _, kern := range LoopOrders() {
			b.Run(fmt.Sprintf("%s_%d", kern.Name(), size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					c.Zero()
					kern.Apply(size, size, size, a.Data, bm.Data, c.Data)
				}
				reportGFLOPS(b, size)
			})
		}
	}
}

func BenchmarkOptimizedVariants(b *testing.B) {
	const size = 256
	rng := rand.New(rand.NewSource(2))
	a := NewRandomMatrix(size, size, rng)
	bm := NewRandomMatrix(size, size, rng)
	c := NewMatrix(size, size)

	kernels := []Kernel{
		Named(MNK{}, "Original_MNK"),
		NewBlocked(DefaultBlockSize),
		NewThreaded(runtime.NumCPU()),
		NewThreadedBlocked(runtime.NumCPU(), DefaultBlockSize),
	}

	for _, kern := range kernels {
		b.Run(kern.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.Zero()
				kern.Apply(size, size, size, a.Data, bm.Data, c.Data)
			}
			reportGFLOPS(b, size)
		})
	}
}

// reportGFLOPS reports throughput for an n³ GEMM: 2n³ FLOPs per invocation.
func reportGFLOPS(b *testing.B, size int) {
	flops := 2 * float64(size) * float64(size) * float64(size)
	timePerOp := b.Elapsed().Seconds() / float64(b.N)
	if timePerOp > 0 {
		b.ReportMetric(flops/timePerOp/1e9, "GFLOPS")
	}
}
