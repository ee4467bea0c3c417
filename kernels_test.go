package gemmbench

import (
	"math/rand"
	"testing"
)

// allKernels returns every variant with representative parameters.
func allKernels() []Kernel {
	return append(LoopOrders(),
		NewBlocked(DefaultBlockSize),
		NewThreaded(DefaultNumThreads),
		NewThreadedBlocked(DefaultNumThreads, DefaultBlockSize),
	)
}

// applyFresh runs kern over a freshly zeroed output and returns it.
func applyFresh(kern Kernel, m, n, k int, a, b []float64) []float64 {
	c := make([]float64, m*n)
	kern.Apply(m, n, k, a, b, c)
	return c
}

func TestKnownProduct2x2(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	want := []float64{19, 22, 43, 50}

	for _, kern := range allKernels() {
		got := applyFresh(kern, 2, 2, 2, a, b)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: C[%d] = %f, want %f", kern.Name(), i, got[i], want[i])
			}
		}
	}
}

func TestKernelsMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dims := [][3]int{
		{1, 1, 1},
		{2, 3, 4},
		{5, 7, 3},
		{16, 16, 16},
		{20, 20, 20},
		{33, 17, 29},
	}

	for _, d := range dims {
		m, n, k := d[0], d[1], d[2]
		a := NewRandomMatrix(m, k, rng)
		b := NewRandomMatrix(k, n, rng)
		want := referenceProduct(m, n, k, a.Data, b.Data)

		for _, kern := range allKernels() {
			got := applyFresh(kern, m, n, k, a.Data, b.Data)
			result := VerifyFloat64Array(want, got, DefaultTolerance())
			if result.NumErrors > 0 {
				t.Errorf("%s at %dx%dx%d: %s", kern.Name(), m, n, k, result)
			}
		}
	}
}

func TestZeroDimensionIsNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	dims := [][3]int{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
		{0, 0, 0},
	}

	for _, d := range dims {
		m, n, k := d[0], d[1], d[2]
		a := NewRandomMatrix(m, k, rng)
		b := NewRandomMatrix(k, n, rng)

		for _, kern := range allKernels() {
			// Pre-fill C with a sentinel: a no-op must leave it untouched.
			c := make([]float64, m*n)
			for i := range c {
				c[i] = 7.5
			}
			kern.Apply(m, n, k, a.Data, b.Data, c)
			for i := range c {
				if c[i] != 7.5 {
					t.Errorf("%s at %dx%dx%d: C[%d] modified to %f",
						kern.Name(), m, n, k, i, c[i])
				}
			}
		}
	}
}

func TestBlockedInvariantToBlockSize(t *testing.T) {
	const size = 20
	rng := rand.New(rand.NewSource(3))
	a := NewRandomMatrix(size, size, rng)
	b := NewRandomMatrix(size, size, rng)
	want := applyFresh(MNK{}, size, size, size, a.Data, b.Data)

	for _, bs := range []int{1, 7, 32, 64} {
		got := applyFresh(NewBlocked(bs), size, size, size, a.Data, b.Data)
		result := VerifyFloat64Array(want, got, DefaultTolerance())
		if result.NumErrors > 0 {
			t.Errorf("Blocked with block size %d: %s", bs, result)
		}
	}
}

func TestBlockSizeBeyondDimensionDegenerates(t *testing.T) {
	// A block covering the whole matrix is a single tile, so the iteration
	// order inside it is exactly MNK and the sums match bitwise.
	const size = 12
	rng := rand.New(rand.NewSource(4))
	a := NewRandomMatrix(size, size, rng)
	b := NewRandomMatrix(size, size, rng)

	want := applyFresh(MNK{}, size, size, size, a.Data, b.Data)
	got := applyFresh(NewBlocked(size+100), size, size, size, a.Data, b.Data)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("C[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestThreadedMatchesMNK(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	dims := [][3]int{
		{5, 4, 3}, // workers exceed m for the larger worker counts
		{20, 20, 20},
	}

	for _, d := range dims {
		m, n, k := d[0], d[1], d[2]
		a := NewRandomMatrix(m, k, rng)
		b := NewRandomMatrix(k, n, rng)
		want := applyFresh(MNK{}, m, n, k, a.Data, b.Data)

		for _, workers := range []int{1, 2, 8} {
			got := applyFresh(NewThreaded(workers), m, n, k, a.Data, b.Data)
			// Each row's sum is computed in the same order as MNK, so the
			// partition must not change results at all.
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Threaded(%d) at %dx%dx%d: C[%d] = %v, want %v",
						workers, m, n, k, i, got[i], want[i])
				}
			}
		}
	}
}

func TestThreadedBlockedMatchesBlocked(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const m, n, k = 23, 19, 17
	a := NewRandomMatrix(m, k, rng)
	b := NewRandomMatrix(k, n, rng)

	for _, bs := range []int{1, 4, 32} {
		want := applyFresh(NewBlocked(bs), m, n, k, a.Data, b.Data)
		for _, workers := range []int{1, 3, 8, 64} {
			got := applyFresh(NewThreadedBlocked(workers, bs), m, n, k, a.Data, b.Data)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("ThreadedBlocked(%d,%d): C[%d] = %v, want %v",
						workers, bs, i, got[i], want[i])
				}
			}
		}
	}
}

func TestResetRunCyclesIdempotent(t *testing.T) {
	const size = 15
	rng := rand.New(rand.NewSource(8))
	a := NewRandomMatrix(size, size, rng)
	b := NewRandomMatrix(size, size, rng)
	c := NewMatrix(size, size)

	for _, kern := range []Kernel{MNK{}, NewThreaded(4), NewBlocked(4)} {
		var first []float64
		for run := 0; run < NumRuns; run++ {
			c.Zero()
			kern.Apply(size, size, size, a.Data, b.Data, c.Data)
			if first == nil {
				first = append([]float64(nil), c.Data...)
				continue
			}
			for i := range first {
				if c.Data[i] != first[i] {
					t.Fatalf("%s run %d: C[%d] = %v, differs from first run %v",
						kern.Name(), run, i, c.Data[i], first[i])
				}
			}
		}
	}
}

func TestAccumulationWithoutReset(t *testing.T) {
	// Kernels accumulate: two invocations without zeroing yield 2·A·B.
	const size = 8
	rng := rand.New(rand.NewSource(9))
	a := NewRandomMatrix(size, size, rng)
	b := NewRandomMatrix(size, size, rng)

	once := applyFresh(MNK{}, size, size, size, a.Data, b.Data)
	c := make([]float64, size*size)
	MNK{}.Apply(size, size, size, a.Data, b.Data, c)
	MNK{}.Apply(size, size, size, a.Data, b.Data, c)

	tol := DefaultTolerance()
	for i := range c {
		if !Float64NearEqual(c[i], 2*once[i], tol) {
			t.Fatalf("C[%d] = %v after two runs, want %v", i, c[i], 2*once[i])
		}
	}
}

func TestNamedKernel(t *testing.T) {
	kern := Named(MNK{}, "Original MNK")
	if kern.Name() != "Original MNK" {
		t.Fatalf("Name() = %q, want %q", kern.Name(), "Original MNK")
	}
	got := applyFresh(kern, 2, 2, 2, []float64{1, 2, 3, 4}, []float64{5, 6, 7, 8})
	want := []float64{19, 22, 43, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("C[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestConstructorClamping(t *testing.T) {
	if k := NewBlocked(0); k.BlockSize != 1 {
		t.Errorf("NewBlocked(0).BlockSize = %d, want 1", k.BlockSize)
	}
	if k := NewThreaded(-3); k.Workers != 1 {
		t.Errorf("NewThreaded(-3).Workers = %d, want 1", k.Workers)
	}
	k := NewThreadedBlocked(0, -1)
	if k.Workers != 1 || k.BlockSize != 1 {
		t.Errorf("NewThreadedBlocked(0,-1) = %+v, want both 1", k)
	}
}
