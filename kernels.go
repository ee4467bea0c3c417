package gemmbench

// Kernel is a single GEMM variant. Apply computes
//
//	C[i*n+j] += Σ_{p=0}^{k-1} A[i*k+p] · B[p*n+j]
//
// for A (m×k), B (k×n), C (m×n), all row-major contiguous slices. Kernels
// accumulate into c and never overwrite it, so the caller is responsible for
// zeroing c before each invocation that wants a fresh product. Variants
// differ only in iteration order and memory-access pattern; results agree up
// to floating-point summation order.
//
// Any of m, n, k equal to zero is a no-op.
type Kernel interface {
	Name() string
	Apply(m, n, k int, a, b, c []float64)
}

// The six loop-order kernels. Each name encodes (outer, middle, inner) over
// the indices i (row of C, "M"), j (column of C, "N"), p (reduction, "K").

// MNK iterates rows of C outermost: the textbook row-by-row order.
type MNK struct{}

func (MNK) Name() string { return "MNK" }

func (MNK) Apply(m, n, k int, a, b, c []float64) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

// MKN hoists A[i,p] out of the inner loop and streams across rows of B and C.
type MKN struct{}

func (MKN) Name() string { return "MKN" }

func (MKN) Apply(m, n, k int, a, b, c []float64) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			for j := 0; j < n; j++ {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

// NMK iterates columns of C outermost.
type NMK struct{}

func (NMK) Name() string { return "NMK" }

func (NMK) Apply(m, n, k int, a, b, c []float64) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

// NKM hoists B[p,j] and walks down a column of C in the inner loop.
type NKM struct{}

func (NKM) Name() string { return "NKM" }

func (NKM) Apply(m, n, k int, a, b, c []float64) {
	for j := 0; j < n; j++ {
		for p := 0; p < k; p++ {
			bpj := b[p*n+j]
			for i := 0; i < m; i++ {
				c[i*n+j] += a[i*k+p] * bpj
			}
		}
	}
}

// KMN iterates the reduction index outermost, updating all of C once per p.
type KMN struct{}

func (KMN) Name() string { return "KMN" }

func (KMN) Apply(m, n, k int, a, b, c []float64) {
	for p := 0; p < k; p++ {
		for i := 0; i < m; i++ {
			aip := a[i*k+p]
			for j := 0; j < n; j++ {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

// KNM iterates the reduction index outermost with columns in the middle.
type KNM struct{}

func (KNM) Name() string { return "KNM" }

func (KNM) Apply(m, n, k int, a, b, c []float64) {
	for p := 0; p < k; p++ {
		for j := 0; j < n; j++ {
			bpj := b[p*n+j]
			for i := 0; i < m; i++ {
				c[i*n+j] += a[i*k+p] * bpj
			}
		}
	}
}

// LoopOrders returns the six loop-order kernels in declaration order.
// CSV columns are positional, so callers should not reorder the slice.
func LoopOrders() []Kernel {
	return []Kernel{MNK{}, MKN{}, NMK{}, NKM{}, KMN{}, KNM{}}
}

// Blocked is the cache-blocked (tiled) MNK kernel. The i, j, p ranges are
// partitioned into BlockSize-sized tiles; tile triples iterate outermost and
// the MNK order runs within each tile, with tile edges clamped to the matrix
// bounds. A BlockSize at or above the matrix dimension degenerates to the
// plain MNK order.
type Blocked struct {
	BlockSize int
}

// NewBlocked returns a blocked kernel, clamping blockSize up to 1.
func NewBlocked(blockSize int) Blocked {
	if blockSize < 1 {
		blockSize = 1
	}
	return Blocked{BlockSize: blockSize}
}

func (Blocked) Name() string { return "Blocked MNK" }

func (bk Blocked) Apply(m, n, k int, a, b, c []float64) {
	bk.applyRows(0, m, n, k, a, b, c)
}

// applyRows runs the blocked algorithm restricted to rows [i0, i1).
// ThreadedBlocked reuses it per worker, with i0 aligned to a block boundary.
func (bk Blocked) applyRows(i0, i1, n, k int, a, b, c []float64) {
	bs := bk.BlockSize
	if bs < 1 {
		bs = 1
	}
	for ib := i0; ib < i1; ib += bs {
		iEnd := min(ib+bs, i1)
		for jb := 0; jb < n; jb += bs {
			jEnd := min(jb+bs, n)
			for pb := 0; pb < k; pb += bs {
				pEnd := min(pb+bs, k)
				for i := ib; i < iEnd; i++ {
					for j := jb; j < jEnd; j++ {
						for p := pb; p < pEnd; p++ {
							c[i*n+j] += a[i*k+p] * b[p*n+j]
						}
					}
				}
			}
		}
	}
}

// Threaded is the row-partitioned multithreaded MNK kernel. The row range
// [0, m) is split into Workers contiguous chunks; one worker per non-empty
// chunk runs the full MNK accumulation restricted to its rows, and Apply
// joins all workers before returning. Workers write disjoint row ranges of c
// and only read a and b, so no locking is involved. With Workers ≥ m each
// worker gets at most one row and the excess workers do no work.
type Threaded struct {
	Workers int
}

// NewThreaded returns a threaded kernel, clamping workers up to 1.
func NewThreaded(workers int) Threaded {
	if workers < 1 {
		workers = 1
	}
	return Threaded{Workers: workers}
}

func (Threaded) Name() string { return "Multithreaded MNK" }

func (tk Threaded) Apply(m, n, k int, a, b, c []float64) {
	parallelRows(m, tk.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				for p := 0; p < k; p++ {
					c[i*n+j] += a[i*k+p] * b[p*n+j]
				}
			}
		}
	})
}

// ThreadedBlocked combines row partitioning with blocking. Work is split at
// the granularity of row-blocks (groups of BlockSize rows) rather than
// individual rows: each worker receives a contiguous range of row-blocks and
// applies the blocked algorithm within it. Row-block boundaries keep every
// worker's tiles aligned regardless of the partition.
type ThreadedBlocked struct {
	Workers   int
	BlockSize int
}

// NewThreadedBlocked returns a threaded+blocked kernel, clamping both
// parameters up to 1.
func NewThreadedBlocked(workers, blockSize int) ThreadedBlocked {
	if workers < 1 {
		workers = 1
	}
	if blockSize < 1 {
		blockSize = 1
	}
	return ThreadedBlocked{Workers: workers, BlockSize: blockSize}
}

func (ThreadedBlocked) Name() string { return "MT+Blocked MNK" }

func (tb ThreadedBlocked) Apply(m, n, k int, a, b, c []float64) {
	bs := tb.BlockSize
	if bs < 1 {
		bs = 1
	}
	blocked := Blocked{BlockSize: bs}
	rowBlocks := (m + bs - 1) / bs
	parallelRows(rowBlocks, tb.Workers, func(startBlock, endBlock int) {
		i0 := startBlock * bs
		i1 := min(endBlock*bs, m)
		blocked.applyRows(i0, i1, n, k, a, b, c)
	})
}

// KernelNames returns the names of kernels in slice order, matching the CSV
// column order the same slice produces.
func KernelNames(kernels []Kernel) []string {
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name()
	}
	return names
}

// Named wraps a kernel under a different report column name. The optimized
// benchmark reports the plain MNK baseline as "Original MNK" this way.
func Named(k Kernel, name string) Kernel {
	return named{Kernel: k, name: name}
}

type named struct {
	Kernel
	name string
}

func (nk named) Name() string { return nk.name }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
