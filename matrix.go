package gemmbench

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense row-major matrix of float64 values. Element (i, j) lives
// at Data[i*Cols+j]. Kernels index Data directly; At and Set are the
// bounds-checked path for callers and tests.
//
// A Matrix is exclusively owned by whoever allocated it. The benchmark loop
// allocates one operand set per matrix size, reuses it (after Zero) across
// all kernels and runs for that size, and drops the references when the size
// is done.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix allocates a rows×cols matrix initialized to all zeros.
// Allocation failure panics: the benchmark has no partial-run recovery.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gemmbench: invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// NewRandomMatrix allocates a rows×cols matrix with entries drawn
// independently and uniformly from [0, 1).
func NewRandomMatrix(rows, cols int, rng *rand.Rand) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.Data {
		m.Data[i] = rng.Float64()
	}
	return m
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.Data[i*m.Cols+j] = v
}

// Zero overwrites every element with 0. Kernels accumulate into C, so Zero
// must be called before each invocation that wants a fresh product.
func (m *Matrix) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("gemmbench: index (%d,%d) out of range for %dx%d matrix",
			i, j, m.Rows, m.Cols))
	}
}
