package gemmbench

import (
	"gonum.org/v1/gonum/mat"
)

// referenceProduct computes A·B (A m×k, B k×n, row-major) with Gonum and
// returns the row-major m×n result. Zero dimensions short-circuit to an
// all-zero (possibly empty) product, which mat.Dense cannot represent.
func referenceProduct(m, n, k int, a, b []float64) []float64 {
	if m == 0 || n == 0 {
		return nil
	}
	out := make([]float64, m*n)
	if k == 0 {
		return out
	}

	am := mat.NewDense(m, k, a)
	bm := mat.NewDense(k, n, b)
	var cm mat.Dense
	cm.Mul(am, bm)

	raw := cm.RawMatrix()
	for i := 0; i < m; i++ {
		copy(out[i*n:(i+1)*n], raw.Data[i*raw.Stride:i*raw.Stride+n])
	}
	return out
}

// VerifyKernel runs kern once over freshly zeroed output and compares the
// result against the Gonum reference product. A mismatch beyond
// DefaultTolerance is returned as a verification error naming the kernel.
func VerifyKernel(kern Kernel, m, n, k int, a, b *Matrix) error {
	c := NewMatrix(m, n)
	kern.Apply(m, n, k, a.Data, b.Data, c.Data)

	want := referenceProduct(m, n, k, a.Data, b.Data)
	result := VerifyFloat64Array(want, c.Data, DefaultTolerance())
	if result.NumErrors > 0 {
		return NewVerifyError(kern.Name(), result.String())
	}
	return nil
}
