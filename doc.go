// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gemmbench is an educational benchmarking suite comparing dense
// matrix-multiplication (GEMM) loop orderings and parallelization strategies
// on double-precision row-major matrices.
//
// The suite measures wall-clock time for a family of kernels that all compute
// the same accumulation C += A·B but differ in iteration order and memory
// access pattern:
//   - Six loop-order permutations (MNK, MKN, NMK, NKM, KMN, KNM)
//   - A cache-blocked variant
//   - A row-partitioned multithreaded variant
//   - A combined multithreaded + blocked variant
//
// Each kernel is run repeatedly per matrix size, per-run wall-clock times are
// averaged, and the size × kernel mean-time table is written as CSV. Results
// can optionally be verified against a Gonum reference product.
//
// This is strictly a comparative measurement tool, not a linear algebra
// library: kernels are scalar by intent (comparing loop nests, not SIMD), and
// there are no numerical stability guarantees beyond plain float64
// accumulation.
package gemmbench
