// Package matrix offers the dense numeric substrate used by the hypercube
// multiplication engine.
//
// The matrix package provides:
//
//   - Dense, a row-major n×m buffer of float64 (offset i*cols + j) with
//     safe accessors that return sentinel errors instead of panicking.
//   - The Local Dense Multiply Kernel: MulAdd and MulAddRange accumulate
//     A×B into a caller-supplied buffer without zeroing it first.
//   - AddInPlace, the elementwise accumulate used when partial results are
//     combined.
//   - Validators and approximate comparison helpers shared by callers.
//
// Kernels work on flat []float64 slices so that the distributed layer can
// exchange, snapshot and accumulate raw buffers without conversions. The
// Dense type is a thin, validated facade on top of the same layout.
//
// See the examples in this package and in hypercube for usage patterns.
package matrix
