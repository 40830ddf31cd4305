// Package kernel holds backend-agnostic numeric routines over raw buffers.
//
// Kernels know nothing about tensors: callers validate shapes, dtypes and
// layout before handing over densely packed slices and an element count.
package kernel

// Float is the set of element types the float kernels accept.
type Float interface {
	~float32 | ~float64
}

// MulAdd computes out[i] = a[i]*b[i] + c for i in [0, n).
//
// a, b and out must hold at least n elements. out may alias a or b exactly,
// since each element is read before it is written.
func MulAdd[T Float](a, b []T, c T, out []T, n int) {
	a, b, out = a[:n], b[:n], out[:n]
	for i := range out {
		out[i] = a[i]*b[i] + c
	}
}
