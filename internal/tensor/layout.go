package tensor

import (
	"fmt"
	"math"
)

// IsContiguous reports whether the tensor is laid out densely in row-major
// order starting at its offset. Strides of size-1 dimensions are ignored.
func (r *RawTensor) IsContiguous() bool {
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] == 1 {
			continue
		}
		if r.stride[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// Contiguous returns a densely packed row-major tensor with the same contents.
// A tensor that is already contiguous is returned as is; otherwise the
// elements are copied into freshly allocated storage on the same device.
func (r *RawTensor) Contiguous() (*RawTensor, error) {
	if r.IsContiguous() {
		return r, nil
	}

	result, err := NewRaw(r.shape, r.dtype, r.device)
	if err != nil {
		return nil, fmt.Errorf("contiguous: %w", err)
	}

	size := r.dtype.Size()
	src := r.buffer.bytes
	dst := result.buffer.bytes
	r.forEachOffset(func(i, off int) {
		copy(dst[i*size:(i+1)*size], src[off*size:(off+1)*size])
	})
	return result, nil
}

// forEachOffset visits the elements in row-major order, passing the logical
// index and the storage offset of each one.
func (r *RawTensor) forEachOffset(f func(i, off int)) {
	ndim := len(r.shape)
	index := make([]int, ndim)
	off := r.offset
	n := r.NumElements()
	for i := 0; i < n; i++ {
		f(i, off)
		// Odometer increment over the multi-index.
		for d := ndim - 1; d >= 0; d-- {
			index[d]++
			off += r.stride[d]
			if index[d] < r.shape[d] {
				break
			}
			off -= index[d] * r.stride[d]
			index[d] = 0
		}
	}
}

// Permute returns a view with dimensions reordered by axes. No data is copied.
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: axes length %d != ndim %d", len(axes), ndim)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	stride := make([]int, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("permute: invalid axis %d for %dD tensor", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
		shape[i] = r.shape[ax]
		stride[i] = r.stride[ax]
	}
	return r.view(shape, stride, r.offset), nil
}

// Transpose returns a view with dim0 and dim1 swapped.
func (r *RawTensor) Transpose(dim0, dim1 int) (*RawTensor, error) {
	axes := make([]int, len(r.shape))
	for i := range axes {
		axes[i] = i
	}
	if dim0 < 0 || dim0 >= len(axes) || dim1 < 0 || dim1 >= len(axes) {
		return nil, fmt.Errorf("transpose: dims (%d, %d) out of range for %dD tensor", dim0, dim1, len(axes))
	}
	axes[dim0], axes[dim1] = axes[dim1], axes[dim0]
	return r.Permute(axes...)
}

// AsStrided returns a view over r's storage with an explicit layout.
// The offset is relative to the start of the storage, not to r's offset.
func (r *RawTensor) AsStrided(shape Shape, strides []int, offset int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("as_strided: %w", err)
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("as_strided: %d strides for %dD shape", len(strides), len(shape))
	}

	if offset < 0 {
		return nil, fmt.Errorf("as_strided: negative offset %d", offset)
	}
	last := offset
	for i, s := range strides {
		if s < 0 {
			return nil, fmt.Errorf("as_strided: negative stride %d at dim %d", s, i)
		}
		if s > 0 && shape[i]-1 > (math.MaxInt-last)/s {
			return nil, fmt.Errorf("as_strided: stride %d at dim %d overflows", s, i)
		}
		last += (shape[i] - 1) * s
	}
	capacity := len(r.buffer.bytes) / r.dtype.Size()
	if last >= capacity {
		return nil, fmt.Errorf("as_strided: view reaches element %d of %d", last, capacity)
	}

	return r.view(shape.Clone(), append([]int(nil), strides...), offset), nil
}

// flatOffset resolves a multi-index to a storage offset, panicking when out of bounds.
func (r *RawTensor) flatOffset(indices []int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	off := r.offset
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		off += idx * r.stride[i]
	}
	return off
}

// At returns the element at the given indices as a float64.
// Panics if indices are out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	off := r.flatOffset(indices) - r.offset
	switch r.dtype {
	case Float32:
		return float64(r.AsFloat32()[off])
	case Float64:
		return r.AsFloat64()[off]
	case Int32:
		return float64(r.AsInt32()[off])
	case Int64:
		return float64(r.AsInt64()[off])
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", r.dtype))
	}
}
