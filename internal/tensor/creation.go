package tensor

import "fmt"

// FromFloat32 creates a float32 tensor from a row-major slice.
// The slice is copied into the tensor's storage.
//
// Example:
//
//	a, _ := tensor.FromFloat32([]float32{1, 2, 3, 4}, Shape{2, 2}, CPU)
func FromFloat32(data []float32, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Float32, device)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat32(), data)
	return raw, nil
}

// FromFloat64 creates a float64 tensor from a row-major slice.
func FromFloat64(data []float64, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Float64, device)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat64(), data)
	return raw, nil
}

// Float32s returns the elements of a float32 tensor in row-major order.
// The result is always a fresh slice, whatever the tensor's layout.
func (r *RawTensor) Float32s() []float32 {
	src := r.AsFloat32()
	out := make([]float32, r.NumElements())
	r.forEachOffset(func(i, off int) {
		out[i] = src[off-r.offset]
	})
	return out
}

// Float64s returns the elements of a float64 tensor in row-major order.
func (r *RawTensor) Float64s() []float64 {
	src := r.AsFloat64()
	out := make([]float64, r.NumElements())
	r.forEachOffset(func(i, off int) {
		out[i] = src[off-r.offset]
	})
	return out
}
