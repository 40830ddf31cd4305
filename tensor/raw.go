// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/extension/internal/tensor"
)

// RawTensor is the host runtime's tensor handle.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Layout information via Strides(), IsContiguous()
//   - Zero-copy views via Transpose(), Permute(), AsStrided()
//   - Dense copies via Contiguous(), Float32s(), Float64s()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()      // Zero-copy access
//	t, _ := raw.Transpose(0, 1)  // Shares storage, not contiguous
type RawTensor = tensor.RawTensor

// Allocator requests new tensor storage from the runtime.
type Allocator = tensor.Allocator

// NewRaw allocates a dense row-major tensor with zeroed storage.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromFloat32 creates a float32 tensor from a row-major slice.
func FromFloat32(data []float32, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape, device)
}

// FromFloat64 creates a float64 tensor from a row-major slice.
func FromFloat64(data []float64, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromFloat64(data, shape, device)
}
