// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/extension/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Device represents the compute device a tensor lives on.
type Device = tensor.Device

// Data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
)

// Devices.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Vulkan = tensor.Vulkan
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// Errors reported by operators and the tensor factory.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrDTypeMismatch = tensor.ErrDTypeMismatch
	ErrAllocation    = tensor.ErrAllocation
)

// ParseDevice parses a device name, case-insensitively.
func ParseDevice(s string) (Device, error) {
	return tensor.ParseDevice(s)
}

// ParseDataType parses an element type name such as "float32".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// ParseShape parses a comma-separated list of dimensions such as "2,3".
func ParseShape(s string) (Shape, error) {
	return tensor.ParseShape(s)
}
