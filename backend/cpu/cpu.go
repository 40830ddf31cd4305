// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/extension/internal/backend/cpu"
	"github.com/born-ml/extension/tensor"
)

// Backend represents the CPU backend implementation.
//
// Backend validates operator inputs, canonicalises strided inputs to dense
// row-major copies and runs the kernels on host memory.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/extension/backend/cpu"
//	    "github.com/born-ml/extension/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{2}, tensor.CPU)
//	    out, _ := backend.MulAdd(a, a, 1) // [2 5]
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithAllocator replaces the tensor factory used for operator outputs.
func WithAllocator(alloc tensor.Allocator) Option {
	return internalcpu.WithAllocator(alloc)
}
