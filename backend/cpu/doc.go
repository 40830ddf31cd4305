// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for extension operators.
//
// # Overview
//
// The backend is the operation wrapper between the dispatcher and the
// kernels. For every call it:
//   - Checks that the input shapes agree (tensor.ErrShapeMismatch)
//   - Checks that the element type is float32 (tensor.ErrDTypeMismatch)
//   - Requires every input to live on the CPU device
//   - Copies strided inputs to dense row-major storage
//   - Allocates a fresh output through the configured allocator
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/extension/backend/cpu"
//	    "github.com/born-ml/extension/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	    b, _ := tensor.FromFloat32([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, tensor.CPU)
//
//	    out, err := backend.MulAdd(a, b, 1.0)
//	    // out = [[6, 13], [22, 33]]
//	}
//
// Most callers go through the extension package, which dispatches to this
// backend by device.
package cpu
