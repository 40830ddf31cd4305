// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package extension adds custom operators to the Born tensor runtime.
//
// # Overview
//
// An operator is declared once by a schema (its name and typed signature)
// and implemented per backend. The registry routes each call to the
// implementation matching the device of its tensor arguments:
//
//	extension.MulAdd → Registry.Call → cpu.Backend.MulAdd → kernel
//
// The extension ships one operator, extension_cpp::muladd_cpp, computing
// a*b + c elementwise with a CPU implementation.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/extension/extension"
//	    "github.com/born-ml/extension/tensor"
//	)
//
//	func main() {
//	    r := extension.Init()
//
//	    a, _ := tensor.FromFloat32([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
//	    b, _ := tensor.FromFloat32([]float32{4, 5, 6}, tensor.Shape{3}, tensor.CPU)
//
//	    out, err := extension.MulAdd(r, a, b, 2)
//	    // out = [6, 12, 20]
//	}
//
// # Adding Backends
//
// A registry built with NewRegistry and Register stays open until Seal, so
// a host can attach implementations for other backend keys:
//
//	r := extension.NewRegistry()
//	_ = extension.Register(r)
//	_ = r.RegisterImpl(extension.MulAddOp, extension.CUDA, cudaMulAdd)
//	r.Seal()
//
// A sealed registry is read-only and safe for concurrent calls.
package extension
