// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the host tensor container used by extension operators.
//
// # Overview
//
// Tensors are typed, strided, device-tagged buffers. Operators read them
// through introspection (Shape, DType, Device, IsContiguous) and raw typed
// slices, and create new ones through the NewRaw factory.
//
// # Basic Usage
//
//	import "github.com/born-ml/extension/tensor"
//
//	a, _ := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	at, _ := a.Transpose(0, 1)      // strided view
//	dense, _ := at.Contiguous()     // row-major copy
//	fmt.Println(dense.Float32s())   // [1 3 2 4]
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//
// # Devices
//
// A tensor's Device selects which backend implementation an operator
// dispatches to. Storage always lives in Go memory; the tag is what the
// dispatcher and backends check.
package tensor
