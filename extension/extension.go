// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package extension

import (
	"github.com/born-ml/extension/internal/dispatch"
	internalext "github.com/born-ml/extension/internal/extension"
	"github.com/born-ml/extension/tensor"
)

// Registry maps qualified operator names to schemas and per-backend
// implementations.
type Registry = dispatch.Registry

// BackendKey identifies the compute domain an implementation targets.
type BackendKey = dispatch.BackendKey

// Impl is a type-erased operator implementation.
type Impl = dispatch.Impl

// Backend keys.
const (
	CPU    = dispatch.CPU
	CUDA   = dispatch.CUDA
	Vulkan = dispatch.Vulkan
	Metal  = dispatch.Metal
	WebGPU = dispatch.WebGPU
)

// Registration and dispatch errors.
var (
	ErrNoSchema           = dispatch.ErrNoSchema
	ErrSchemaConflict     = dispatch.ErrSchemaConflict
	ErrSealed             = dispatch.ErrSealed
	ErrUnknownOp          = dispatch.ErrUnknownOp
	ErrUnsupportedBackend = dispatch.ErrUnsupportedBackend
	ErrBadArgument        = dispatch.ErrBadArgument
	ErrDeviceMismatch     = dispatch.ErrDeviceMismatch
	ErrBadResult          = dispatch.ErrBadResult
)

// Operator names.
const (
	Library      = internalext.Library
	MulAddSchema = internalext.MulAddSchema
	MulAddOp     = internalext.MulAddOp
)

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return dispatch.NewRegistry()
}

// Register defines the extension's operators on r.
// Call it before r is shared between goroutines.
func Register(r *Registry) error {
	return internalext.Register(r)
}

// Load returns a sealed registry holding the extension's operators.
func Load() (*Registry, error) {
	return internalext.Load()
}

// MustLoad is like Load but panics on failure.
func MustLoad() *Registry {
	return internalext.MustLoad()
}

// Init loads the extension once per process and returns the shared registry.
//
// Example:
//
//	r := extension.Init()
//	out, err := extension.MulAdd(r, a, b, 1.0)
func Init() *Registry {
	return internalext.Init()
}

// MulAdd computes a*b + c elementwise, dispatching on the inputs' device.
// Both tensors must share shape and be float32.
func MulAdd(r *Registry, a, b *tensor.RawTensor, c float64) (*tensor.RawTensor, error) {
	return internalext.MulAdd(r, a, b, c)
}
