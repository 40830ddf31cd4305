// Package cpu implements the host CPU backend for extension operators.
package cpu

import (
	"fmt"

	"github.com/born-ml/extension/internal/tensor"
)

// CPUBackend runs operators on host memory.
type CPUBackend struct {
	device tensor.Device
	alloc  tensor.Allocator
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithAllocator replaces the tensor factory used for operator outputs.
func WithAllocator(alloc tensor.Allocator) Option {
	return func(cpu *CPUBackend) {
		cpu.alloc = alloc
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		device: tensor.CPU,
		alloc:  tensor.NewRaw,
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Empty allocates an output tensor on this backend's device.
// Its contents are unspecified until an operator writes them.
func (cpu *CPUBackend) Empty(shape tensor.Shape, dtype tensor.DataType) (*tensor.RawTensor, error) {
	t, err := cpu.alloc(shape, dtype, cpu.device)
	if err != nil {
		return nil, fmt.Errorf("allocate %s%v: %w", dtype, shape, err)
	}
	return t, nil
}

// mustBeLocal panics unless t lives on this backend's device. Reaching a
// backend with a foreign tensor means dispatch picked the wrong implementation.
func (cpu *CPUBackend) mustBeLocal(op string, t *tensor.RawTensor) {
	if t.Device() != cpu.device {
		panic(fmt.Sprintf("%s: internal error: %s tensor reached the %s backend", op, t.Device(), cpu.device))
	}
}
