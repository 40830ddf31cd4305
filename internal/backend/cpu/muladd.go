package cpu

import (
	"fmt"

	"github.com/born-ml/extension/internal/kernel"
	"github.com/born-ml/extension/internal/tensor"
)

// MulAdd computes a*b + c element-wise for two float32 tensors of equal shape.
//
// Shape and dtype violations are returned as errors before any data is read.
// Tensors that are not on the CPU cause a panic: the dispatcher guarantees
// device placement, so such a call is a programming error.
// Non-contiguous inputs are copied to a dense layout before the kernel runs.
func (cpu *CPUBackend) MulAdd(a, b *tensor.RawTensor, c float64) (*tensor.RawTensor, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("muladd: %w: %v vs %v", tensor.ErrShapeMismatch, a.Shape(), b.Shape())
	}
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 {
		return nil, fmt.Errorf("muladd: %w: got %s and %s, want float32", tensor.ErrDTypeMismatch, a.DType(), b.DType())
	}
	cpu.mustBeLocal("muladd", a)
	cpu.mustBeLocal("muladd", b)

	aContig, err := a.Contiguous()
	if err != nil {
		return nil, fmt.Errorf("muladd: %w", err)
	}
	bContig, err := b.Contiguous()
	if err != nil {
		return nil, fmt.Errorf("muladd: %w", err)
	}

	result, err := cpu.Empty(aContig.Shape(), aContig.DType())
	if err != nil {
		return nil, fmt.Errorf("muladd: %w", err)
	}

	kernel.MulAdd(aContig.AsFloat32(), bContig.AsFloat32(), float32(c), result.AsFloat32(), result.NumElements())
	return result, nil
}
