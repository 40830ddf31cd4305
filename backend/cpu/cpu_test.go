// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/extension/backend/cpu"
	"github.com/born-ml/extension/tensor"
)

func TestBackendMulAdd(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.FromFloat32([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, tensor.CPU)
	require.NoError(t, err)

	out, err := backend.MulAdd(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 13, 22, 33}, out.Float32s())
}

func TestBackendWithAllocator(t *testing.T) {
	errBudget := errors.New("budget exhausted")
	backend := cpu.New(cpu.WithAllocator(func(tensor.Shape, tensor.DataType, tensor.Device) (*tensor.RawTensor, error) {
		return nil, errBudget
	}))
	a, err := tensor.FromFloat32([]float32{1}, tensor.Shape{1}, tensor.CPU)
	require.NoError(t, err)

	_, err = backend.MulAdd(a, a, 1)
	assert.ErrorIs(t, err, errBudget)
}
