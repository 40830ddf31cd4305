// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package extension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/extension/extension"
	"github.com/born-ml/extension/tensor"
)

func TestMulAdd(t *testing.T) {
	r := extension.Init()
	a, err := tensor.FromFloat32([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.FromFloat32([]float32{4, 5, 6}, tensor.Shape{3}, tensor.CPU)
	require.NoError(t, err)

	out, err := extension.MulAdd(r, a, b, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 12, 20}, out.Float32s())
}

func TestMulAddErrors(t *testing.T) {
	r := extension.Init()
	a, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	b, _ := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32, tensor.CPU)
	_, err := extension.MulAdd(r, a, b, 1)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	c, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, tensor.CPU)
	_, err = extension.MulAdd(r, a, c, 1)
	assert.ErrorIs(t, err, tensor.ErrDTypeMismatch)

	g, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CUDA)
	_, err = extension.MulAdd(r, g, g, 1)
	assert.ErrorIs(t, err, extension.ErrUnsupportedBackend)
}

func TestCustomBackend(t *testing.T) {
	r := extension.NewRegistry()
	require.NoError(t, extension.Register(r))

	called := false
	require.NoError(t, r.RegisterImpl(extension.MulAddOp, extension.CUDA, func(args []any) (any, error) {
		called = true
		return args[0], nil
	}))
	r.Seal()

	g, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CUDA)
	out, err := extension.MulAdd(r, g, g, 1)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Same(t, g, out)

	assert.ErrorIs(t, r.RegisterImpl(extension.MulAddOp, extension.Metal, nil), extension.ErrSealed)
}

func TestCustomBackendBadResult(t *testing.T) {
	r := extension.NewRegistry()
	require.NoError(t, extension.Register(r))
	require.NoError(t, r.RegisterImpl(extension.MulAddOp, extension.CUDA, func([]any) (any, error) {
		return nil, nil
	}))
	r.Seal()

	g, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CUDA)
	out, err := extension.MulAdd(r, g, g, 1)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, extension.ErrBadResult)
}
