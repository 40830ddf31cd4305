package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/extension/internal/envconfig"
	"github.com/born-ml/extension/internal/extension"
	"github.com/born-ml/extension/internal/tensor"
)

func muladdHandler(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	aText, _ := flags.GetString("a")
	bText, _ := flags.GetString("b")
	shapeText, _ := flags.GetString("shape")
	c, _ := flags.GetFloat64("c")
	deviceName, _ := flags.GetString("device")
	transposeA, _ := flags.GetBool("transpose-a")
	dtypeName, _ := flags.GetString("dtype")

	av, err := parseFloats(aText)
	if err != nil {
		return fmt.Errorf("--a: %w", err)
	}
	bv, err := parseFloats(bText)
	if err != nil {
		return fmt.Errorf("--b: %w", err)
	}

	device := envconfig.Device()
	if deviceName != "" {
		if device, err = tensor.ParseDevice(deviceName); err != nil {
			return err
		}
	}

	dtype, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return fmt.Errorf("--dtype: %w", err)
	}

	shape := tensor.Shape{len(av)}
	if shapeText != "" {
		if shape, err = tensor.ParseShape(shapeText); err != nil {
			return fmt.Errorf("--shape: %w", err)
		}
	}

	var a *tensor.RawTensor
	if transposeA {
		if len(shape) != 2 {
			return errors.New("--transpose-a needs a 2-D shape")
		}
		// Values were given column-major: store them as the transpose and view it back.
		at, err := newInput(av, tensor.Shape{shape[1], shape[0]}, dtype, device)
		if err != nil {
			return fmt.Errorf("--a: %w", err)
		}
		if a, err = at.Transpose(0, 1); err != nil {
			return err
		}
	} else if a, err = newInput(av, shape, dtype, device); err != nil {
		return fmt.Errorf("--a: %w", err)
	}
	b, err := newInput(bv, shape, dtype, device)
	if err != nil {
		return fmt.Errorf("--b: %w", err)
	}

	r, err := extension.Load()
	if err != nil {
		return err
	}
	out, err := extension.MulAdd(r, a, b, c)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", out, formatFloats(out.Float32s()))
	return nil
}

func parseFloats(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	return out, nil
}

// newInput builds a CLI operand. Only float32 operands are accepted by the
// operator; other types are built so the rejection can be observed.
func newInput(values []float32, shape tensor.Shape, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	switch dtype {
	case tensor.Float32:
		return tensor.FromFloat32(values, shape, device)
	case tensor.Float64:
		wide := make([]float64, len(values))
		for i, v := range values {
			wide[i] = float64(v)
		}
		return tensor.FromFloat64(wide, shape, device)
	default:
		return nil, fmt.Errorf("cannot build %s operands", dtype)
	}
}

func formatFloats(xs []float32) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
