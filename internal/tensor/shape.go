package tensor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Shape lists a tensor's dimension sizes, outermost first.
// The empty shape describes a scalar.
type Shape []int

// NumElements returns the product of the dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects shapes with a non-positive dimension.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(dim int) bool { return dim <= 0 }); i >= 0 {
		return fmt.Errorf("dimension %d of %v is %d, must be positive", i, s, s[i])
	}
	return nil
}

// Equal reports whether both shapes have the same rank and sizes.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy that does not alias s.
func (s Shape) Clone() Shape {
	return append(make(Shape, 0, len(s)), s...)
}

// ComputeStrides returns the element strides of a dense row-major layout.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// ParseShape parses a comma-separated list of dimensions such as "2,3".
func ParseShape(text string) (Shape, error) {
	var s Shape
	for _, field := range strings.Split(text, ",") {
		dim, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", text, err)
		}
		s = append(s, dim)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("shape %q: %w", text, err)
	}
	return s, nil
}
