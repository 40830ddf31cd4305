// Package tensor provides the host tensor container consumed by operators:
// typed, strided, device-tagged storage with a factory and introspection.
package tensor

import "fmt"

// DataType is the element type of a tensor's storage.
type DataType int

// Element types a tensor can hold.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

var dtypes = [...]struct {
	name string
	size int
}{
	Float32: {"float32", 4},
	Float64: {"float64", 8},
	Int32:   {"int32", 4},
	Int64:   {"int64", 8},
}

func (dt DataType) valid() bool {
	return dt >= 0 && int(dt) < len(dtypes)
}

// Size returns the width of one element in bytes.
// Panics on an unknown data type.
func (dt DataType) Size() int {
	if !dt.valid() {
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
	return dtypes[dt].size
}

// String returns the element type name, e.g. "float32".
func (dt DataType) String() string {
	if !dt.valid() {
		return "unknown"
	}
	return dtypes[dt].name
}

// ParseDataType parses an element type name as returned by String.
func ParseDataType(s string) (DataType, error) {
	for dt := range dtypes {
		if dtypes[dt].name == s {
			return DataType(dt), nil
		}
	}
	return 0, fmt.Errorf("unknown data type %q", s)
}
