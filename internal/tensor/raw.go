package tensor

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// MaxAllocBytes caps a single tensor allocation; requests above it fail with
// ErrAllocation. Hosts with a memory budget lower it at startup.
var MaxAllocBytes = math.MaxInt

// storage is the byte buffer shared by a tensor and the views taken from it.
type storage struct {
	bytes []byte
	refs  atomic.Int32
}

func newStorage(size int) *storage {
	s := &storage{bytes: make([]byte, size)}
	s.refs.Store(1)
	return s
}

func (s *storage) retain() *storage {
	s.refs.Add(1)
	return s
}

// RawTensor is a typed, strided, device-tagged view of shared storage.
// Views may carry strides and an offset that do not describe a dense
// row-major layout; see IsContiguous.
type RawTensor struct {
	buffer *storage
	shape  Shape
	stride []int // in elements
	dtype  DataType
	device Device
	offset int // in elements
}

// Allocator requests new tensor storage from the runtime.
// NewRaw is the default implementation.
type Allocator func(shape Shape, dtype DataType, device Device) (*RawTensor, error)

// NewRaw allocates a dense row-major tensor with zeroed storage.
// It fails with ErrAllocation when the shape is invalid or the request is too large.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	// Multiply with an overflow guard: a wrapped size would allocate too little.
	limit := math.MaxInt / dtype.Size()
	count := 1
	for _, dim := range shape {
		if count > limit/dim {
			return nil, fmt.Errorf("%w: %v elements of %s overflow", ErrAllocation, shape, dtype)
		}
		count *= dim
	}
	size := count * dtype.Size()
	if size > MaxAllocBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, limit is %d", ErrAllocation, size, MaxAllocBytes)
	}

	return &RawTensor{
		buffer: newStorage(size),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's dimension sizes.
func (r *RawTensor) Shape() Shape { return r.shape }

// Strides returns the distance between consecutive indices of each
// dimension, in elements.
func (r *RawTensor) Strides() []int { return r.stride }

// Offset returns the position of the first element in the shared storage.
func (r *RawTensor) Offset() int { return r.offset }

// DType returns the element type.
func (r *RawTensor) DType() DataType { return r.dtype }

// Device returns the device the storage is placed on.
func (r *RawTensor) Device() Device { return r.device }

// NumElements returns the number of logical elements.
func (r *RawTensor) NumElements() int { return r.shape.NumElements() }

// ByteSize returns the logical size in bytes, ignoring gaps in strided views.
func (r *RawTensor) ByteSize() int { return r.NumElements() * r.dtype.Size() }

// span returns the number of storage elements reachable from the offset.
func (r *RawTensor) span() int {
	n := 1
	for i, dim := range r.shape {
		n += (dim - 1) * r.stride[i]
	}
	return n
}

// Data returns the bytes addressed by the tensor, starting at its offset.
// The slice aliases the storage.
func (r *RawTensor) Data() []byte {
	size := r.dtype.Size()
	return r.buffer.bytes[r.offset*size : (r.offset+r.span())*size]
}

// elems reinterprets the addressed storage as []T after checking the dtype.
func elems[T any](r *RawTensor, want DataType) []T {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor holds %s, accessed as %s", r.dtype, want))
	}
	data := r.Data()
	//nolint:gosec // zero-copy reinterpretation, length bounded by span()
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), r.span())
}

// AsFloat32 returns the storage as []float32 without copying.
// For a contiguous tensor it holds exactly NumElements values in row-major
// order; views must be indexed through Strides.
// Panics if the tensor is not float32.
func (r *RawTensor) AsFloat32() []float32 { return elems[float32](r, Float32) }

// AsFloat64 is AsFloat32 for float64 tensors.
func (r *RawTensor) AsFloat64() []float64 { return elems[float64](r, Float64) }

// AsInt32 is AsFloat32 for int32 tensors.
func (r *RawTensor) AsInt32() []int32 { return elems[int32](r, Int32) }

// AsInt64 is AsFloat32 for int64 tensors.
func (r *RawTensor) AsInt64() []int64 { return elems[int64](r, Int64) }

// Clone returns another handle on the same storage and layout.
func (r *RawTensor) Clone() *RawTensor {
	return r.view(r.shape.Clone(), append([]int(nil), r.stride...), r.offset)
}

// view builds a tensor over r's storage and takes a reference on it.
func (r *RawTensor) view(shape Shape, stride []int, offset int) *RawTensor {
	return &RawTensor{
		buffer: r.buffer.retain(),
		shape:  shape,
		stride: stride,
		dtype:  r.dtype,
		device: r.device,
		offset: offset,
	}
}

// Release drops this handle's reference. The storage is freed with the last one.
func (r *RawTensor) Release() {
	if r.buffer.refs.Add(-1) == 0 {
		r.buffer.bytes = nil
	}
}

// IsUnique reports whether no other handle shares this tensor's storage.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.refs.Load() == 1
}

// String describes the tensor as "Tensor[dtype][shape] on device".
func (r *RawTensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", r.dtype, r.shape, r.device)
}
