package dispatch

import (
	"fmt"

	"github.com/born-ml/extension/internal/tensor"
)

// BackendKey identifies the compute domain an implementation targets.
// Supporting another backend means adding a key and registering under it.
type BackendKey int

// Backend keys, one per tensor device.
const (
	CPU BackendKey = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns the key name.
func (k BackendKey) String() string {
	switch k {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return fmt.Sprintf("BackendKey(%d)", int(k))
	}
}

// KeyForDevice returns the backend key serving tensors on device d.
func KeyForDevice(d tensor.Device) (BackendKey, error) {
	switch d {
	case tensor.CPU:
		return CPU, nil
	case tensor.CUDA:
		return CUDA, nil
	case tensor.Vulkan:
		return Vulkan, nil
	case tensor.Metal:
		return Metal, nil
	case tensor.WebGPU:
		return WebGPU, nil
	default:
		return 0, fmt.Errorf("%w: device %s has no backend key", ErrUnsupportedBackend, d)
	}
}
