package tensor

import (
	"fmt"
	"strings"
)

// Device is the compute device a tensor's storage is placed on.
type Device int

// Devices known to the runtime. Storage for every device is host memory;
// the tag is what operators and the dispatcher look at.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

var deviceNames = [...]string{
	CPU:    "CPU",
	CUDA:   "CUDA",
	Vulkan: "Vulkan",
	Metal:  "Metal",
	WebGPU: "WebGPU",
}

// String returns the device name, e.g. "CUDA".
func (d Device) String() string {
	if d < 0 || int(d) >= len(deviceNames) {
		return fmt.Sprintf("Device(%d)", int(d))
	}
	return deviceNames[d]
}

// ParseDevice parses a device name, case-insensitively. The empty string
// selects the CPU.
func ParseDevice(s string) (Device, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CPU, nil
	}
	for d, name := range deviceNames {
		if strings.EqualFold(name, s) {
			return Device(d), nil
		}
	}
	return CPU, fmt.Errorf("unknown device %q", s)
}
