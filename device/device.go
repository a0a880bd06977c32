// Package device models an optional external compute backend for the
// wide-accumulation matmul kernel: a CPU-backed "device" reached
// through the same upload/launch/download contract a real accelerator
// would expose, so a future GPU or NPU backend can be dropped in
// without touching the call sites in package p8.
package device

import "runtime"

const (
	// defaultGlobalMemory is reported when the host memory size cannot
	// be queried.
	defaultGlobalMemory = 16 << 30

	// maxAllocationFraction caps a single allocation to a fraction of
	// reported global memory, mirroring how real accelerators reserve
	// headroom for driver and scratch buffers.
	maxAllocationFraction = 4
)

// Device describes the capabilities of a compute device, queried once
// at Context creation time.
type Device struct {
	Name string

	// MaxAllocation is the largest single buffer the device accepts.
	MaxAllocation uint64

	// GlobalMemory is the total memory the device reports as available.
	GlobalMemory uint64

	// MaxWorkGroupSize is the most lanes a single kernel dispatch will
	// use, derived from host parallelism.
	MaxWorkGroupSize int

	// HostSIMD records whether the host CPU's feature set (including its
	// SIMD extensions) was successfully probed; it does not report which
	// extensions are present. It is informational only: the CPU-backed
	// device does not hand-vectorize table lookups, see DESIGN.md.
	HostSIMD bool
}

func probeDevice() Device {
	mem := systemMemory()
	lanes := runtime.GOMAXPROCS(0)
	if lanes < 1 {
		lanes = 1
	}
	return Device{
		Name:             "cpu0",
		MaxAllocation:    mem / maxAllocationFraction,
		GlobalMemory:     mem,
		MaxWorkGroupSize: lanes,
		HostSIMD:         hasHostSIMD(),
	}
}
