package device

import (
	"fmt"
	"sync"

	"github.com/mstavros/p8"
)

// DecodeTable is the device-resident copy of the host's 256-entry P8
// decode table. It is uploaded once per Context and reused by every
// Matmul dispatch against that Context.
type DecodeTable struct {
	values [256]float64
}

// Context is an execution context against a single Device. It holds
// the uploaded decode table and mediates every buffer transfer and
// kernel dispatch against that device.
type Context struct {
	mu     sync.Mutex
	device Device
	table  *DecodeTable
}

// forceUnavailableForTest lets tests exercise the device-unavailable
// path without actually starving the host of CPUs.
var forceUnavailableForTest bool

// NewContext acquires the host's CPU-backed compute device.
func NewContext() (*Context, error) {
	if forceUnavailableForTest {
		return nil, &DeviceUnavailableError{Reason: "no compute device reported by host"}
	}
	dev := probeDevice()
	if dev.MaxWorkGroupSize < 1 {
		return nil, &DeviceUnavailableError{Reason: "host reports zero usable lanes"}
	}
	return &Context{device: dev}, nil
}

// Capabilities reports the device's capacity limits.
func (c *Context) Capabilities() Device {
	return c.device
}

// Upload copies the host's decode table to the device. It must be
// called at least once before Matmul.
func (c *Context) Upload(toDouble *[256]float64) (DecodeTable, error) {
	if toDouble == nil {
		return DecodeTable{}, &BufferTransferError{Op: "Upload", Err: fmt.Errorf("nil decode table")}
	}
	t := DecodeTable{values: *toDouble}
	c.mu.Lock()
	c.table = &t
	c.mu.Unlock()
	return t, nil
}

// Matmul dispatches a matrix multiply to the device. A, B, and C are
// staged into device-side buffers, the kernel runs across the
// device's lanes, and the result is copied back into w.C. C is left
// untouched if validation or capacity checks fail.
func (c *Context) Matmul(w MatmulWorkload) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if need := w.bytes(); need > c.device.MaxAllocation {
		return &DeviceCapacityError{Op: "Matmul", Requested: need, Limit: c.device.MaxAllocation}
	}

	c.mu.Lock()
	table := c.table
	c.mu.Unlock()
	if table == nil {
		return &BufferTransferError{Op: "Matmul", Err: fmt.Errorf("no decode table uploaded")}
	}

	devA := append([]p8.P8(nil), w.A...)
	devB := append([]p8.P8(nil), w.B...)
	devC := make([]p8.P8, len(w.C))

	if err := launchMatmul(devA, devB, devC, w.M, w.K, w.N, table, c.device.MaxWorkGroupSize); err != nil {
		return &KernelLaunchError{Op: "Matmul", Err: err}
	}

	if len(devC) != len(w.C) {
		return &BufferTransferError{Op: "Matmul", Err: fmt.Errorf("result buffer size %d, want %d", len(devC), len(w.C))}
	}
	copy(w.C, devC)
	return nil
}

// Close releases the Context's uploaded state.
func (c *Context) Close() error {
	c.mu.Lock()
	c.table = nil
	c.mu.Unlock()
	return nil
}
