package device

import "github.com/mstavros/p8"

// MatmulWorkload describes a matrix multiply dispatched to a Context:
// C (m x n) = A (m x k) * B (k x n), all stored row-major.
type MatmulWorkload struct {
	A, B, C []p8.P8
	M, K, N int
}

// Validate checks the workload's buffers against its declared
// dimensions before any memory is touched. The error type matches the
// one host kernels use for the same failure, since a caller dispatching
// to either backend should be able to handle dimension mismatches
// identically.
func (w MatmulWorkload) Validate() error {
	if len(w.A) != w.M*w.K {
		return p8.NewDimensionMismatchError("device.Matmul", "A", w.M*w.K, len(w.A))
	}
	if len(w.B) != w.K*w.N {
		return p8.NewDimensionMismatchError("device.Matmul", "B", w.K*w.N, len(w.B))
	}
	if len(w.C) != w.M*w.N {
		return p8.NewDimensionMismatchError("device.Matmul", "C", w.M*w.N, len(w.C))
	}
	return nil
}

// bytes returns the total size of the workload's three buffers, used
// against the device's reported MaxAllocation.
func (w MatmulWorkload) bytes() uint64 {
	return uint64(len(w.A) + len(w.B) + len(w.C))
}
