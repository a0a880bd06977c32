package device

import (
	"fmt"
	"sync"

	"github.com/mstavros/p8"
)

// launchMatmul partitions the m output rows across lanes and runs
// each lane's slice on its own goroutine, joining before returning.
// A panic in any lane is recovered and reported as a kernel launch
// failure rather than crashing the dispatching goroutine.
func launchMatmul(a, b, c []p8.P8, m, k, n int, table *DecodeTable, lanes int) error {
	if lanes < 1 {
		lanes = 1
	}
	if lanes > m {
		lanes = m
	}
	if lanes < 1 {
		lanes = 1
	}
	rowsPerLane := (m + lanes - 1) / lanes

	var wg sync.WaitGroup
	errs := make(chan error, lanes)
	for lane := 0; lane < lanes; lane++ {
		rowStart := lane * rowsPerLane
		rowEnd := rowStart + rowsPerLane
		if rowEnd > m {
			rowEnd = m
		}
		if rowStart >= rowEnd {
			continue
		}
		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("panic during dispatch: %v", r)
				}
			}()
			matmulRows(a, b, c, k, n, table, rowStart, rowEnd)
		}(rowStart, rowEnd)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// matmulRows computes output rows [rowStart, rowEnd) of C = A*B,
// decoding through the uploaded table and accumulating in float64,
// quantizing to P8 once per output element.
func matmulRows(a, b, c []p8.P8, k, n int, table *DecodeTable, rowStart, rowEnd int) {
	for i := rowStart; i < rowEnd; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for l := 0; l < k; l++ {
				sum += table.values[a[i*k+l]] * table.values[b[l*n+j]]
			}
			c[i*n+j] = p8.Encode(sum)
		}
	}
}
