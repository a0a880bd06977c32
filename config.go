// Package p8 configuration constants
package p8

// Table memory layout
const (
	// DecodeTableEntries is the number of entries in the decode table
	// (one per possible P8 octet).
	DecodeTableEntries = 256

	// BinaryTableEntries is the number of entries in each 256x256
	// binary-operation table.
	BinaryTableEntries = DecodeTableEntries * DecodeTableEntries
)

// Parallel matmul tuning
const (
	// DefaultMatmulLaneRows is the minimum number of output rows handed
	// to a single MatmulParallel lane before splitting further; below
	// this, the fixed cost of a goroutine outweighs the work it does.
	DefaultMatmulLaneRows = 4
)

// Numerical constants
const (
	// DefaultULPTolerance is the default maximum ULP distance WithinULP
	// treats as "the same value", used for reciprocal-involution and
	// multiplicative-identity checks where a single rounding step can
	// legitimately land one code point away.
	DefaultULPTolerance = 1
)
