// Package p8 implements P8, an 8-bit tapered (posit-style) floating-point
// format with one exponent bit, plus the arithmetic built on top of it.
//
// A P8 value is a single byte. Two code points are reserved: 0x00 is exact
// zero, and 0x80 is NaR ("not a real"), the sole non-numeric code. Every
// other byte decodes to a finite, non-zero binary64 value through a
// variable-length regime/exponent/fraction layout (see Decode).
//
// Arithmetic on P8 values is table-driven: Add, Sub, Mul, Div, Neg, Abs and
// Recip are all O(1) lookups into tables built once, lazily, from Decode and
// Encode. The wide-accumulation kernels (DotProduct, AddVector, Matmul)
// decode their operands to binary64, accumulate there, and quantize back to
// P8 only at the sink, so reductions never pay for double-rounding through
// repeated P8 encodes.
//
// MatmulParallel runs the identical matmul contract across goroutine lanes,
// and the device subpackage runs it again through an explicit host/device
// data-flow contract, so a caller can move from scalar to data-parallel to
// device-offloaded execution without any change in numerical behavior.
package p8
