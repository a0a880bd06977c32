package p8

// WithinULP reports whether a and b differ by at most tolerance units in
// the last place of the P8 codespace. Because P8 octets, read as
// two's-complement signed integers, are order-preserving with respect to
// Decode on non-NaR values, ULP distance is simply the absolute
// difference between the two octets' signed values — no decoding is
// required.
//
// WithinULP returns false if either operand is NaR: NaR is not "close to"
// any value, including itself.
func WithinULP(a, b P8, tolerance int) bool {
	if a == NaR || b == NaR {
		return false
	}
	diff := int(int8(a)) - int(int8(b))
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
