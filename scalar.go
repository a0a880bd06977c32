package p8

// Add returns the P8 sum of a and b via table lookup.
func Add(a, b P8) P8 {
	buildTables()
	return addTable[a][b]
}

// Sub returns the P8 difference a-b via table lookup.
func Sub(a, b P8) P8 {
	buildTables()
	return subTable[a][b]
}

// Mul returns the P8 product of a and b via table lookup.
func Mul(a, b P8) P8 {
	buildTables()
	return mulTable[a][b]
}

// Div returns the P8 quotient a/b via table lookup. Division by Zero
// yields NaR.
func Div(a, b P8) P8 {
	buildTables()
	return divTable[a][b]
}

// Neg returns -p. Neg(NaR) is NaR and Neg(Zero) is Zero.
func Neg(p P8) P8 {
	buildTables()
	return negTable[p]
}

// Abs returns |p|. Abs(NaR) is NaR.
func Abs(p P8) P8 {
	buildTables()
	return absTable[p]
}

// Recip returns 1/p. Recip(Zero) and Recip(NaR) are both NaR.
func Recip(p P8) P8 {
	buildTables()
	return recipTable[p]
}

// Compare returns -1, 0, or +1 according to whether decode(a) is less
// than, equal to, or greater than decode(b). It returns 0 if either
// operand is NaR, which is not a genuine equality: NaR has no ordering
// relation to anything, including itself. Callers who need a strict
// total order over NaR-free data should filter NaR first.
func Compare(a, b P8) int {
	if a == NaR || b == NaR {
		return 0
	}
	ia, ib := int8(a), int8(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}
