package p8

import (
	"math"
	"testing"
)

func encodeAll(xs []float64) []P8 {
	out := make([]P8, len(xs))
	for i, x := range xs {
		out[i] = Encode(x)
	}
	return out
}

func TestAddVectorDimensionMismatch(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3})
	b := encodeAll([]float64{1, 2})
	out := make([]P8, 3)
	err := AddVector(a, b, out)
	if err == nil {
		t.Fatal("expected a dimension-mismatch error")
	}
	if !IsDimensionMismatch(err) {
		t.Fatalf("err = %v, want a dimension mismatch", err)
	}
}

func TestAddVector(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3})
	b := encodeAll([]float64{1, 1, 1})
	out := make([]P8, 3)
	if err := AddVector(a, b, out); err != nil {
		t.Fatal(err)
	}
	want := encodeAll([]float64{2, 3, 4})
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = 0x%02X, want 0x%02X", i, out[i], want[i])
		}
	}
}

func TestDotProductDimensionMismatch(t *testing.T) {
	a := encodeAll([]float64{1, 2})
	b := encodeAll([]float64{1, 2, 3})
	if _, err := DotProduct(a, b); !IsDimensionMismatch(err) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}

func TestDotProductExactness(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3, 4, 5})
	b := encodeAll([]float64{2, 2, 2, 2, 2})
	got, err := DotProduct(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var want float64
	for i := range a {
		want += Decode(a[i]) * Decode(b[i])
	}
	if got != want {
		t.Errorf("DotProduct = %v, want %v (same order, bit-exact)", got, want)
	}
	if math.Abs(got-30.0) > 1.0 {
		t.Errorf("DotProduct([1..5], [2,2,2,2,2]) = %v, want close to 30.0", got)
	}
}

func TestDotProductP8LowerAccuracyButDefined(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3, 4, 5})
	b := encodeAll([]float64{2, 2, 2, 2, 2})
	got, err := DotProductP8(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got == NaR {
		t.Fatalf("DotProductP8 returned NaR for finite inputs")
	}
}

func TestMatmulDimensionValidationNoWrite(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3, 4}) // 2x2
	b := encodeAll([]float64{1, 0, 0})    // wrong: should be 2x2 (len 4)
	c := make([]P8, 4)
	sentinel := Encode(42.0)
	for i := range c {
		c[i] = sentinel
	}
	err := Matmul(a, b, c, 2, 2, 2)
	if !IsDimensionMismatch(err) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
	for i, v := range c {
		if v != sentinel {
			t.Errorf("c[%d] was written despite dimension mismatch", i)
		}
	}
}

func TestMatmulIdentity(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3, 4}) // [[1,2],[3,4]]
	identity := encodeAll([]float64{1, 0, 0, 1})
	c := make([]P8, 4)
	if err := Matmul(a, identity, c, 2, 2, 2); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if c[i] != a[i] {
			t.Errorf("c[%d] = 0x%02X, want 0x%02X (A * I = A)", i, c[i], a[i])
		}
	}
}

func TestMatmulScale(t *testing.T) {
	a := encodeAll([]float64{1, 2, 3, 4})
	scaleBy2 := encodeAll([]float64{2, 0, 0, 2})
	c := make([]P8, 4)
	if err := Matmul(a, scaleBy2, c, 2, 2, 2); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		want := Encode(2 * Decode(a[i]))
		if !WithinULP(c[i], want, DefaultULPTolerance) {
			t.Errorf("c[%d] = 0x%02X, want within 1 ULP of 0x%02X (doubled)", i, c[i], want)
		}
	}
}

func TestMatmulParallelAgreesWithMatmul(t *testing.T) {
	const m, k, n = 17, 9, 13
	xs := make([]float64, m*k)
	for i := range xs {
		xs[i] = float64(i%7) - 3
	}
	ys := make([]float64, k*n)
	for i := range ys {
		ys[i] = float64(i%5) - 2
	}
	a := encodeAll(xs)
	b := encodeAll(ys)

	seq := make([]P8, m*n)
	par := make([]P8, m*n)

	if err := Matmul(a, b, seq, m, k, n); err != nil {
		t.Fatal(err)
	}
	if err := MatmulParallel(a, b, par, m, k, n); err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("Matmul and MatmulParallel disagree at %d: 0x%02X vs 0x%02X", i, seq[i], par[i])
		}
	}
}

func TestMatmulParallelDimensionValidation(t *testing.T) {
	a := encodeAll([]float64{1, 2})
	b := encodeAll([]float64{1, 0, 0, 1})
	c := make([]P8, 4)
	if err := MatmulParallel(a, b, c, 2, 2, 2); !IsDimensionMismatch(err) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}
