package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if v, ok := AddOverflowSafe(1, 2); !ok || v != 3 {
		t.Fatalf("AddOverflowSafe(1,2) = %d, %v", v, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatal("expected overflow")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatal("expected underflow")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if v, ok := MulOverflowSafe(24, 100); !ok || v != 2400 {
		t.Fatalf("MulOverflowSafe(24,100) = %d, %v", v, ok)
	}
	if v, ok := MulOverflowSafe(0, math.MaxInt); !ok || v != 0 {
		t.Fatalf("MulOverflowSafe(0,max) = %d, %v", v, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatal("expected overflow")
	}
}

func TestCheckTableBounds(t *testing.T) {
	// 4 records of 24 bytes starting at 64 inside a 256-byte buffer.
	end, err := CheckTableBounds(256, 64, 4, 24)
	if err != nil {
		t.Fatalf("CheckTableBounds: %v", err)
	}
	if end != 160 {
		t.Fatalf("end = %d, want 160", end)
	}

	if _, err := CheckTableBounds(100, 64, 4, 24); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
	if _, err := CheckTableBounds(100, -1, 1, 1); err == nil {
		t.Fatal("expected negative-offset error")
	}
	if _, err := CheckTableBounds(100, 0, math.MaxInt, 24); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestSliceAndHas(t *testing.T) {
	b := make([]byte, 16)
	if s, ok := Slice(b, 4, 8); !ok || len(s) != 8 {
		t.Fatalf("Slice(4,8): %v, %v", s, ok)
	}
	if _, ok := Slice(b, 12, 8); ok {
		t.Fatal("Slice beyond end should fail")
	}
	if _, ok := Slice(b, -1, 4); ok {
		t.Fatal("negative offset should fail")
	}
	if !Has(b, 0, 16) || Has(b, 0, 17) {
		t.Fatal("Has bounds check wrong")
	}
}
