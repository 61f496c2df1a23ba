package cron

import "testing"

func TestFieldBitsContainsAndSet(t *testing.T) {
	var b fieldBits
	b = b.set(3).set(7).set(59)
	for _, v := range []int{3, 7, 59} {
		if !b.contains(v) {
			t.Errorf("expected bit %d to be set", v)
		}
	}
	for _, v := range []int{0, 1, 8, 58} {
		if b.contains(v) {
			t.Errorf("expected bit %d to be clear", v)
		}
	}
}

func TestFieldBitsFirstLastSet(t *testing.T) {
	b := fieldBits(0).set(5).set(20).set(40)
	if got := b.firstSet(); got != 5 {
		t.Errorf("firstSet() = %d, want 5", got)
	}
	if got := b.lastSet(); got != 40 {
		t.Errorf("lastSet() = %d, want 40", got)
	}
}

func TestFieldBitsNext(t *testing.T) {
	b := fieldBits(0).set(1).set(10).set(30)

	if v, ok := b.next(1); v != 10 || !ok {
		t.Errorf("next(1) = (%d, %v), want (10, true)", v, ok)
	}
	if v, ok := b.next(30); v != 1 || ok {
		t.Errorf("next(30) = (%d, %v), want (1, false) [wrap]", v, ok)
	}
	if v, ok := b.next(29); v != 30 || !ok {
		t.Errorf("next(29) = (%d, %v), want (30, true)", v, ok)
	}
}

func TestRangeBits(t *testing.T) {
	b := rangeBits(10, 14)
	for v := 10; v <= 14; v++ {
		if !b.contains(v) {
			t.Errorf("rangeBits(10,14) missing %d", v)
		}
	}
	if b.contains(9) || b.contains(15) {
		t.Errorf("rangeBits(10,14) leaked outside the range")
	}
	if b.count() != 5 {
		t.Errorf("count() = %d, want 5", b.count())
	}
}

func TestFieldBitsIsEmpty(t *testing.T) {
	var b fieldBits
	if !b.isEmpty() {
		t.Errorf("zero value should be empty")
	}
	b = b.set(0)
	if b.isEmpty() {
		t.Errorf("bit 0 set should not be empty")
	}
}
