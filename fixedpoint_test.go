package gsm0610

import "testing"

// These cases are carried over from the reference codec's math_tests(),
// including the exact boundary values that distinguish a correct norm()
// from an off-by-one one.

func TestAddSaturates(t *testing.T) {
	if got := add(32000, 1000); got != 32767 {
		t.Fatalf("add(32000,1000) = %d, want 32767", got)
	}
	if got := add(-32000, -1000); got != -32768 {
		t.Fatalf("add(-32000,-1000) = %d, want -32768", got)
	}
}

func TestSubSaturates(t *testing.T) {
	if got := sub(-32000, 1000); got != -32768 {
		t.Fatalf("sub(-32000,1000) = %d, want -32768", got)
	}
	if got := sub(32000, -1000); got != 32767 {
		t.Fatalf("sub(32000,-1000) = %d, want 32767", got)
	}
}

func TestMult(t *testing.T) {
	cases := []struct {
		a, b, want int16
	}{
		{-32768, 32767 / 2, -16383},
		{-32768, -32768, 32767},
		{-32768, 32767, -32767},
		{32767, -32768, -32767},
	}
	for _, c := range cases {
		if got := mult(c.a, c.b); got != c.want {
			t.Errorf("mult(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMultR(t *testing.T) {
	cases := []struct {
		a, b, want int16
	}{
		{-32768, 32767 / 2, -16383},
		{-32768, 32768 / 2, -16384},
		{16384, 16384, 8192},
		{-16384, 16384, -8192},
		{-32768, -32768, 32767},
		{-32768, 32767, -32767},
		{32767, -32768, -32767},
		{32767, 0, 0},
		{32766, 0, 0},
	}
	for _, c := range cases {
		if got := mult_r(c.a, c.b); got != c.want {
			t.Errorf("mult_r(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := s_abs(-32767); got != 32767 {
		t.Fatalf("s_abs(-32767) = %d, want 32767", got)
	}
	if got := s_abs(32767); got != 32767 {
		t.Fatalf("s_abs(32767) = %d, want 32767", got)
	}
	if got := s_abs(-32768); got != 32767 {
		t.Fatalf("s_abs(-32768) = %d, want 32767 (saturation case)", got)
	}
}

func TestDiv(t *testing.T) {
	n := int16(32768 / 4)
	d := int16(32768 / 2)
	if got := div(n, d); got != 32768/2 {
		t.Fatalf("div(%d,%d) = %d, want %d", n, d, got, 32768/2)
	}
	if got := div(n, n); got != 32767 {
		t.Fatalf("div(n,n) = %d, want 32767 (self-division saturates)", got)
	}
}

func TestLAddSaturates(t *testing.T) {
	if got := L_add(2147483647, 1); got != 2147483647 {
		t.Fatalf("L_add(max,1) = %d, want max", got)
	}
	if got := L_add(-2147483648, -1); got != -2147483648 {
		t.Fatalf("L_add(min,-1) = %d, want min", got)
	}
}

func TestLSubSaturates(t *testing.T) {
	if got := L_sub(2147483647, -1); got != 2147483647 {
		t.Fatalf("L_sub(max,-1) = %d, want max", got)
	}
	if got := L_sub(-2147483648, 1); got != -2147483648 {
		t.Fatalf("L_sub(min,1) = %d, want min", got)
	}
}

func TestNorm(t *testing.T) {
	cases := []struct {
		a    int32
		want int16
	}{
		{2147483647, 0},
		{1073741825, 0},
		{1073741824, 0},
		{1073741823, 1},
		{-2147483648, 0},
		{-2147483647, 0},
		{-1073741825, 0},
		{-1073741824, 0},
		{-1073741823, 1},
	}
	for _, c := range cases {
		if got := norm(c.a); got != c.want {
			t.Errorf("norm(%d) = %d, want %d", c.a, got, c.want)
		}
	}
}
