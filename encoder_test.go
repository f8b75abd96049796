package gsm0610

import "testing"

func sineFrame(phase int) [160]int16 {
	var f [160]int16
	for i := range f {
		// cheap integer approximation of a tone, 13-bit-left-aligned range
		v := ((phase+i)%200 - 100) * 60
		f[i] = int16(v)
	}
	return f
}

func TestEncodeProducesValidWireFields(t *testing.T) {
	enc := NewEncoder(true)
	frame := sineFrame(0)
	params := enc.Encode(&frame)

	widths := [8]uint16{63, 63, 31, 31, 15, 15, 7, 7}
	for i, c := range params.LARc {
		if c > widths[i] {
			t.Fatalf("LARc[%d] = %d, exceeds wire width %d", i, c, widths[i])
		}
	}
	for j, ss := range params.SubSegs {
		if ss.Nc > 127 {
			t.Fatalf("SubSegs[%d].Nc = %d, exceeds 7-bit wire width", j, ss.Nc)
		}
		if ss.Bc > 3 {
			t.Fatalf("SubSegs[%d].Bc = %d, exceeds 2-bit wire width", j, ss.Bc)
		}
		if ss.Mc > 3 {
			t.Fatalf("SubSegs[%d].Mc = %d, exceeds 2-bit wire width", j, ss.Mc)
		}
		if ss.Xmaxc > 63 {
			t.Fatalf("SubSegs[%d].Xmaxc = %d, exceeds 6-bit wire width", j, ss.Xmaxc)
		}
		for i, c := range ss.XMc {
			if c > 7 {
				t.Fatalf("SubSegs[%d].XMc[%d] = %d, exceeds 3-bit wire width", j, i, c)
			}
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	frame := sineFrame(17)
	a := NewEncoder(true).Encode(&frame)
	b := NewEncoder(true).Encode(&frame)
	if !a.Equal(b) {
		t.Fatalf("two fresh encoders given the same frame produced different Parameters")
	}
}

func TestEncodeThenPackThenUnpackRoundTrips(t *testing.T) {
	enc := NewEncoder(true)
	frame := sineFrame(5)
	params := enc.Encode(&frame)

	buf := params.PackNew()
	if len(buf) != FrameBytes {
		t.Fatalf("PackNew produced %d bytes, want %d", len(buf), FrameBytes)
	}
	if !IsValidFrame(buf) {
		t.Fatalf("packed frame does not carry the signature nibble")
	}

	got := UnpackNew(buf)
	if !got.Equal(params) {
		t.Fatalf("unpacked Parameters differ from the ones that were packed")
	}
}

func homingFrame() [160]int16 {
	var home [160]int16
	for i := range home {
		home[i] = homingSampleValue
	}
	return home
}

func TestHomingFrameResetsEncoderState(t *testing.T) {
	enc := NewEncoder(true)
	frame := sineFrame(31)
	enc.Encode(&frame)

	home := homingFrame()
	enc.Encode(&home)

	fresh := NewEncoder(true)
	if enc.z1 != fresh.z1 || enc.lz2 != fresh.lz2 || enc.mp != fresh.mp {
		t.Fatalf("encoder state was not reset after a homing frame")
	}
	if enc.dp != fresh.dp || enc.u != fresh.u || enc.larppLast != fresh.larppLast {
		t.Fatalf("encoder filter history was not reset after a homing frame")
	}
}

func TestHomingOutputConvergesWithinTwoFrames(t *testing.T) {
	enc := NewEncoder(true)
	home := homingFrame()

	warmup := sineFrame(31)
	enc.Encode(&warmup)

	// frame N: the homing frame itself. Its own output need not be the
	// canonical homing output yet — only state gets reset.
	enc.Encode(&home)

	// frame N+1: any input at all. Its returned parameters must be
	// overridden with the fixed canonical homing output.
	next := sineFrame(99)
	got := enc.Encode(&next)

	want := homingOutputParameters()
	if !got.Equal(want) {
		t.Fatalf("frame after the homing frame did not converge to the canonical homing output")
	}

	// frame N+2: the override only lasts one frame.
	another := sineFrame(7)
	after := enc.Encode(&another)
	if after.Equal(want) {
		t.Fatalf("homing override leaked past the one frame of latency")
	}
}
