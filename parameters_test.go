package gsm0610

import "testing"

func TestPack1Unpack1(t *testing.T) {
	var state PackingState
	area := make([]byte, 2)

	pack1(area, &state, 0b101, 3)
	if area[0] != 0b00000101 {
		t.Fatalf("area[0] = %08b, want 00000101", area[0])
	}
	pack1(area, &state, 0b01010101, 8)
	if area[0] != 0b10101101 {
		t.Fatalf("area[0] = %08b, want 10101101", area[0])
	}
	if area[1] != 0b00000010 {
		t.Fatalf("area[1] = %08b, want 00000010", area[1])
	}

	state.Reset()
	if got := unpack1(area, &state, 3); got != 0b101 {
		t.Fatalf("unpack1(3) = %b, want 101", got)
	}
	if got := unpack1(area, &state, 8); got != 0b01010101 {
		t.Fatalf("unpack1(8) = %b, want 01010101", got)
	}
}

func TestParametersRoundTrip(t *testing.T) {
	var p Parameters
	var state PackingState
	area := make([]byte, FrameBytes)
	p.Pack(area, &state)

	if got := state.BitsUsed(); got != 264 {
		t.Fatalf("BitsUsed() = %d, want 264", got)
	}
	if !IsValidFrame(area) {
		t.Fatalf("IsValidFrame() = false on freshly packed frame")
	}

	var p2 Parameters
	var state2 PackingState
	p2.Unpack(area, &state2)
	if got := state2.BitsUsed(); got != 264 {
		t.Fatalf("unpack BitsUsed() = %d, want 264", got)
	}
	if !p.Equal(&p2) {
		t.Fatalf("round-tripped Parameters do not match: %+v != %+v", p, p2)
	}
}

func TestPackedFrameHasSignatureNibble(t *testing.T) {
	p := &Parameters{}
	area := p.PackNew()
	if area[0]&0x0f != 0x0d {
		t.Fatalf("signature nibble = %x, want 0xd", area[0]&0x0f)
	}
}

func TestFieldWidthsClampToWire(t *testing.T) {
	// LARc widths are {6,6,5,5,4,4,3,3}; values must round-trip within
	// those widths for any value that actually fits.
	p := &Parameters{
		LARc: [8]uint16{63, 63, 31, 31, 15, 15, 7, 7},
	}
	for i := range p.SubSegs {
		p.SubSegs[i] = SubSegParameters{
			Nc:    127,
			Bc:    3,
			Mc:    3,
			Xmaxc: 63,
			XMc:   [13]uint16{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
		}
	}
	area := p.PackNew()
	p2 := UnpackNew(area)
	if !p.Equal(p2) {
		t.Fatalf("max-value Parameters did not round-trip: %+v != %+v", p, p2)
	}
}
