package gsm0610

// FrameBytes is the size, in bytes, of a packed Parameters record
// (RFC 3551 §4.5.8.1).
const FrameBytes = 33

// frameSignature is the constant value carried in the low nibble of the
// first packed byte.
const frameSignature = 0x0d

var packMasks = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}

// PackingState is a bit cursor into a packed frame, advanced one field at
// a time by pack1/unpack1.
type PackingState struct {
	BytePtr uint16
	BitPtr  uint16
}

// BitsUsed returns the number of bits the cursor has advanced over.
func (s *PackingState) BitsUsed() uint16 {
	return s.BytePtr*8 + s.BitPtr
}

// Reset returns the cursor to the start of the stream.
func (s *PackingState) Reset() {
	s.BytePtr = 0
	s.BitPtr = 0
}

func (s *PackingState) advance() {
	s.BitPtr++
	if s.BitPtr == 8 {
		s.BytePtr++
		s.BitPtr = 0
	}
}

// pack1 writes the low n bits (n<=8) of value into stream at the cursor,
// LSB-first, advancing the cursor by n bits.
func pack1(stream []byte, state *PackingState, value uint16, n uint16) {
	work := byte(value & 0xff)
	for b := uint16(0); b < n; b++ {
		if work&1 != 0 {
			stream[state.BytePtr] |= packMasks[state.BitPtr]
		} else {
			stream[state.BytePtr] &^= packMasks[state.BitPtr]
		}
		work >>= 1
		state.advance()
	}
}

// unpack1 reads n bits (n<=8) from stream at the cursor, LSB-first,
// advancing the cursor by n bits.
func unpack1(stream []byte, state *PackingState, n uint16) byte {
	var work byte
	for b := uint16(0); b < n; b++ {
		if stream[state.BytePtr]&packMasks[state.BitPtr] != 0 {
			work |= packMasks[b]
		}
		state.advance()
	}
	return work
}

// SubSegParameters holds one sub-segment's worth of LTP and RPE parameters.
type SubSegParameters struct {
	Nc    uint16
	Bc    uint16
	Mc    uint16
	Xmaxc uint16
	XMc   [13]uint16
}

// Equal reports whether two sub-segments carry identical field values.
func (s *SubSegParameters) Equal(other *SubSegParameters) bool {
	if s.Nc != other.Nc || s.Bc != other.Bc || s.Mc != other.Mc || s.Xmaxc != other.Xmaxc {
		return false
	}
	for i := range s.XMc {
		if s.XMc[i] != other.XMc[i] {
			return false
		}
	}
	return true
}

func (s *SubSegParameters) pack(stream []byte, state *PackingState) {
	pack1(stream, state, s.Nc, 7)
	pack1(stream, state, s.Bc, 2)
	pack1(stream, state, s.Mc, 2)
	pack1(stream, state, s.Xmaxc, 6)
	for i := range s.XMc {
		pack1(stream, state, s.XMc[i], 3)
	}
}

func (s *SubSegParameters) unpack(stream []byte, state *PackingState) {
	s.Nc = uint16(unpack1(stream, state, 7))
	s.Bc = uint16(unpack1(stream, state, 2))
	s.Mc = uint16(unpack1(stream, state, 2))
	s.Xmaxc = uint16(unpack1(stream, state, 6))
	for i := range s.XMc {
		s.XMc[i] = uint16(unpack1(stream, state, 3))
	}
}

// Parameters is the 260-bit payload produced by Encode and consumed by
// Decode: eight quantized log-area ratios plus four sub-segments of LTP
// and RPE codes.
type Parameters struct {
	LARc    [8]uint16
	SubSegs [4]SubSegParameters
}

// Equal reports whether two Parameters records carry identical field
// values.
func (p *Parameters) Equal(other *Parameters) bool {
	for i := range p.LARc {
		if p.LARc[i] != other.LARc[i] {
			return false
		}
	}
	for i := range p.SubSegs {
		if !p.SubSegs[i].Equal(&other.SubSegs[i]) {
			return false
		}
	}
	return true
}

// IsValidFrame reports whether buf's first byte carries the 0x0D
// signature nibble in its low bits.
func IsValidFrame(buf []byte) bool {
	return len(buf) > 0 && buf[0]&0x0f == frameSignature
}

// Pack writes p into stream (which must be at least FrameBytes long) per
// RFC 3551 §4.5.8.1, starting at state's cursor.
func (p *Parameters) Pack(stream []byte, state *PackingState) {
	pack1(stream, state, frameSignature, 4)
	for i, width := range larcWidths {
		pack1(stream, state, p.LARc[i], width)
	}
	for i := range p.SubSegs {
		p.SubSegs[i].pack(stream, state)
	}
}

// PackNew allocates a fresh FrameBytes-length buffer and packs p into it.
func (p *Parameters) PackNew() []byte {
	stream := make([]byte, FrameBytes)
	var state PackingState
	p.Pack(stream, &state)
	return stream
}

// Unpack reads p's fields from stream starting at state's cursor,
// discarding the 4-bit signature nibble.
func (p *Parameters) Unpack(stream []byte, state *PackingState) {
	unpack1(stream, state, 4)
	for i, width := range larcWidths {
		p.LARc[i] = uint16(unpack1(stream, state, width))
	}
	for i := range p.SubSegs {
		p.SubSegs[i].unpack(stream, state)
	}
}

// UnpackNew unpacks a fresh Parameters record from stream starting at
// byte 0.
func UnpackNew(stream []byte) *Parameters {
	p := &Parameters{}
	var state PackingState
	p.Unpack(stream, &state)
	return p
}
