package container

import (
	"fmt"
	"io"

	"github.com/kc1fsz/gsm0610"
)

// wav49BlockSize is the size, in bytes, of one WAV49 block: two GSM
// frames (260 bits each) packed back to back, filling all 520 bits.
const wav49BlockSize = 65

// DecodeWAV49 reads a stream of Microsoft GSM 6.10 ACM blocks (format
// tag 0x31, WAV49 framing: two 260-bit frames packed into each 65-byte
// block) and returns the unpacked Parameters pairs, so a caller can feed
// them through Decoder just like any RFC 3551 frame stream. Ported from
// CWBudde-wav/gsm.go's unpackWAV49Block, re-expressed against this
// module's own Parameters type in place of that package's gsmFrame.
func DecodeWAV49(r io.Reader) ([]*gsm0610.Parameters, error) {
	var out []*gsm0610.Parameters

	block := make([]byte, wav49BlockSize)
	for {
		_, err := io.ReadFull(r, block)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("container: reading wav49 block: %w", err)
		}

		p1, p2, err := unpackWAV49Block(block)
		if err != nil {
			return nil, err
		}
		out = append(out, p1, p2)
	}
	return out, nil
}

func unpackWAV49Block(data []byte) (f1, f2 *gsm0610.Parameters, err error) {
	if len(data) < wav49BlockSize {
		return nil, nil, fmt.Errorf("container: wav49 block too short: %d bytes, need %d", len(data), wav49BlockSize)
	}

	f1 = &gsm0610.Parameters{}
	f2 = &gsm0610.Parameters{}

	c := 0
	var sr uint16

	sr = uint16(data[c])
	c++
	f1.LARc[0] = sr & 0x3f
	sr >>= 6
	sr |= uint16(data[c]) << 2
	c++
	f1.LARc[1] = sr & 0x3f
	sr >>= 6
	sr |= uint16(data[c]) << 4
	c++
	f1.LARc[2] = sr & 0x1f
	sr >>= 5
	f1.LARc[3] = sr & 0x1f
	sr >>= 5
	sr |= uint16(data[c]) << 2
	c++
	f1.LARc[4] = sr & 0xf
	sr >>= 4
	f1.LARc[5] = sr & 0xf
	sr >>= 4
	sr |= uint16(data[c]) << 2
	c++
	f1.LARc[6] = sr & 0x7
	sr >>= 3
	f1.LARc[7] = sr & 0x7
	sr >>= 3

	for s := 0; s < 4; s++ {
		ss := &f1.SubSegs[s]
		sr |= uint16(data[c]) << 4
		c++
		ss.Nc = sr & 0x7f
		sr >>= 7
		ss.Bc = sr & 0x3
		sr >>= 2
		ss.Mc = sr & 0x3
		sr >>= 2
		sr |= uint16(data[c]) << 1
		c++
		ss.Xmaxc = sr & 0x3f
		sr >>= 6
		ss.XMc[0] = sr & 0x7
		sr >>= 3
		sr = uint16(data[c])
		c++
		ss.XMc[1] = sr & 0x7
		sr >>= 3
		ss.XMc[2] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 2
		c++
		ss.XMc[3] = sr & 0x7
		sr >>= 3
		ss.XMc[4] = sr & 0x7
		sr >>= 3
		ss.XMc[5] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 1
		c++
		ss.XMc[6] = sr & 0x7
		sr >>= 3
		ss.XMc[7] = sr & 0x7
		sr >>= 3
		ss.XMc[8] = sr & 0x7
		sr >>= 3
		sr = uint16(data[c])
		c++
		ss.XMc[9] = sr & 0x7
		sr >>= 3
		ss.XMc[10] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 2
		c++
		ss.XMc[11] = sr & 0x7
		sr >>= 3
		ss.XMc[12] = sr & 0x7
		sr >>= 3
	}

	frameChain := sr & 0xf

	sr = frameChain
	sr |= uint16(data[c]) << 4
	c++
	f2.LARc[0] = sr & 0x3f
	sr >>= 6
	f2.LARc[1] = sr & 0x3f
	sr >>= 6
	sr = uint16(data[c])
	c++
	f2.LARc[2] = sr & 0x1f
	sr >>= 5
	sr |= uint16(data[c]) << 3
	c++
	f2.LARc[3] = sr & 0x1f
	sr >>= 5
	f2.LARc[4] = sr & 0xf
	sr >>= 4
	sr |= uint16(data[c]) << 2
	c++
	f2.LARc[5] = sr & 0xf
	sr >>= 4
	f2.LARc[6] = sr & 0x7
	sr >>= 3
	f2.LARc[7] = sr & 0x7
	sr >>= 3

	for s := 0; s < 4; s++ {
		ss := &f2.SubSegs[s]
		sr = uint16(data[c])
		c++
		ss.Nc = sr & 0x7f
		sr >>= 7
		sr |= uint16(data[c]) << 1
		c++
		ss.Bc = sr & 0x3
		sr >>= 2
		ss.Mc = sr & 0x3
		sr >>= 2
		sr |= uint16(data[c]) << 5
		c++
		ss.Xmaxc = sr & 0x3f
		sr >>= 6
		ss.XMc[0] = sr & 0x7
		sr >>= 3
		ss.XMc[1] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 1
		c++
		ss.XMc[2] = sr & 0x7
		sr >>= 3
		ss.XMc[3] = sr & 0x7
		sr >>= 3
		ss.XMc[4] = sr & 0x7
		sr >>= 3
		sr = uint16(data[c])
		c++
		ss.XMc[5] = sr & 0x7
		sr >>= 3
		ss.XMc[6] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 2
		c++
		ss.XMc[7] = sr & 0x7
		sr >>= 3
		ss.XMc[8] = sr & 0x7
		sr >>= 3
		ss.XMc[9] = sr & 0x7
		sr >>= 3
		sr |= uint16(data[c]) << 1
		c++
		ss.XMc[10] = sr & 0x7
		sr >>= 3
		ss.XMc[11] = sr & 0x7
		sr >>= 3
		ss.XMc[12] = sr & 0x7
		sr >>= 3
	}

	return f1, f2, nil
}
