// gsmvector runs the codec against ETSI-style conformance vectors: an
// .inp/.cod pair exercises the encoder, a .cod/.out pair exercises the
// decoder. Vector files hold raw 16-bit little-endian samples (.inp/.out)
// or raw 76-word little-endian Parameters records (.cod), matching
// original_source/tests/unit-test-1.cpp's encoder_test/decoder_test
// layout rather than the RFC 3551 bit-packed wire format.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kc1fsz/gsm0610"
)

// wordsPerRecord is sizeof(Parameters) in 16-bit words in the ETSI test
// harness: 8 LARc plus 4 sub-segments of (Nc,Bc,Mc,Xmaxc,13 XMc).
const wordsPerRecord = 8 + 4*(4+13)

func main() {
	mode := flag.String("mode", "", "encode or decode")
	inpPath := flag.String("inp", "", "raw 16-bit PCM input file (encode mode)")
	codPath := flag.String("cod", "", "raw Parameters record file")
	outPath := flag.String("out", "", "raw 16-bit PCM output file (decode mode)")
	flag.Parse()

	var segments int
	var err error

	switch *mode {
	case "encode":
		segments, err = runEncoderVector(*inpPath, *codPath)
	case "decode":
		segments, err = runDecoderVector(*codPath, *outPath)
	default:
		log.Fatal("you must set -mode to encode or decode")
	}

	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d segments matched\n", segments)
}

func runEncoderVector(inpPath, codPath string) (int, error) {
	inp, err := os.Open(inpPath)
	if err != nil {
		return 0, err
	}
	defer inp.Close()

	cod, err := os.Open(codPath)
	if err != nil {
		return 0, err
	}
	defer cod.Close()

	enc := gsm0610.NewEncoder(true)

	var segment int
	for {
		pcm, err := readPCMFrame(inp)
		if err == io.EOF {
			return segment, nil
		}
		if err != nil {
			return segment, err
		}

		want, err := readParametersRecord(cod)
		if err == io.EOF {
			return segment, nil
		}
		if err != nil {
			return segment, err
		}

		got := enc.Encode(&pcm)
		if !got.Equal(want) {
			return segment, fmt.Errorf("segment %d: encoded parameters do not match vector", segment)
		}
		segment++
	}
}

func runDecoderVector(codPath, outPath string) (int, error) {
	cod, err := os.Open(codPath)
	if err != nil {
		return 0, err
	}
	defer cod.Close()

	out, err := os.Open(outPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	dec := gsm0610.NewDecoder()

	var segment int
	for {
		params, err := readParametersRecord(cod)
		if err == io.EOF {
			return segment, nil
		}
		if err != nil {
			return segment, err
		}

		want, err := readPCMFrame(out)
		if err == io.EOF {
			return segment, nil
		}
		if err != nil {
			return segment, err
		}

		got := dec.Decode(params)
		if got != want {
			return segment, fmt.Errorf("segment %d: decoded pcm does not match vector", segment)
		}
		segment++
	}
}

func readPCMFrame(r io.Reader) ([160]int16, error) {
	var frame [160]int16
	if err := binary.Read(r, binary.LittleEndian, &frame); err != nil {
		return frame, err
	}
	return frame, nil
}

func readParametersRecord(r io.Reader) (*gsm0610.Parameters, error) {
	var words [wordsPerRecord]uint16
	if err := binary.Read(r, binary.LittleEndian, &words); err != nil {
		return nil, err
	}

	p := &gsm0610.Parameters{}
	idx := 0
	for i := 0; i < 8; i++ {
		p.LARc[i] = words[idx]
		idx++
	}
	for j := 0; j < 4; j++ {
		ss := &p.SubSegs[j]
		ss.Nc = words[idx]
		idx++
		ss.Bc = words[idx]
		idx++
		ss.Mc = words[idx]
		idx++
		ss.Xmaxc = words[idx]
		idx++
		for i := 0; i < 13; i++ {
			ss.XMc[i] = words[idx]
			idx++
		}
	}
	return p, nil
}
