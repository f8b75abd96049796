// gsmwav encodes a mono 8kHz 16-bit wav file to a raw RFC 3551 GSM 06.10
// frame stream, or decodes a frame stream back to a wav file. Adapted
// from the teacher's gen-sine and wavtoaiff commands: flag-based, no
// subcommand framework, log.Fatal on error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kc1fsz/gsm0610"
	"github.com/kc1fsz/gsm0610/container"
)

func main() {
	mode := flag.String("mode", "", "encode or decode")
	input := flag.String("input", "", "input file path")
	output := flag.String("output", "", "output file path")
	flag.Parse()

	var err error
	switch *mode {
	case "encode":
		err = runEncode(*input, *output)
	case "decode":
		err = runDecode(*input, *output)
	default:
		log.Fatal("you must set -mode to encode or decode")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runEncode(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	pcm, err := container.ReadPCM16Mono8kHz(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := gsm0610.NewEncoder(true)
	var state gsm0610.PackingState
	frameBuf := make([]byte, gsm0610.FrameBytes)

	samples := pcm.Data
	frames := 0
	for off := 0; off+160 <= len(samples); off += 160 {
		var pcmFrame [160]int16
		for i := 0; i < 160; i++ {
			pcmFrame[i] = int16(samples[off+i])
		}

		params := enc.Encode(&pcmFrame)
		state.Reset()
		params.Pack(frameBuf, &state)
		if _, err := out.Write(frameBuf); err != nil {
			return err
		}
		frames++
	}

	fmt.Printf("encoded %d frames to %s\n", frames, outputPath)
	return nil
}

func runDecode(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := gsm0610.NewDecoder()
	frameBuf := make([]byte, gsm0610.FrameBytes)
	var samples []int16

	for {
		_, err := io.ReadFull(in, frameBuf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		params, err := gsm0610.UnpackChecked(frameBuf)
		if err != nil {
			return fmt.Errorf("frame %d: %w", len(samples)/160, err)
		}

		pcm := dec.Decode(params)
		samples = append(samples, pcm[:]...)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := container.WritePCM16Mono8kHz(out, samples); err != nil {
		return err
	}

	fmt.Printf("decoded %d frames to %s\n", len(samples)/160, outputPath)
	return nil
}
