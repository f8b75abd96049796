// Package container provides RIFF/WAV I/O for the one PCM layout this
// codec consumes (mono, 8000Hz, 16-bit), plus a reader for the raw
// 65-byte block stream of Microsoft's WAV49 GSM 6.10 ACM format.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// ErrUnsupportedFormat is returned when a WAV file's fmt chunk does not
// describe 16-bit mono PCM at 8000Hz.
var ErrUnsupportedFormat = errors.New("container: expected 16-bit mono PCM at 8000Hz")

// ErrPCMDataNotFound is returned when a WAV stream has no data chunk, or
// its data chunk arrives before a fmt chunk has been seen.
var ErrPCMDataNotFound = errors.New("container: PCM data chunk not found")

const (
	wavFormatPCM = 1
	fmtChunkSize = 16
)

// ReadPCM16Mono8kHz walks a RIFF/WAV stream down to its fmt and data
// chunks and returns the raw samples as an audio.IntBuffer. This is
// trimmed from the general-purpose chunk walk in CWBudde-wav's
// decoder.go (which also handles metadata, compressed formats and
// arbitrary channel counts) down to the one layout this codec needs.
func ReadPCM16Mono8kHz(r io.Reader) (*audio.IntBuffer, error) {
	p := riff.New(r)

	id, size, err := p.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("container: reading riff header: %w", err)
	}
	p.ID = id
	p.Size = size
	if p.ID != riff.RiffID {
		return nil, fmt.Errorf("container: %s: %w", p.ID, riff.ErrFmtNotSupported)
	}

	if err := binary.Read(r, binary.BigEndian, &p.Format); err != nil {
		return nil, fmt.Errorf("container: reading wave form type: %w", err)
	}

	var samples []int16
	var gotFmt bool

	for {
		chunk, err := p.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("container: reading chunk: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			var formatTag, numChannels, blockAlign, bitsPerSample uint16
			var sampleRate, avgBytesPerSec uint32
			if err := chunk.ReadLE(&formatTag); err != nil {
				return nil, err
			}
			if err := chunk.ReadLE(&numChannels); err != nil {
				return nil, err
			}
			if err := chunk.ReadLE(&sampleRate); err != nil {
				return nil, err
			}
			if err := chunk.ReadLE(&avgBytesPerSec); err != nil {
				return nil, err
			}
			if err := chunk.ReadLE(&blockAlign); err != nil {
				return nil, err
			}
			if err := chunk.ReadLE(&bitsPerSample); err != nil {
				return nil, err
			}
			chunk.Drain()

			if formatTag != wavFormatPCM || numChannels != 1 || sampleRate != 8000 || bitsPerSample != 16 {
				return nil, ErrUnsupportedFormat
			}
			gotFmt = true

		case riff.DataFormatID:
			if !gotFmt {
				return nil, ErrPCMDataNotFound
			}
			raw := make([]byte, chunk.Size)
			if _, err := io.ReadFull(chunk.R, raw); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("container: reading pcm data: %w", err)
			}
			samples = make([]int16, len(raw)/2)
			for i := range samples {
				samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
			}

		default:
			chunk.Drain()
		}
	}

	if !gotFmt || samples == nil {
		return nil, ErrPCMDataNotFound
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, v := range samples {
		buf.Data[i] = int(v)
	}
	return buf, nil
}

// WritePCM16Mono8kHz writes samples as a canonical 44-byte-header
// RIFF/WAV file: mono, 8000Hz, 16-bit PCM.
func WritePCM16Mono8kHz(w io.Writer, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	if err := writeChunkHeader(w, "RIFF", 36+dataSize); err != nil {
		return err
	}
	if _, err := w.Write([]byte("WAVE")); err != nil {
		return err
	}

	if err := writeChunkHeader(w, "fmt ", fmtChunkSize); err != nil {
		return err
	}
	fmtFields := []any{
		uint16(wavFormatPCM),
		uint16(1),     // mono
		uint32(8000),  // sample rate
		uint32(16000), // byte rate = sampleRate * blockAlign
		uint16(2),     // block align
		uint16(16),    // bits per sample
	}
	for _, f := range fmtFields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("container: writing fmt chunk: %w", err)
		}
	}

	if err := writeChunkHeader(w, "data", dataSize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("container: writing pcm data: %w", err)
	}
	return nil
}

func writeChunkHeader(w io.Writer, id string, size uint32) error {
	if _, err := w.Write([]byte(id)); err != nil {
		return fmt.Errorf("container: writing %q chunk id: %w", id, err)
	}
	if err := binary.Write(w, binary.LittleEndian, size); err != nil {
		return fmt.Errorf("container: writing %q chunk size: %w", id, err)
	}
	return nil
}
