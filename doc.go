// Package gsm0610 implements the GSM 06.10 full-rate speech codec
// (ETSI EN 300 961, the RPE-LTP algorithm).
//
// Encoder converts 160-sample frames of 13-bit-left-aligned linear PCM,
// sampled at 8kHz, into a 260-bit Parameters record. Decoder reverses
// the process. Both halves share the fixed-point arithmetic primitives
// in fixedpoint.go and the inverse helpers in reflection.go/apcm.go.
//
// Parameters itself is wire-format data: Pack/Unpack serialize it to the
// 33-byte RFC 3551 §4.5.8.1 layout, with the 0x0D signature nibble in
// the low bits of the first byte.
//
// Package container (in the container subdirectory) provides WAV file
// glue for the cmd/ tools; it is not required to use Encoder/Decoder
// directly.
package gsm0610
