package gsm0610

import "errors"

// ErrInvalidFrame is returned when a packed frame's signature nibble
// does not match the constant value RFC 3551 §4.5.8.1 specifies for
// GSM 06.10.
var ErrInvalidFrame = errors.New("gsm0610: invalid frame signature")

// UnpackChecked is UnpackNew with a signature check: it returns
// ErrInvalidFrame instead of silently unpacking a malformed frame.
func UnpackChecked(stream []byte) (*Parameters, error) {
	if !IsValidFrame(stream) {
		return nil, ErrInvalidFrame
	}
	return UnpackNew(stream), nil
}
