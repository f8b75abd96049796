package gsm0610

// k2zone maps a sample index k in [0,159] to its interpolation zone
// (Table 3.2). Implemented as a branch rather than a table lookup because
// it sits in the innermost loop of both the encoder's short-term analysis
// and the decoder's short-term synthesis.
func k2zone(k int) int {
	switch {
	case k < 13:
		return 0
	case k < 27:
		return 1
	case k < 40:
		return 2
	default:
		return 3
	}
}
