package gsm0610

// decodeLARpp reconstructs the current frame's decoded log-area ratios
// from the wire-coded LARc values (section 5.3.3 / the inverse of the
// encoder's 5.2.6 quantization). Index 0 of the result is unused, matching
// the 1-indexed larA/larB/larINVA tables.
func decodeLARpp(larc *[8]uint16) (larpp [9]int16) {
	for i := 0; i < 8; i++ {
		temp1 := add(int16(larc[i]), larMIC[i+1]) << 10
		temp1 = sub(temp1, larB[i+1]<<1)
		temp1 = mult_r(larINVA[i+1], temp1)
		larpp[i+1] = add(temp1, temp1)
	}
	return larpp
}

// interpolateZones spreads last (the previous frame's decoded LARpp) and
// curr (this frame's) across the four zones per Table 3.2 / section
// 5.2.9.1, returning one LAR vector per zone. Index 0 of each vector is
// unused.
func interpolateZones(last, curr *[9]int16) (zoned [4][9]int16) {
	for i := 1; i <= 8; i++ {
		p, c := last[i], curr[i]
		zoned[0][i] = add(add(p>>2, c>>2), p>>1)
		zoned[1][i] = add(p>>1, c>>1)
		zoned[2][i] = add(add(p>>2, c>>2), c>>1)
		zoned[3][i] = c
	}
	return zoned
}

// larToRp converts a vector of interpolated LAR values into reflection
// coefficients in place (section 5.2.9.2 / the inverse table applied on
// both the encoder's analysis filter and the decoder's synthesis filter).
// Index 0 is left untouched.
func larToRp(lar *[9]int16) {
	for i := 1; i <= 8; i++ {
		temp := lar[i]
		neg := temp < 0
		mag := s_abs(temp)

		var r int16
		switch {
		case mag < 11059:
			r = mag << 1
		case mag < 20070:
			r = mag + 11059
		default:
			r = add(mag>>2, 26112)
		}
		if neg {
			r = -r
		}
		lar[i] = r
	}
}

// decodeReflectionCoefficients reconstructs the per-zone reflection
// coefficients rrp[0..3][1..8] from params.LARc, interpolating against
// larppLast (the previous frame's decoded LARpp), then rotates larppLast
// to hold this frame's decoded LARpp for the next call. Used by the
// decoder's short-term synthesis and the encoder's local reconstruction,
// which each keep their own larppLast.
func decodeReflectionCoefficients(params *Parameters, larppLast *[9]int16) (rrp [4][9]int16) {
	curr := decodeLARpp(&params.LARc)
	rrp = interpolateZones(larppLast, &curr)
	for zone := range rrp {
		larToRp(&rrp[zone])
	}
	*larppLast = curr
	return rrp
}
