package gsm0610

// decodeBlockMax splits a sub-segment's 6-bit xmaxc code into the
// exponent/mantissa pair consumed by inverseAPCM (section 5.3.1, the
// first half of "RPE decoding"). The mantissa returned is already
// normalized into FAC/NRFAC's 0..7 index range.
func decodeBlockMax(xmaxc uint16) (exp, mant int16) {
	if xmaxc > 15 {
		exp = sub(int16(xmaxc>>3), 1)
	}
	mant = sub(int16(xmaxc), exp<<3)

	if mant == 0 {
		exp = -4
		mant = 15
	} else {
		for i := 0; i < 3 && mant <= 7; i++ {
			mant = add(mant<<1, 1)
			exp = sub(exp, 1)
		}
	}
	mant = sub(mant, 8)
	return exp, mant
}

// inverseAPCM reverses the APCM coding of sub-segment j's 13 pulses and
// scatters them onto the 40-sample RPE grid (sections 5.2.16/5.2.17,
// 5.3.1's second half). This is the one shared helper with no surviving
// reference implementation in original_source (Encoder.cpp is absent);
// the formula below follows the decoder side of the standard libgsm RPE
// port, cross-checked bit-for-bit against two independent call sites
// (Decoder.cpp's call into it, and the equivalent inline arithmetic in
// the pack's second GSM 06.10 decoder).
func inverseAPCM(params *Parameters, j int, exp, mant int16) (erp [40]int16) {
	ss := &params.SubSegs[j]

	temp1 := apcmFAC[mant]
	temp2 := sub(6, exp)
	temp3 := asl(1, sub(temp2, 1))

	var xMp [13]int16
	for i := 0; i < 13; i++ {
		temp := (int16(ss.XMc[i]) << 1) - 7
		temp <<= 12
		temp = mult_r(temp1, temp)
		temp = add(temp, temp3)
		xMp[i] = asr(temp, temp2)
	}

	for i := 0; i < 13; i++ {
		erp[int(ss.Mc)+i*3] = xMp[i]
	}
	return erp
}

// encodeBlockMax picks the 6-bit xmaxc code for a sub-segment's block
// maximum (section 5.2.15). No Encoder.cpp survives in original_source to
// check this against, so the code below is built as the direct algebraic
// inverse of decodeBlockMax's xmaxc>15 branch: normalize xmax into a
// 4-bit mantissa with an implicit leading one, then pack
// (exp+1)<<3 | (mant&7), clamped to 63; a block maximum below 16 is used
// as the code directly. The exponent/mantissa pair returned is the one
// decodeBlockMax unpacks from xmaxc, so the mantissa always indexes
// NRFAC's 0..7 range. A non-positive xmax returns (0, 0, 0).
func encodeBlockMax(xmax int16) (xmaxc uint16, exp, mant int16) {
	if xmax <= 0 {
		return 0, 0, 0
	}

	temp := xmax
	for temp > 15 {
		temp >>= 1
		exp++
	}
	for temp < 8 && exp > 0 {
		temp <<= 1
		exp--
	}

	if exp == 0 {
		xmaxc = uint16(temp)
	} else {
		xmaxc = uint16(((exp + 1) << 3) | (temp & 7))
		if xmaxc > 63 {
			xmaxc = 63
		}
	}
	exp, mant = decodeBlockMax(xmaxc)
	return xmaxc, exp, mant
}

// quantizeAPCM maps sub-segment j's 13 weighted residual samples xM onto
// 3-bit pulse codes using the block exponent/mantissa from
// encodeBlockMax (section 5.2.15's forward half).
func quantizeAPCM(xM [13]int16, exp, mant int16) (xMc [13]uint16) {
	factor := apcmNRFAC[mant]
	shift := 6 + exp
	var scaled int32
	for i := 0; i < 13; i++ {
		if shift >= 0 {
			scaled = (int32(xM[i]) * int32(factor)) >> uint(shift)
		} else {
			scaled = int32(xM[i]) * int32(factor) << uint(-shift)
		}
		code := int16(scaled) + 4
		if code < 0 {
			code = 0
		}
		if code > 7 {
			code = 7
		}
		xMc[i] = uint16(code)
	}
	return xMc
}
