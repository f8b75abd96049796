package gsm0610

// weightingFilter applies the 11-tap FIR from Table 5.4 to the LTP
// residual e[0..39] (section 5.2.13), treating samples outside the
// sub-segment as zero since this implementation keeps no cross-segment
// context for the filter's five-sample tails.
func weightingFilter(e *[40]int16) (x [40]int16) {
	for i := 0; i < 40; i++ {
		var acc int32
		for j := 0; j < 11; j++ {
			idx := i + j - 5
			if idx < 0 || idx >= 40 {
				continue
			}
			acc = L_add(acc, int32(weightingH[j])*int32(e[idx]))
		}
		x[i] = clampI16(acc >> 13)
	}
	return x
}

// rpeGridSelect picks the decimated grid (one of four phases, each 13
// samples spaced 3 apart) carrying the most energy, returning its phase
// Mc and the 13 selected samples xM (section 5.2.14).
func rpeGridSelect(x *[40]int16) (mc uint16, xM [13]int16) {
	var bestEnergy int32 = -1
	for m := 0; m < 4; m++ {
		var energy int32
		for i := 0; i < 13; i++ {
			pos := m + i*3
			if pos >= 40 {
				break
			}
			v := int32(x[pos])
			energy = L_add(energy, v*v)
		}
		if energy > bestEnergy {
			bestEnergy = energy
			mc = uint16(m)
		}
	}
	for i := 0; i < 13; i++ {
		pos := int(mc) + i*3
		if pos < 40 {
			xM[i] = x[pos]
		}
	}
	return mc, xM
}

// encodeSubSegment runs one 40-sample sub-segment through LTP search,
// weighting, RPE grid selection and APCM quantization, producing the
// wire parameters and the locally-reconstructed excitation used to keep
// the encoder's dp history in sync with what the decoder will see
// (sections 5.2.11-5.2.18).
func encodeSubSegment(d *[40]int16, dp *[120]int16) SubSegParameters {
	lag, bc := ltpSearch(d, dp)
	e := ltpResidual(d, dp, lag, bc)
	x := weightingFilter(&e)
	mc, xM := rpeGridSelect(&x)

	var xmax int16
	for _, v := range xM {
		if m := s_abs(v); m > xmax {
			xmax = m
		}
	}
	xmaxc, exp, mant := encodeBlockMax(xmax)
	xMc := quantizeAPCM(xM, exp, mant)

	ss := SubSegParameters{
		Nc:    uint16(lag),
		Bc:    bc,
		Mc:    mc,
		Xmaxc: xmaxc,
		XMc:   xMc,
	}

	decExp, decMant := decodeBlockMax(xmaxc)
	erp := reconstructGrid(mc, xMc, decExp, decMant)
	ltpReconstruct(dp, &erp, lag, bc)

	return ss
}

// reconstructGrid inverts this sub-segment's own just-computed codes
// through the same path the decoder will use, so the encoder's dp
// history matches what a decoder fed this frame would build (section
// 5.2.16/5.2.17, reusing inverseAPCM's arithmetic without needing a
// *Parameters wrapper).
func reconstructGrid(mc uint16, xMc [13]uint16, exp, mant int16) (erp [40]int16) {
	temp1 := apcmFAC[mant]
	temp2 := sub(6, exp)
	temp3 := asl(1, sub(temp2, 1))

	var xMp [13]int16
	for i := 0; i < 13; i++ {
		temp := (int16(xMc[i]) << 1) - 7
		temp <<= 12
		temp = mult_r(temp1, temp)
		temp = add(temp, temp3)
		xMp[i] = asr(temp, temp2)
	}
	for i := 0; i < 13; i++ {
		erp[int(mc)+i*3] = xMp[i]
	}
	return erp
}
