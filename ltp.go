package gsm0610

// ltpSearch finds the pitch lag in [40,120] that best predicts this
// sub-segment's short-term residual d[0..39] from the encoder's history
// dp (laid out as dp[k-lag+120] for lag up to 120, mirroring the
// decoder's drp indexing), then quantizes the corresponding gain against
// DLB (section 5.2.11). No Encoder.cpp survives to ground the exact
// normalization path, so the search picks the lag that maximizes raw
// cross-correlation and quantizes the gain from the correlation/energy
// ratio directly, clamped into Q15 before the DLB comparison.
func ltpSearch(d *[40]int16, dp *[120]int16) (lag int, bc uint16) {
	bestLag := 40
	var bestNum int32 = -1

	for l := 40; l <= 120; l++ {
		var num int32
		for k := 0; k < 40; k++ {
			num = L_add(num, int32(d[k])*int32(dp[k-l+120]))
		}
		if num > bestNum {
			bestNum = num
			bestLag = l
		}
	}

	var energy int32
	for k := 0; k < 40; k++ {
		v := int32(dp[k-bestLag+120])
		energy = L_add(energy, v*v)
	}

	gain := ltpGainRatio(bestNum, energy)
	return bestLag, quantizeLTPGain(gain)
}

// ltpGainRatio brings a correlation numerator and an energy denominator
// into Q15 scale via two independent norm() passes, one over num and one
// over energy, then undoes the difference between the two shifts once
// the quotient is formed, so the result reflects num/energy's true scale
// rather than whichever operand's shift happened to be reused for both
// (section 5.2.11). Returns 0 when the segment carries no exploitable
// energy or the correlation is non-positive.
func ltpGainRatio(num, energy int32) int16 {
	if energy <= 0 || num <= 0 {
		return 0
	}
	if num >= energy {
		return 32767
	}

	shiftNum := norm(num)
	shiftEnergy := norm(energy)

	n := num
	if shiftNum > 0 {
		n <<= uint(shiftNum)
	} else if shiftNum < 0 {
		n >>= uint(-shiftNum)
	}
	e := energy
	if shiftEnergy > 0 {
		e <<= uint(shiftEnergy)
	} else if shiftEnergy < 0 {
		e >>= uint(-shiftEnergy)
	}

	nQ := clampI16(n >> 16)
	eQ := clampI16(e >> 16)
	if eQ <= 0 {
		return 0
	}
	if nQ < 0 {
		nQ = 0
	}
	if nQ > eQ {
		nQ = eQ
	}

	gain := div(nQ, eQ)

	scal := shiftNum - shiftEnergy
	if scal > 0 {
		gain = asr(gain, scal)
	} else if scal < 0 {
		gain = asl(gain, -scal)
	}
	return gain
}

// quantizeLTPGain maps a Q15 gain estimate to the 2-bit index bc via the
// DLB decision levels (Table 5.3a).
func quantizeLTPGain(gain int16) uint16 {
	for i, level := range ltpDLB[:3] {
		if gain <= level {
			return uint16(i)
		}
	}
	return 3
}

// ltpResidual computes the open-loop short-term residual e(k) left after
// removing the long-term predictor's contribution (section 5.2.12).
func ltpResidual(d *[40]int16, dp *[120]int16, lag int, bc uint16) (e [40]int16) {
	brp := ltpQLB[bc]
	for k := 0; k < 40; k++ {
		pred := mult_r(brp, dp[k-lag+120])
		e[k] = sub(d[k], pred)
	}
	return e
}

// ltpReconstruct rebuilds the local short-term residual dpp(k) from the
// decoded excitation erp and the same predictor applied during encoding
// (section 5.2.18), then shifts dp's 120-sample history window forward
// by 40 samples.
func ltpReconstruct(dp *[120]int16, erp *[40]int16, lag int, bc uint16) {
	brp := ltpQLB[bc]
	var dpp [40]int16
	for k := 0; k < 40; k++ {
		pred := mult_r(brp, dp[k-lag+120])
		dpp[k] = add(erp[k], pred)
	}
	copy(dp[0:80], dp[40:120])
	copy(dp[80:120], dpp[:])
}
