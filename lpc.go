package gsm0610

// This file has no surviving reference implementation anywhere in the
// retrieval pack: original_source ships Encoder.h's tables and
// signatures but not Encoder.cpp, so there is no LPC analysis, Schur
// recursion, autocorrelation, or weighting-filter source to port from.
// It is built directly from the structure of ETSI EN 300 961 §5.2, using
// the one piece that IS grounded in the pack (larToRp, lifted from the
// decoder side) run backwards to get its analysis-side inverse.

// autocorrelate computes the nine autocorrelation terms ACF[0..8] of the
// pre-processed frame s0 (section 5.2.4), using 32-bit accumulators so
// the running sums never need mid-loop saturation.
func autocorrelate(s0 *[160]int16) (acf [9]int32) {
	for lag := 0; lag <= 8; lag++ {
		var sum int32
		for k := lag; k < 160; k++ {
			sum = L_add(sum, int32(s0[k])*int32(s0[k-lag]))
		}
		acf[lag] = sum
	}
	return acf
}

// schurRecursion runs the Schur/Levinson-style recursion over the
// autocorrelation sequence to produce reflection coefficients r[1..8] as
// Q15 values (section 5.2.5). Index 0 is unused. A silent frame (acf[0]
// == 0) yields all-zero coefficients.
func schurRecursion(acf *[9]int32) (r [9]int16) {
	if acf[0] == 0 {
		return r
	}

	// Normalize into Q15 working precision: shift every term left by
	// acf[0]'s norm so acf[0] sits near full 32-bit scale, then take the
	// top 16 bits. The acf terms can run into the billions for a
	// full-scale frame (section 5.2.4's energy sums), so the right shift
	// by 16 is what actually narrows them into int16 range; the left
	// shift alone only maximizes precision before that narrowing.
	shift := norm(acf[0])
	var p, q [9]int16
	for i := 0; i <= 8; i++ {
		v := int64(acf[i])
		if shift > 0 {
			v <<= uint(shift)
		} else if shift < 0 {
			v >>= uint(-shift)
		}
		p[i] = clampI16(int32(v >> 16))
		q[i] = p[i]
	}

	order := 8
	for i := 1; i <= order; i++ {
		if q[0] == 0 {
			break
		}
		num := p[i]
		den := q[0]
		neg := (num < 0) != (den < 0)
		n := s_abs(num)
		d := s_abs(den)
		if d == 0 {
			break
		}
		if n > d {
			n = d
		}
		ratio := div(n, d)
		if neg {
			ratio = -ratio
		}
		r[i] = -ratio

		var np, nq [9]int16
		for j := 0; j <= order-i; j++ {
			np[j] = add(p[j+1], mult_r(r[i], q[j]))
			nq[j] = add(q[j], mult_r(r[i], p[j+1]))
		}
		p, q = np, nq
	}
	return r
}

// rToLAR converts reflection coefficients r[1..8] into the log-area
// ratios consumed by quantizeLARc (section 5.2.5's forward direction).
// It is the exact piecewise inverse of larToRp: given the same three
// linear segments that function expands LAR into, this collapses r back
// down, so encode and decode share one piecewise model by construction.
func rToLAR(r *[9]int16) (lar [9]int16) {
	for i := 1; i <= 8; i++ {
		temp := r[i]
		neg := temp < 0
		mag := s_abs(temp)

		var l int16
		switch {
		case mag < 22118:
			l = mag >> 1
		case mag < 31129:
			l = sub(mag, 11059)
		default:
			l = sub(mag, 26112) << 2
		}
		if neg {
			l = -l
		}
		lar[i] = l
	}
	return lar
}

// quantizeLARc maps log-area ratios to the unsigned 6/5/4/3-bit wire
// codes LARc[0..7] (section 5.2.6): scale by A[i], offset by B[i], round,
// clip to [MIC[i],MAC[i]], then shift up by -MIC[i] to make the code
// unsigned.
func quantizeLARc(lar *[9]int16) (larc [8]uint16) {
	for i := 1; i <= 8; i++ {
		temp := mult(larA[i], lar[i])
		temp = add(temp, larB[i])
		temp = add(temp, 256)
		temp = temp >> 9

		if temp < larMIC[i] {
			temp = larMIC[i]
		}
		if temp > larMAC[i] {
			temp = larMAC[i]
		}
		larc[i-1] = uint16(sub(temp, larMIC[i]))
	}
	return larc
}
