package gsm0610

// This file has no surviving reference implementation in the pack either
// (Encoder.cpp is absent); it follows ETSI EN 300 961 sections 5.2.1-5.2.3's
// description of offset compensation and pre-emphasis as a leaky DC
// blocker followed by a first-difference filter, carried across frames
// via the encoder's z1/L_z2/mp state (matching Encoder.h's field names).

// downscale undoes the 13-bit left-alignment of the input PCM (section
// 5.2.1): a sign-preserving arithmetic right shift by 3, bringing samples
// down to the scale every downstream analysis step assumes.
func downscale(s *[160]int16) (so [160]int16) {
	for k := 0; k < 160; k++ {
		so[k] = s[k] >> 3
	}
	return so
}

// offsetCompensate removes the slowly-varying DC component from one
// frame, maintaining a leaky integrator across frames in z1 (the last
// raw input sample) and lz2 (the filter's 32-bit output, kept at Q15
// extra precision and decayed by a 1/256 leak each sample; lz2>>15 is
// the compensated sample).
func offsetCompensate(s *[160]int16, z1 *int16, lz2 *int32) (so [160]int16) {
	for k := 0; k < 160; k++ {
		diff := L_sub(int32(s[k]), int32(*z1))
		*z1 = s[k]
		leak := *lz2 >> 8
		*lz2 = L_add(L_sub(*lz2, leak), diff<<15)
		so[k] = clampI16(*lz2 >> 15)
	}
	return so
}

// preEmphasis applies the first-difference filter so(k) - beta*so(k-1)
// (beta = 0.86 in Q15), carrying the previous frame's last sample in mp.
func preEmphasis(so *[160]int16, mp *int16) (s0 [160]int16) {
	const beta int16 = 28180
	prev := *mp
	for k := 0; k < 160; k++ {
		s0[k] = sub(so[k], mult_r(beta, prev))
		prev = so[k]
	}
	*mp = prev
	return s0
}
