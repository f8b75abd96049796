package gsm0610

// shortTermAnalysis is the exact mathematical inverse of the decoder's
// short-term synthesis loop (the per-zone lattice in Decoder.cpp, section
// 5.3.4): given this frame's preprocessed samples s0 and the same
// per-zone reflection coefficients a decoder would reconstruct from this
// frame's LARc, it recovers the short-term residual wt[0..159] and
// carries the lattice state u[0..7] forward the same way the decoder's
// v[0..7] carries forward (v[8] is write-only there and never read back,
// which is why Encoder.h's state is only eight words wide). No
// Encoder.cpp survives to confirm this directly, so it is derived
// stage-by-stage by running the synthesis recurrence backwards.
func shortTermAnalysis(s0 *[160]int16, rrp *[4][9]int16, u *[8]int16) (wt [160]int16) {
	for k := 0; k < 160; k++ {
		zone := k2zone(k)
		r := &rrp[zone]
		old := *u
		d := s0[k]

		for m := 1; m <= 8; m++ {
			uPrev := old[m-1]
			next := add(d, mult_r(r[m], uPrev))
			if m <= 7 {
				u[m] = add(uPrev, mult_r(r[m], d))
			}
			d = next
		}

		u[0] = s0[k]
		wt[k] = d
	}
	return wt
}
