package gsm0610

// Decoder reconstructs 160-sample PCM frames from Parameters records,
// carrying the long-term and short-term synthesis filter state across
// calls exactly as Decoder.cpp does: nrp holds the last valid pitch lag
// (substituted whenever a received Nc is out of range), drp is the
// 120-sample long-term residual history, LARpp_last/v drive the
// short-term synthesis lattice, and msr carries the de-emphasis filter's
// one-sample memory.
type Decoder struct {
	nrp       int16
	drp       [120]int16
	larppLast [9]int16
	v         [9]int16
	msr       int16
}

// NewDecoder returns a Decoder in its home state.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset returns the decoder to its home state (section 6, decoder
// homing).
func (d *Decoder) Reset() {
	d.nrp = 40
	d.drp = [120]int16{}
	d.larppLast = [9]int16{}
	d.v = [9]int16{}
	d.msr = 0
}

// Decode reconstructs one 160-sample PCM frame from params.
func (d *Decoder) Decode(params *Parameters) [160]int16 {
	var wt [160]int16

	for j := 0; j < 4; j++ {
		ss := &params.SubSegs[j]

		exp, mant := decodeBlockMax(ss.Xmaxc)
		erp := inverseAPCM(params, j, exp, mant)

		nr := int16(ss.Nc)
		if ss.Nc < 40 || ss.Nc > 120 {
			nr = d.nrp
		}
		d.nrp = nr

		brp := ltpQLB[ss.Bc]
		var dpp [40]int16
		for k := 0; k < 40; k++ {
			pred := mult_r(brp, d.drp[k-int(nr)+120])
			dpp[k] = add(erp[k], pred)
		}

		copy(d.drp[0:80], d.drp[40:120])
		copy(d.drp[80:120], dpp[:])

		for k := 0; k < 40; k++ {
			wt[j*40+k] = d.drp[k+80]
		}
	}

	rrp := decodeReflectionCoefficients(params, &d.larppLast)

	var out [160]int16
	for k := 0; k < 160; k++ {
		zone := k2zone(k)
		r := &rrp[zone]
		sri := wt[k]
		for i := 1; i <= 8; i++ {
			sri = sub(sri, mult_r(r[9-i], d.v[8-i]))
			d.v[9-i] = add(d.v[8-i], mult_r(r[9-i], sri))
		}
		d.v[0] = sri

		temp := add(sri, mult_r(d.msr, 28180))
		d.msr = temp

		srop := add(d.msr, d.msr)
		out[k] = srop & ^int16(7)
	}
	return out
}
