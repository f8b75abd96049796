package gsm0610

// Encoder turns 160-sample PCM frames into Parameters records. Its
// fields mirror Encoder.h's private state one-for-one: z1/L_z2 drive
// offset compensation, mp drives pre-emphasis, LARpp_last/u drive the
// short-term analysis lattice, and dp holds the 120-sample long-term
// residual history used by the LTP search and local reconstruction.
type Encoder struct {
	homingSupported bool
	lastFrameHome   bool

	z1  int16
	lz2 int32
	mp  int16

	larppLast [9]int16
	u         [8]int16

	dp [120]int16
}

// NewEncoder returns an Encoder in its home state. homingSupported
// controls whether encoder-homing frames trigger an automatic reset
// after being encoded (section 6).
func NewEncoder(homingSupported bool) *Encoder {
	e := &Encoder{homingSupported: homingSupported}
	e.Reset()
	return e
}

// Reset returns the encoder to its home state.
func (e *Encoder) Reset() {
	e.z1 = 0
	e.lz2 = 0
	e.mp = 0
	e.larppLast = [9]int16{}
	e.u = [8]int16{}
	e.dp = [120]int16{}
	e.lastFrameHome = false
}

// Encode analyzes one 160-sample frame and returns its Parameters. If the
// previous frame was the encoder homing frame, the record this call
// returns is overridden with the fixed canonical homing output before it
// goes back to the caller — the one-frame latency documented in section 6.
func (e *Encoder) Encode(pcm *[160]int16) *Parameters {
	overrideWithHomingOutput := e.lastFrameHome
	e.lastFrameHome = false

	down := downscale(pcm)
	so := offsetCompensate(&down, &e.z1, &e.lz2)
	s0 := preEmphasis(&so, &e.mp)

	acf := autocorrelate(&s0)
	r := schurRecursion(&acf)
	lar := rToLAR(&r)
	larc := quantizeLARc(&lar)

	params := &Parameters{LARc: larc}

	rrp := decodeReflectionCoefficients(params, &e.larppLast)
	wt := shortTermAnalysis(&s0, &rrp, &e.u)

	for j := 0; j < 4; j++ {
		var d [40]int16
		copy(d[:], wt[j*40:j*40+40])
		params.SubSegs[j] = encodeSubSegment(&d, &e.dp)
	}

	if e.homingSupported && isHomingFrame(pcm) {
		e.Reset()
		e.lastFrameHome = true
	}

	if overrideWithHomingOutput {
		return homingOutputParameters()
	}
	return params
}
