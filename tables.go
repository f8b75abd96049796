package gsm0610

// Table 5.1 (page 43): LAR encoding coefficients. Index 0 is unused; the
// draft indexes these 1..8.
var larA = [9]int16{0, 20480, 20480, 20480, 20480, 13964, 15360, 8534, 9036}
var larB = [9]int16{0, 0, 0, 2048, -2560, 94, -1792, -341, -1144}
var larMIC = [9]int16{0, -32, -32, -16, -16, -8, -8, -4, -4}
var larMAC = [9]int16{0, 31, 31, 15, 15, 7, 7, 3, 3}

// Table 5.2 (page 43): inverse of larA, used to undo the LAR quantization
// when reconstructing reflection coefficients.
var larINVA = [9]int16{0, 13107, 13107, 13107, 13107, 19223, 17476, 31454, 29708}

// Table 5.3a/5.3b (page 43): LTP gain quantizer decision and reconstruction
// levels.
var ltpDLB = [4]int16{6554, 16384, 26214, 32767}
var ltpQLB = [4]int16{3277, 11469, 21299, 32767}

// Table 5.4 (page 43): weighting filter coefficients for the RPE encoder.
var weightingH = [11]int16{-134, -374, 0, 2054, 5741, 8192, 5741, 2054, 0, -374, -134}

// Table 5.5 (page 44): normalized inverse mantissa for APCM encoding.
var apcmNRFAC = [8]int16{29128, 26215, 23832, 21846, 20165, 18725, 17476, 16384}

// Table 5.6 (page 44): normalized direct mantissa for APCM decoding.
var apcmFAC = [8]int16{18431, 20479, 22527, 24575, 26623, 28671, 30719, 32767}

// Widths, in bits, of LARc[0..7] as written to the wire (Table 1.1).
var larcWidths = [8]uint16{6, 6, 5, 5, 4, 4, 3, 3}

// Zone lengths per Table 3.2: the frame's 160 samples split into four runs
// over which the short-term filter coefficients interpolate.
var zoneLengths = [4]int{13, 14, 13, 40}
