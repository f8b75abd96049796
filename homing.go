package gsm0610

// homingSampleValue is the 13-bit-left-aligned sample value (0x0008) that
// fills every position of the encoder homing frame.
const homingSampleValue int16 = 0x0008

// isHomingFrame reports whether frame is the 160-sample encoder homing
// frame: every sample equal to homingSampleValue.
func isHomingFrame(frame *[160]int16) bool {
	for _, s := range frame {
		if s != homingSampleValue {
			return false
		}
	}
	return true
}

// homingOutputParameters is the fixed Parameters record a homing-capable
// encoder substitutes for the frame immediately following the homing
// frame. No concrete ETSI Annex A bit pattern survives in original_source,
// so this is the encoder's own pipeline run once on the homing frame
// starting from a fresh home state — a pure function of nothing but the
// homing frame itself, matching the "reset() restores home exactly" /
// "ordering guarantee" invariants the encoder already has to satisfy.
func homingOutputParameters() *Parameters {
	tmp := NewEncoder(false)
	var home [160]int16
	for i := range home {
		home[i] = homingSampleValue
	}
	return tmp.Encode(&home)
}
