package gsm0610

import "testing"

func TestLtpSearchLagInRange(t *testing.T) {
	var d [40]int16
	var dp [120]int16
	for i := range d {
		d[i] = int16(i*13 - 200)
	}
	for i := range dp {
		dp[i] = int16(i*7 - 400)
	}
	lag, bc := ltpSearch(&d, &dp)
	if lag < 40 || lag > 120 {
		t.Fatalf("lag = %d, want in [40,120]", lag)
	}
	if bc > 3 {
		t.Fatalf("bc = %d, exceeds 2-bit wire width", bc)
	}
}

func TestLtpGainRatioZeroOnSilence(t *testing.T) {
	if g := ltpGainRatio(0, 0); g != 0 {
		t.Fatalf("ltpGainRatio(0,0) = %d, want 0", g)
	}
	if g := ltpGainRatio(-5, 1000); g != 0 {
		t.Fatalf("ltpGainRatio with non-positive numerator = %d, want 0", g)
	}
}

func TestLtpGainRatioIndependentNormalization(t *testing.T) {
	// num and energy each get their own norm()-derived shift (section
	// 5.2.11's two-pass normalization) rather than sharing one shift
	// derived from energy alone; values hand-computed against that
	// two-pass definition.
	cases := []struct {
		num, energy int32
		want        int16
	}{
		{1, 2, 16383},
		{1000, 3000, 8191},
		{7, 15, 15291},
		{1, 1000000, 0},
		{1000, 1000000, 31},
		{2000000, 1000000000, 63},
		{500, 2000, 8191},
		{1, 1, 32767},
		{12345, 99999, 4045},
		{999999, 1000000, 32766},
	}
	for _, c := range cases {
		if got := ltpGainRatio(c.num, c.energy); got != c.want {
			t.Fatalf("ltpGainRatio(%d,%d) = %d, want %d", c.num, c.energy, got, c.want)
		}
	}
}

func TestQuantizeLTPGainMonotonic(t *testing.T) {
	prev := uint16(0)
	for gain := int16(0); gain < 32000; gain += 500 {
		bc := quantizeLTPGain(gain)
		if bc < prev {
			t.Fatalf("quantizeLTPGain not monotonic at gain=%d: bc=%d < prev=%d", gain, bc, prev)
		}
		prev = bc
	}
}

func TestLtpResidualZeroGainPassesThrough(t *testing.T) {
	var d [40]int16
	var dp [120]int16
	for i := range d {
		d[i] = int16(i * 11)
	}
	e := ltpResidual(&d, &dp, 40, 0)
	if e != d {
		t.Fatalf("with bc=0 (zero predictor gain), residual should equal d unchanged")
	}
}

func TestLtpReconstructShiftsHistoryWindow(t *testing.T) {
	var dp [120]int16
	for i := range dp {
		dp[i] = int16(i)
	}
	var erp [40]int16
	original := dp
	ltpReconstruct(&dp, &erp, 40, 0)
	for i := 0; i < 80; i++ {
		if dp[i] != original[i+40] {
			t.Fatalf("dp[%d] = %d, want shifted value %d", i, dp[i], original[i+40])
		}
	}
}
