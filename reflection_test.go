package gsm0610

import "testing"

func TestDecodeLARppZeroInput(t *testing.T) {
	larc := [8]uint16{}
	larpp := decodeLARpp(&larc)
	for i := 1; i <= 8; i++ {
		want := mult_r(larINVA[i], larMIC[i]<<10-larB[i]<<1) // matches the formula with larc[i]=0
		want = add(want, want)
		if larpp[i] != want {
			t.Fatalf("larpp[%d] = %d, want %d", i, larpp[i], want)
		}
	}
}

func TestInterpolateZonesLastZoneEqualsCurrent(t *testing.T) {
	var last, curr [9]int16
	for i := 1; i <= 8; i++ {
		last[i] = 100
		curr[i] = -200
	}
	zoned := interpolateZones(&last, &curr)
	for i := 1; i <= 8; i++ {
		if zoned[3][i] != curr[i] {
			t.Fatalf("zone 3 [%d] = %d, want curr value %d", i, zoned[3][i], curr[i])
		}
	}
}

func TestLarToRpZero(t *testing.T) {
	var lar [9]int16
	larToRp(&lar)
	for i := 1; i <= 8; i++ {
		if lar[i] != 0 {
			t.Fatalf("larToRp(0)[%d] = %d, want 0", i, lar[i])
		}
	}
}

func TestDecodeReflectionCoefficientsUpdatesLarppLast(t *testing.T) {
	params := &Parameters{}
	var larppLast [9]int16
	_ = decodeReflectionCoefficients(params, &larppLast)
	want := decodeLARpp(&params.LARc)
	if larppLast != want {
		t.Fatalf("larppLast = %v, want %v", larppLast, want)
	}
}
