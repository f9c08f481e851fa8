package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	sig := DeterministicSine(441, 44100, 0.5, 200)

	if len(sig) != 200 {
		t.Fatalf("length = %d, want 200", len(sig))
	}

	if sig[0] != 0 {
		t.Fatalf("first sample = %g, want 0", sig[0])
	}

	// 441 Hz at 44100 Hz repeats every 100 samples.
	for i := 0; i < 100; i++ {
		if math.Abs(sig[i]-sig[i+100]) > 1e-9 {
			t.Fatalf("sample %d: %g != %g one period later", i, sig[i], sig[i+100])
		}
	}

	// Quarter period hits the positive peak.
	if math.Abs(sig[25]-0.5) > 1e-12 {
		t.Fatalf("peak sample = %g, want 0.5", sig[25])
	}
}

func TestImpulse(t *testing.T) {
	sig := Impulse(8, 3)

	for i, v := range sig {
		want := 0.0
		if i == 3 {
			want = 1
		}

		if v != want {
			t.Fatalf("sample %d = %g, want %g", i, v, want)
		}
	}

	// Out-of-range positions yield silence, not a panic.
	for _, v := range Impulse(4, 9) {
		if v != 0 {
			t.Fatal("out-of-range impulse produced a nonzero sample")
		}
	}
}

func TestDCAndUnitStep(t *testing.T) {
	for _, v := range DC(0.25, 16) {
		if v != 0.25 {
			t.Fatalf("DC sample = %g, want 0.25", v)
		}
	}

	for _, v := range UnitStep(16) {
		if v != 1 {
			t.Fatalf("step sample = %g, want 1", v)
		}
	}
}

func TestRCStepReference(t *testing.T) {
	const (
		r  = 1000.0
		c  = 1e-6
		sr = 44100.0
	)

	ref := RCStepReference(r, c, sr, 2000)

	// Strictly rising toward 1, never reaching it.
	for i := 1; i < len(ref); i++ {
		if ref[i] <= ref[i-1] || ref[i] >= 1 {
			t.Fatalf("sample %d: %g after %g", i, ref[i], ref[i-1])
		}
	}

	// One time constant in, the curve sits at 1-1/e (half-sample grid).
	tauSamples := int(math.Floor(r * c * sr)) // 44.1 -> 44, grid point at 44.5 samples
	want := 1 - math.Exp(-(float64(tauSamples)+0.5)/(r*c*sr))

	if math.Abs(ref[tauSamples]-want) > 1e-12 {
		t.Fatalf("tau sample = %g, want %g", ref[tauSamples], want)
	}
}
