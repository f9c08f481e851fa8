package rc

import (
	"testing"

	"github.com/cwbudde/algo-circuit/internal/testutil"
)

func TestStereoChannelsAreIndependent(t *testing.T) {
	st, err := NewStereo(44100, WithMethod(MethodClosedForm))
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	mono, err := New(44100, WithMethod(MethodClosedForm))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	left := testutil.DeterministicSine(440, 44100, 1, 256)
	right := testutil.DC(0, 256)

	for i := range left {
		l, r := st.ProcessSample(left[i], right[i])

		if want := mono.ProcessSample(left[i]); l != want {
			t.Fatalf("sample %d: left channel %g, want %g", i, l, want)
		}

		// A silent right input must stay silent regardless of the left
		// channel's state.
		if r != 0 {
			t.Fatalf("sample %d: right channel leaked %g", i, r)
		}
	}
}

func TestStereoProcessInPlace(t *testing.T) {
	st, err := NewStereo(48000)
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	ref, err := NewStereo(48000)
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	left := testutil.DeterministicSine(330, 48000, 0.7, 128)
	right := testutil.DeterministicSine(550, 48000, 0.7, 128)

	wantL := make([]float64, len(left))
	wantR := make([]float64, len(right))

	for i := range left {
		wantL[i], wantR[i] = ref.ProcessSample(left[i], right[i])
	}

	st.ProcessInPlace(left, right)

	for i := range left {
		if left[i] != wantL[i] || right[i] != wantR[i] {
			t.Fatalf("sample %d: in-place (%g, %g), want (%g, %g)",
				i, left[i], right[i], wantL[i], wantR[i])
		}
	}
}

func TestStereoSetKnobsAndReset(t *testing.T) {
	st, err := NewStereo(44100)
	if err != nil {
		t.Fatalf("NewStereo() error = %v", err)
	}

	if err := st.SetKnobs(4700, 2.2e-6); err != nil {
		t.Fatalf("SetKnobs() error = %v", err)
	}

	if st.Left().Resistance() != 4700 || st.Right().Resistance() != 4700 {
		t.Fatal("SetKnobs did not reach both channels")
	}

	_, _ = st.ProcessSample(1, 1)
	st.Reset()

	l, r := st.ProcessSample(0, 0)
	if l != 0 || r != 0 {
		t.Fatalf("Reset left residual state: (%g, %g)", l, r)
	}
}

func TestStereoRejectsInvalidOptions(t *testing.T) {
	if _, err := NewStereo(44100, WithResistance(0)); err == nil {
		t.Fatal("expected error for invalid resistance")
	}
}
