package response_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-circuit/circuit/rc"
	"github.com/cwbudde/algo-circuit/measure/response"
)

func TestMagnitudeValidation(t *testing.T) {
	if _, err := response.Magnitude(nil, 1024); !errors.Is(err, response.ErrNilProcessor) {
		t.Fatalf("nil processor: error = %v, want ErrNilProcessor", err)
	}

	s, err := rc.New(44100)
	if err != nil {
		t.Fatalf("rc.New() error = %v", err)
	}

	for _, size := range []int{0, 4, 12, 1000, -1024} {
		if _, err := response.Magnitude(s, size); !errors.Is(err, response.ErrInvalidFFTSize) {
			t.Fatalf("size %d: error = %v, want ErrInvalidFFTSize", size, err)
		}
	}
}

func TestMagnitudeDCGainIsUnity(t *testing.T) {
	for _, method := range []rc.Method{rc.MethodWaveDigital, rc.MethodStateSpace, rc.MethodClosedForm} {
		t.Run(method.String(), func(t *testing.T) {
			s, err := rc.New(44100, rc.WithMethod(method))
			if err != nil {
				t.Fatalf("rc.New() error = %v", err)
			}

			mag, err := response.Magnitude(s, 4096)
			if err != nil {
				t.Fatalf("Magnitude() error = %v", err)
			}

			if len(mag) != 4096/2+1 {
				t.Fatalf("len = %d, want %d", len(mag), 4096/2+1)
			}

			if d := math.Abs(mag[0] - 1); d > 1e-3 {
				t.Fatalf("DC gain = %g, want 1", mag[0])
			}
		})
	}
}

func TestMagnitudeMatchesAnalyticCurveAtLowFrequencies(t *testing.T) {
	const (
		sr      = 44100.0
		r       = 1000.0
		c       = 1e-6
		fftSize = 4096
	)

	s, err := rc.New(sr, rc.WithResistance(r), rc.WithCapacitance(c))
	if err != nil {
		t.Fatalf("rc.New() error = %v", err)
	}

	mag, err := response.Magnitude(s, fftSize)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}

	// Bilinear warping only bites near Nyquist; well below it the
	// discrete response must sit on the analog curve.
	for bin := 1; bin <= fftSize/20; bin++ {
		f := response.BinFrequency(bin, fftSize, sr)
		want := response.AnalyticRCMagnitude(r, c, f)

		if rel := math.Abs(mag[bin]-want) / want; rel > 0.02 {
			t.Fatalf("bin %d (%.1f Hz): |H| = %g, want %g (rel err %g)",
				bin, f, mag[bin], want, rel)
		}
	}
}

func TestMagnitudeIsMonotoneLowpass(t *testing.T) {
	s, err := rc.New(48000)
	if err != nil {
		t.Fatalf("rc.New() error = %v", err)
	}

	mag, err := response.Magnitude(s, 2048)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}

	for bin := 1; bin < len(mag); bin++ {
		// Truncating the impulse response leaves a tiny ripple, so
		// allow a hair of slack on the comparison.
		if mag[bin] > mag[bin-1]+1e-9 {
			t.Fatalf("bin %d: magnitude rose from %g to %g", bin, mag[bin-1], mag[bin])
		}
	}
}

func TestAnalyticRCMagnitude(t *testing.T) {
	const r, c = 1000.0, 1e-6

	if got := response.AnalyticRCMagnitude(r, c, 0); got != 1 {
		t.Fatalf("DC magnitude = %g, want 1", got)
	}

	// At the cutoff frequency the magnitude is 1/sqrt(2).
	fc := 1 / (2 * math.Pi * r * c)
	if got := response.AnalyticRCMagnitude(r, c, fc); math.Abs(got-1/math.Sqrt2) > 1e-12 {
		t.Fatalf("cutoff magnitude = %g, want %g", got, 1/math.Sqrt2)
	}
}

func TestBinFrequency(t *testing.T) {
	if got := response.BinFrequency(0, 4096, 44100); got != 0 {
		t.Fatalf("bin 0 = %g, want 0", got)
	}

	if got := response.BinFrequency(2048, 4096, 44100); got != 22050 {
		t.Fatalf("Nyquist bin = %g, want 22050", got)
	}
}
