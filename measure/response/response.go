// Package response measures the frequency response of per-sample
// circuit solvers by exciting them with a unit impulse and transforming
// the response, and provides the analytic RC reference curve for
// comparison.
package response

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by measurement functions.
var (
	ErrNilProcessor   = errors.New("response: processor must not be nil")
	ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 8")
)

// Processor is any per-sample transform, such as an rc.Solver. The
// measurement consumes fftSize samples of its state; callers who need
// the processor afterwards should reset it.
type Processor interface {
	ProcessSample(inputVoltage float64) float64
}

// Magnitude excites p with a unit impulse, captures fftSize samples of
// its response, and returns the magnitude spectrum |H[k]| for the
// non-negative-frequency bins 0..fftSize/2.
func Magnitude(p Processor, fftSize int) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}

	if fftSize < 8 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}

	in := make([]complex128, fftSize)
	in[0] = complex(p.ProcessSample(1), 0)

	for i := 1; i < fftSize; i++ {
		in[i] = complex(p.ProcessSample(0), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// BinFrequency returns the center frequency in Hz of the given FFT bin.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(fftSize)
}

// AnalyticRCMagnitude returns the ideal continuous-time magnitude
// response of the RC low-pass, |H(f)| = 1/sqrt(1+(2*pi*f*R*C)^2).
func AnalyticRCMagnitude(resistance, capacitance, freqHz float64) float64 {
	w := 2 * math.Pi * freqHz * resistance * capacitance
	return 1 / math.Sqrt(1+w*w)
}
