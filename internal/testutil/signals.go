package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// UnitStep generates a signal that is 1 from index 0 onward.
func UnitStep(length int) []float64 {
	return DC(1.0, length)
}

// RCStepReference returns the analytic charge curve of a first-order RC
// low-pass driven by a unit step, sampled at sampleRate. The half-sample
// offset matches trapezoidal (bilinear) discretizations, which integrate
// across sample intervals rather than at sample instants.
func RCStepReference(resistance, capacitance, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	tau := resistance * capacitance
	for i := range out {
		t := (float64(i) + 0.5) / sampleRate
		out[i] = 1 - math.Exp(-t/tau)
	}
	return out
}
