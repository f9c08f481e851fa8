package rc

import "github.com/cwbudde/algo-circuit/internal/numeric"

// ClosedForm is the bilinear-transform-derived recursive form of the RC
// low-pass. The capacitor becomes a companion resistance Z = 1/(2*fs*C)
// plus a one-sample history term x; the voltage divider then gives
//
//	vout = (vin + R*x) * Z / (R + Z)
//	x    = (2/Z)*vout - x
//
// in that order, once per sample. No matrices, no tree.
type ClosedForm struct {
	sampleRate  float64
	resistance  float64
	capacitance float64

	z float64 // capacitor companion resistance, 1/(2*fs*C)
	x float64 // history state
}

var _ Solver = (*ClosedForm)(nil)

// NewClosedForm constructs the closed-form solver. Z is computed here,
// before the first sample, so a stale or zero coefficient can never
// reach the process path.
func NewClosedForm(sampleRate, resistance, capacitance float64) (*ClosedForm, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if err := validateResistance(resistance); err != nil {
		return nil, err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return nil, err
	}

	s := &ClosedForm{
		sampleRate:  sampleRate,
		resistance:  resistance,
		capacitance: capacitance,
	}
	s.updateCoefficients()

	return s, nil
}

// Method returns MethodClosedForm.
func (s *ClosedForm) Method() Method { return MethodClosedForm }

// SampleRate returns the sample rate in Hz.
func (s *ClosedForm) SampleRate() float64 { return s.sampleRate }

// Resistance returns the series resistance in ohms.
func (s *ClosedForm) Resistance() float64 { return s.resistance }

// Capacitance returns the shunt capacitance in farads.
func (s *ClosedForm) Capacitance() float64 { return s.capacitance }

// Prepare updates the sample rate. Unchanged rates are a no-op; a
// change recomputes Z and clears the history state.
func (s *ClosedForm) Prepare(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	if sampleRate == s.sampleRate {
		return nil
	}

	s.sampleRate = sampleRate
	s.x = 0
	s.updateCoefficients()

	return nil
}

// SetKnobs updates resistance and capacitance. Z depends only on the
// capacitance (and rate), so a resistance-only change skips the
// recompute entirely; identical values cost two comparisons.
func (s *ClosedForm) SetKnobs(resistance, capacitance float64) error {
	if err := validateResistance(resistance); err != nil {
		return err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return err
	}

	capChanged := capacitance != s.capacitance
	s.resistance = resistance
	s.capacitance = capacitance

	if capChanged {
		s.updateCoefficients()
	}

	return nil
}

// ProcessSample computes the output voltage for one input sample and
// advances the history state. The output must be computed before the
// state update; the pair always happens together.
func (s *ClosedForm) ProcessSample(inputVoltage float64) float64 {
	vin := sanitizeInput(inputVoltage)

	vout := (vin + s.resistance*s.x) * s.z / (s.resistance + s.z)
	s.x = numeric.FlushDenormals((2/s.z)*vout - s.x)

	return sanitizeOutput(vout)
}

// Reset clears the history state without touching parameters.
func (s *ClosedForm) Reset() { s.x = 0 }

func (s *ClosedForm) updateCoefficients() {
	s.z = 1 / (2 * s.sampleRate * s.capacitance)
}
