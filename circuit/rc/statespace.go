package rc

import "github.com/cwbudde/algo-circuit/circuit/mna"

// State-space node layout: the source drives node 0, the capacitor sits
// on node 1, and unknown 2 carries the source branch current. The
// output is the node-1 voltage.
const (
	ssNodeIn    = 0
	ssNodeOut   = 1
	ssBranchSrc = 2
	ssDim       = 3
)

// StateSpace solves the circuit via modified nodal analysis with
// trapezoidal discretization. Conductance and capacitance matrices are
// stamped from the element values, the companion system matrix is
// inverted on parameter or rate changes, and each sample performs one
// small cached-inverse linear solve.
type StateSpace struct {
	sampleRate  float64
	resistance  float64
	capacitance float64

	sys *mna.System
}

var _ Solver = (*StateSpace)(nil)

// NewStateSpace constructs the state-space solver, stamps the RC
// topology, and inverts the companion matrix. Degenerate parameter
// combinations that leave the system singular are reported as an error
// here rather than surfacing as garbage output later.
func NewStateSpace(sampleRate, resistance, capacitance float64) (*StateSpace, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if err := validateResistance(resistance); err != nil {
		return nil, err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return nil, err
	}

	sys, err := mna.NewSystem(ssDim)
	if err != nil {
		return nil, err
	}

	s := &StateSpace{
		sampleRate:  sampleRate,
		resistance:  resistance,
		capacitance: capacitance,
		sys:         sys,
	}

	if err := s.restamp(); err != nil {
		return nil, err
	}

	return s, nil
}

// Method returns MethodStateSpace.
func (s *StateSpace) Method() Method { return MethodStateSpace }

// SampleRate returns the sample rate in Hz.
func (s *StateSpace) SampleRate() float64 { return s.sampleRate }

// Resistance returns the series resistance in ohms.
func (s *StateSpace) Resistance() float64 { return s.resistance }

// Capacitance returns the shunt capacitance in farads.
func (s *StateSpace) Capacitance() float64 { return s.capacitance }

// Prepare updates the sample rate. Unchanged rates are a no-op; a
// change re-discretizes the companion system and clears the state and
// excitation history.
func (s *StateSpace) Prepare(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	if sampleRate == s.sampleRate {
		return nil
	}

	s.sampleRate = sampleRate

	if err := s.sys.Discretize(sampleRate); err != nil {
		return err
	}

	s.sys.Reset()

	return nil
}

// SetKnobs restamps G and C and re-inverts the companion matrix when
// either value changed. The state vector is preserved across the
// restamp so knob movements stay continuous.
func (s *StateSpace) SetKnobs(resistance, capacitance float64) error {
	if err := validateResistance(resistance); err != nil {
		return err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return err
	}

	if resistance == s.resistance && capacitance == s.capacitance {
		return nil
	}

	s.resistance = resistance
	s.capacitance = capacitance

	return s.restamp()
}

// ProcessSample writes the input voltage into the source row, advances
// the companion system one step, and returns the capacitor node
// voltage.
func (s *StateSpace) ProcessSample(inputVoltage float64) float64 {
	s.sys.SetSource(ssBranchSrc, sanitizeInput(inputVoltage))
	s.sys.Step()

	return sanitizeOutput(s.sys.At(ssNodeOut))
}

// Reset zeroes the state vector and excitation history without
// touching parameters.
func (s *StateSpace) Reset() { s.sys.Reset() }

func (s *StateSpace) restamp() error {
	s.sys.ClearStamps()
	s.sys.StampConductance(ssNodeIn, ssNodeOut, 1/s.resistance)
	s.sys.StampCapacitor(ssNodeOut, mna.Ground, s.capacitance)
	s.sys.StampVoltageSource(ssBranchSrc, ssNodeIn)

	return s.sys.Discretize(s.sampleRate)
}
