package rc

import "github.com/cwbudde/algo-circuit/circuit/wdf"

// WaveDigital solves the circuit as a wave-digital adaptor tree: a
// resistive and a capacitive one-port under a series adaptor,
// terminated by an ideal Thevenin source. Each sample runs one
// up-sweep (reflected waves, leaves to root) and one down-sweep
// (incident waves, root to leaves); the capacitor port voltage is the
// output.
type WaveDigital struct {
	net *wdf.RCLowpass
}

var _ Solver = (*WaveDigital)(nil)

// NewWaveDigital constructs the wave-digital solver with all port
// resistances computed up front.
func NewWaveDigital(sampleRate, resistance, capacitance float64) (*WaveDigital, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if err := validateResistance(resistance); err != nil {
		return nil, err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return nil, err
	}

	net, err := wdf.NewRCLowpass(sampleRate, resistance, capacitance)
	if err != nil {
		return nil, err
	}

	return &WaveDigital{net: net}, nil
}

// Method returns MethodWaveDigital.
func (s *WaveDigital) Method() Method { return MethodWaveDigital }

// SampleRate returns the sample rate in Hz.
func (s *WaveDigital) SampleRate() float64 { return s.net.SampleRate() }

// Resistance returns the series resistance in ohms.
func (s *WaveDigital) Resistance() float64 { return s.net.Resistance() }

// Capacitance returns the shunt capacitance in farads.
func (s *WaveDigital) Capacitance() float64 { return s.net.Capacitance() }

// Prepare updates the sample rate. Unchanged rates are a no-op; a
// change propagates to the capacitive leaf, clears its wave memory,
// and recomputes port resistances leaves to root.
func (s *WaveDigital) Prepare(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	return s.net.SetSampleRate(sampleRate)
}

// SetKnobs updates the leaf element values; port resistances are
// recomputed bottom-up only when a value actually changed.
func (s *WaveDigital) SetKnobs(resistance, capacitance float64) error {
	if err := validateResistance(resistance); err != nil {
		return err
	}

	if err := validateCapacitance(capacitance); err != nil {
		return err
	}

	return s.net.SetKnobs(resistance, capacitance)
}

// ProcessSample runs one two-pass sweep and returns the capacitor port
// voltage.
func (s *WaveDigital) ProcessSample(inputVoltage float64) float64 {
	return sanitizeOutput(s.net.ProcessSample(sanitizeInput(inputVoltage)))
}

// Reset clears the network's wave memory without touching parameters.
func (s *WaveDigital) Reset() { s.net.Reset() }

// Network exposes the underlying wave-digital circuit for callers that
// need wave-level readouts.
func (s *WaveDigital) Network() *wdf.RCLowpass { return s.net }
