package wdf

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/internal/numeric"
)

// RCLowpass is the wave-digital model of a first-order RC low-pass:
//
//	Vin -- R1 --+--- Vout
//	            |
//	            C1
//	            |
//	           GND
//
// R1 and C1 hang off a series adaptor terminated by an ideal Thevenin
// source. The capacitor port voltage is the low-pass output. All four
// nodes are stored by value; the topology never changes.
type RCLowpass struct {
	sampleRate float64

	r1  Resistor
	c1  Capacitor
	s1  SeriesAdaptor
	src VoltageSource
}

// State carries the wave memory of the network for save/restore.
type State struct {
	CapA, CapB, CapZ float64
}

// NewRCLowpass constructs the network and computes every port
// resistance up front, leaves to root, so the first processed sample
// already sees valid impedances.
func NewRCLowpass(sampleRate, resistance, capacitance float64) (*RCLowpass, error) {
	if !numeric.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("wdf: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !numeric.IsFinite(resistance) || resistance <= 0 {
		return nil, fmt.Errorf("wdf: resistance must be > 0 and finite: %f", resistance)
	}

	if !numeric.IsFinite(capacitance) || capacitance <= 0 {
		return nil, fmt.Errorf("wdf: capacitance must be > 0 and finite: %f", capacitance)
	}

	n := &RCLowpass{sampleRate: sampleRate}
	n.r1.SetResistance(resistance)
	n.c1.SetCapacitance(capacitance)
	n.c1.SetSampleRate(sampleRate)
	n.src.SetSeriesResistance(0) // ideal source
	n.calcImpedances()

	return n, nil
}

// SampleRate returns the sample rate in Hz.
func (n *RCLowpass) SampleRate() float64 { return n.sampleRate }

// Resistance returns the resistor value in ohms.
func (n *RCLowpass) Resistance() float64 { return n.r1.Resistance() }

// Capacitance returns the capacitor value in farads.
func (n *RCLowpass) Capacitance() float64 { return n.c1.Capacitance() }

// SetSampleRate updates the rate, propagates it to the reactive leaf,
// clears the wave memory, and recomputes port resistances. Unchanged
// rates are a no-op.
func (n *RCLowpass) SetSampleRate(sampleRate float64) error {
	if !numeric.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("wdf: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if sampleRate == n.sampleRate {
		return nil
	}

	n.sampleRate = sampleRate
	n.c1.SetSampleRate(sampleRate)
	n.c1.ResetState()
	n.calcImpedances()

	return nil
}

// SetKnobs updates the resistor and capacitor values. Port resistances
// are recomputed bottom-up only when a value actually changed, so
// repeated identical calls cost one comparison each.
func (n *RCLowpass) SetKnobs(resistance, capacitance float64) error {
	if !numeric.IsFinite(resistance) || resistance <= 0 {
		return fmt.Errorf("wdf: resistance must be > 0 and finite: %f", resistance)
	}

	if !numeric.IsFinite(capacitance) || capacitance <= 0 {
		return fmt.Errorf("wdf: capacitance must be > 0 and finite: %f", capacitance)
	}

	if resistance == n.r1.Resistance() && capacitance == n.c1.Capacitance() {
		return nil
	}

	n.r1.SetResistance(resistance)
	n.c1.SetCapacitance(capacitance)
	n.calcImpedances()

	return nil
}

// Reset clears the capacitor wave memory without touching parameters.
func (n *RCLowpass) Reset() {
	n.c1.ResetState()
}

// State returns a copy of the network's wave memory.
func (n *RCLowpass) State() State {
	a, b, z := n.c1.WaveState()
	return State{CapA: a, CapB: b, CapZ: z}
}

// SetState restores previously saved wave memory.
func (n *RCLowpass) SetState(s State) error {
	if !numeric.IsFinite(s.CapA) || !numeric.IsFinite(s.CapB) || !numeric.IsFinite(s.CapZ) {
		return fmt.Errorf("wdf: state contains NaN or Inf")
	}

	n.c1.SetWaveState(s.CapA, s.CapB, s.CapZ)

	return nil
}

// ProcessSample runs one two-pass sweep for the given input voltage and
// returns the capacitor port voltage.
func (n *RCLowpass) ProcessSample(inputVoltage float64) float64 {
	// The series adaptor's voltage convention inverts the root port, so
	// the source injects the negated input; leaf voltage and current
	// readouts then carry physical polarity.
	n.src.SetVoltage(-inputVoltage)

	// Up-sweep, leaves to root. The leaf reflections must be produced
	// before the adaptor combines them; the capacitor consumes its
	// stored wave here.
	b1 := n.r1.Reflected()
	b2 := n.c1.Reflected()
	aRoot := n.s1.Combine(b1, b2)

	// Down-sweep, root to leaves. The source turns the arriving wave
	// into its own reflection and the adaptor scatters it.
	x := n.src.Reflect(aRoot)
	a1, a2 := n.s1.Split(x, b1, b2)
	n.r1.Incident(a1)
	n.c1.Incident(a2)

	return n.c1.Voltage()
}

// calcImpedances recomputes port resistances in dependency order:
// leaves (R1, C1), then the adaptor, then the source. Each node's
// formula depends only on already-computed children.
func (n *RCLowpass) calcImpedances() {
	n.r1.CalcImpedance()
	n.c1.CalcImpedance()
	n.s1.Adapt(n.r1.PortResistance(), n.c1.PortResistance())
	// The ideal source's R0 is pinned to its series resistance; nothing
	// to derive here.
}
