package wdf

import (
	"math"
	"testing"
)

func TestResistorMatchedPortAbsorbs(t *testing.T) {
	var p Resistor

	p.SetResistance(470)
	p.CalcImpedance()

	if p.PortResistance() != 470 {
		t.Fatalf("port resistance = %g, want 470", p.PortResistance())
	}

	if b := p.Reflected(); b != 0 {
		t.Fatalf("matched resistor reflected %g, want 0", b)
	}

	p.Incident(2)

	if v := p.Voltage(); v != 1 {
		t.Fatalf("voltage = %g, want 1", v)
	}

	if i := p.Current(); math.Abs(i-2/(2*470.0)) > 1e-15 {
		t.Fatalf("current = %g, want %g", i, 2/(2*470.0))
	}
}

func TestCapacitorBilinearPortResistance(t *testing.T) {
	var p Capacitor

	p.SetCapacitance(1e-6)
	p.SetSampleRate(44100)
	p.CalcImpedance()

	want := 1 / (2 * 44100 * 1e-6)
	if got := p.PortResistance(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("port resistance = %g, want %g", got, want)
	}
}

func TestCapacitorOneSampleDelay(t *testing.T) {
	var p Capacitor

	p.SetCapacitance(1e-6)
	p.SetSampleRate(48000)
	p.CalcImpedance()

	// Cleared memory reflects silence on the first up-sweep.
	if b := p.Reflected(); b != 0 {
		t.Fatalf("first reflected = %g, want 0 (cleared memory)", b)
	}

	p.Incident(0.5)

	// The next up-sweep must return the incident wave of the previous
	// sample, exactly one sample late.
	if b := p.Reflected(); b != 0.5 {
		t.Fatalf("second reflected = %g, want 0.5 (previous incident)", b)
	}

	p.Incident(0.25)

	if b := p.Reflected(); b != 0.25 {
		t.Fatalf("third reflected = %g, want 0.25 (previous incident)", b)
	}

	p.ResetState()

	if b := p.Reflected(); b != 0 {
		t.Fatalf("reflected after reset = %g, want 0", b)
	}
}

func TestSeriesAdaptorPortResistanceIsSum(t *testing.T) {
	var s SeriesAdaptor

	s.Adapt(300, 700)

	if got := s.PortResistance(); got != 1000 {
		t.Fatalf("port resistance = %g, want 1000", got)
	}
}

func TestSeriesAdaptorCombineAndSplit(t *testing.T) {
	var s SeriesAdaptor

	s.Adapt(300, 700)

	b1, b2 := 0.2, -0.1
	if got := s.Combine(b1, b2); math.Abs(got-(-(b1+b2))) > 1e-15 {
		t.Fatalf("combine = %g, want %g", got, -(b1 + b2))
	}

	x := 0.75
	a1, a2 := s.Split(x, b1, b2)

	alpha := 300.0 / 1000.0
	loop := x + b1 + b2

	if math.Abs(a1-(b1-alpha*loop)) > 1e-15 {
		t.Fatalf("a1 = %g, want %g", a1, b1-alpha*loop)
	}

	if math.Abs(a2-(b2-(1-alpha)*loop)) > 1e-15 {
		t.Fatalf("a2 = %g, want %g", a2, b2-(1-alpha)*loop)
	}

	// Series loop: the scattered waves sum to the negated incoming wave.
	if math.Abs((a1+a2)-(-x)) > 1e-15 {
		t.Fatalf("scattering violated wave sum: a1+a2 = %g, want %g", a1+a2, -x)
	}
}

func TestVoltageSourceTheveninReflection(t *testing.T) {
	var v VoltageSource

	v.SetSeriesResistance(0)
	v.SetVoltage(1.5)

	if got := v.Reflect(0.5); math.Abs(got-(2*1.5-0.5)) > 1e-15 {
		t.Fatalf("reflect = %g, want %g", got, 2*1.5-0.5)
	}

	if got := v.PortResistance(); got != 0 {
		t.Fatalf("ideal source port resistance = %g, want 0", got)
	}
}
