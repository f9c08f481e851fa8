package wdf

// Resistor is a memoryless one-port. Its port resistance is matched to
// the physical resistance, so it absorbs incoming waves completely and
// reflects nothing.
type Resistor struct {
	r  float64 // physical resistance in ohms
	r0 float64
	a  float64
	b  float64
}

// SetResistance updates the physical resistance in ohms. CalcImpedance
// must be called afterwards to propagate the change into the port.
func (p *Resistor) SetResistance(r float64) { p.r = r }

// Resistance returns the physical resistance in ohms.
func (p *Resistor) Resistance() float64 { return p.r }

// CalcImpedance matches the port resistance to the physical resistance.
func (p *Resistor) CalcImpedance() { p.r0 = p.r }

// PortResistance returns the wave-domain reference resistance R0.
func (p *Resistor) PortResistance() float64 { return p.r0 }

// Incident accepts the incident wave from the parent (down-sweep).
func (p *Resistor) Incident(x float64) { p.a = x }

// Reflected produces the reflected wave (up-sweep). A matched resistor
// reflects nothing; b is still stored so readouts stay coherent.
func (p *Resistor) Reflected() float64 {
	p.b = 0
	return p.b
}

// Voltage returns the port voltage (a+b)/2.
func (p *Resistor) Voltage() float64 { return (p.a + p.b) / 2 }

// Current returns the port current (a-b)/(2*R0).
func (p *Resistor) Current() float64 { return (p.a - p.b) / (2 * p.r0) }

// Capacitor is a reactive one-port discretized with the bilinear
// transform. The energy storage of the physical element becomes a true
// one-sample delay: the reflected wave is the incident wave received
// one sample earlier.
type Capacitor struct {
	c  float64 // capacitance in farads
	fs float64 // sample rate in Hz
	r0 float64
	a  float64
	b  float64
	z  float64 // stored previous incident wave
}

// SetCapacitance updates the capacitance in farads. CalcImpedance must
// be called afterwards to propagate the change into the port.
func (p *Capacitor) SetCapacitance(c float64) { p.c = c }

// Capacitance returns the capacitance in farads.
func (p *Capacitor) Capacitance() float64 { return p.c }

// SetSampleRate updates the sample rate the discretization depends on.
func (p *Capacitor) SetSampleRate(fs float64) { p.fs = fs }

// SampleRate returns the sample rate in Hz.
func (p *Capacitor) SampleRate() float64 { return p.fs }

// ResetState clears the one-sample wave memory.
func (p *Capacitor) ResetState() { p.z = 0 }

// CalcImpedance assigns the bilinear-transform port resistance
// R0 = 1/(2*fs*C). SetSampleRate must have been called with a positive
// rate first.
func (p *Capacitor) CalcImpedance() { p.r0 = 1 / (2 * p.fs * p.c) }

// PortResistance returns the wave-domain reference resistance R0.
func (p *Capacitor) PortResistance() float64 { return p.r0 }

// Incident accepts the incident wave from the parent (down-sweep) and
// stores it as the wave memory. The down-sweep runs after the up-sweep
// within a sample, so the stored value is not read back until the next
// sample's Reflected call; writing it anywhere earlier would collapse
// the one-sample delay.
func (p *Capacitor) Incident(x float64) {
	p.a = x
	p.z = x
}

// Reflected produces the reflected wave (up-sweep): the incident wave
// stored one sample ago.
func (p *Capacitor) Reflected() float64 {
	p.b = p.z
	return p.b
}

// Voltage returns the port voltage (a+b)/2.
func (p *Capacitor) Voltage() float64 { return (p.a + p.b) / 2 }

// Current returns the port current (a-b)/(2*R0).
func (p *Capacitor) Current() float64 { return (p.a - p.b) / (2 * p.r0) }

// WaveState exposes the raw wave pair for state save/restore.
func (p *Capacitor) WaveState() (a, b, z float64) { return p.a, p.b, p.z }

// SetWaveState restores a previously saved wave pair and memory cell.
func (p *Capacitor) SetWaveState(a, b, z float64) { p.a, p.b, p.z = a, b, z }

// SeriesAdaptor joins two one-ports in series: equal current, voltages
// add. In the wave domain its port resistance is the sum of the
// children's and the scattering coefficient alpha = R1/(R1+R2) splits
// the incoming wave between them.
type SeriesAdaptor struct {
	r0    float64
	alpha float64
	a     float64
	b     float64
}

// Adapt recomputes the adaptor port resistance and scattering
// coefficient from the children's port resistances. Children must have
// computed their own impedances first.
func (s *SeriesAdaptor) Adapt(r1, r2 float64) {
	s.r0 = r1 + r2
	s.alpha = r1 / s.r0
}

// PortResistance returns the wave-domain reference resistance R0.
func (s *SeriesAdaptor) PortResistance() float64 { return s.r0 }

// Combine gathers the children's reflected waves into the adaptor's own
// reflected wave for the up-sweep: b = -(b1 + b2).
func (s *SeriesAdaptor) Combine(b1, b2 float64) float64 {
	s.b = -(b1 + b2)
	return s.b
}

// Split scatters the parent's incident wave x into the two child
// incident waves during the down-sweep. b1 and b2 are the children's
// reflected waves already produced in the up-sweep. The series loop's
// Kirchhoff voltage law (the three port voltages sum to zero) gives
//
//	loop = x + b1 + b2
//	a1   = b1 - alpha*loop
//	a2   = b2 - (1-alpha)*loop
//
// so the scattered waves satisfy a1 + a2 = -x.
func (s *SeriesAdaptor) Split(x, b1, b2 float64) (a1, a2 float64) {
	s.a = x

	loop := x + b1 + b2
	a1 = b1 - s.alpha*loop
	a2 = b2 - (1-s.alpha)*loop

	return a1, a2
}

// VoltageSource is the Thevenin boundary element terminating the tree.
// It injects the per-sample excitation: in wave form b = 2*vs - a.
// With zero series resistance the source port is ideal (R0 = 0), so it
// deliberately has no current readout; (a-b)/(2*R0) is undefined there.
type VoltageSource struct {
	rs float64 // series resistance in ohms (0 for the ideal source)
	vs float64 // instantaneous source voltage in volts
	r0 float64
	a  float64
	b  float64
}

// SetVoltage sets the instantaneous source voltage for this sample.
func (v *VoltageSource) SetVoltage(volts float64) { v.vs = volts }

// SetSeriesResistance sets the Thevenin series resistance. The source
// port resistance follows it directly.
func (v *VoltageSource) SetSeriesResistance(rs float64) {
	v.rs = rs
	v.r0 = rs
}

// PortResistance returns the wave-domain reference resistance R0.
func (v *VoltageSource) PortResistance() float64 { return v.r0 }

// Reflect consumes the wave arriving from the network (the adaptor's
// reflected wave) and produces the wave the source pushes back down.
func (v *VoltageSource) Reflect(a float64) float64 {
	v.a = a
	v.b = 2*v.vs - a
	return v.b
}

// Voltage returns the port voltage (a+b)/2.
func (v *VoltageSource) Voltage() float64 { return (v.a + v.b) / 2 }
