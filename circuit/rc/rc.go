package rc

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/internal/numeric"
)

const (
	// DefaultResistance is the series resistor default in ohms.
	DefaultResistance = 1000.0
	// DefaultCapacitance is the shunt capacitor default in farads.
	// Together with DefaultResistance this puts the cutoff near 159 Hz.
	DefaultCapacitance = 1e-6

	minResistance  = 1.0
	maxResistance  = 20e6
	minCapacitance = 1e-12
	maxCapacitance = 0.1
)

// Method selects which numerical solver emulates the circuit.
type Method int

const (
	// MethodWaveDigital solves the circuit as a wave-digital adaptor
	// tree with per-sample up/down sweeps.
	MethodWaveDigital Method = iota
	// MethodStateSpace solves the trapezoidal-discretized MNA system
	// with a cached matrix inverse.
	MethodStateSpace
	// MethodClosedForm applies the analytically derived recursive
	// one-pole update.
	MethodClosedForm
)

func (m Method) String() string {
	switch m {
	case MethodWaveDigital:
		return "wave_digital"
	case MethodStateSpace:
		return "state_space"
	case MethodClosedForm:
		return "closed_form"
	default:
		return "unknown"
	}
}

// Solver is the three-operation contract shared by all methods.
//
// Prepare is idempotent when the rate is unchanged; a rate change
// resets reactive memory. SetKnobs recomputes only coefficients that
// depend on a value that actually changed. ProcessSample must be
// called once per audio frame, in order; it never allocates, locks, or
// blocks.
type Solver interface {
	Prepare(sampleRate float64) error
	SetKnobs(resistance, capacitance float64) error
	ProcessSample(inputVoltage float64) float64

	// Reset clears solver state without touching parameters.
	Reset()

	Method() Method
	SampleRate() float64
	Resistance() float64
	Capacitance() float64
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	method      Method
	resistance  float64
	capacitance float64
}

func defaultConfig() config {
	return config{
		method:      MethodWaveDigital,
		resistance:  DefaultResistance,
		capacitance: DefaultCapacitance,
	}
}

// WithMethod selects the solver implementation.
func WithMethod(method Method) Option {
	return func(cfg *config) error {
		if !validMethod(method) {
			return fmt.Errorf("rc: invalid method: %d", method)
		}

		cfg.method = method

		return nil
	}
}

// WithResistance sets the series resistance in ohms.
func WithResistance(resistance float64) Option {
	return func(cfg *config) error {
		if err := validateResistance(resistance); err != nil {
			return err
		}

		cfg.resistance = resistance

		return nil
	}
}

// WithCapacitance sets the shunt capacitance in farads.
func WithCapacitance(capacitance float64) Option {
	return func(cfg *config) error {
		if err := validateCapacitance(capacitance); err != nil {
			return err
		}

		cfg.capacitance = capacitance

		return nil
	}
}

// New constructs the solver selected by WithMethod (wave-digital by
// default). All coefficients, port resistances, and matrix inverses are
// computed before New returns, so the first ProcessSample call already
// operates on a fully initialized solver.
func New(sampleRate float64, opts ...Option) (Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	switch cfg.method {
	case MethodWaveDigital:
		return NewWaveDigital(sampleRate, cfg.resistance, cfg.capacitance)
	case MethodStateSpace:
		return NewStateSpace(sampleRate, cfg.resistance, cfg.capacitance)
	case MethodClosedForm:
		return NewClosedForm(sampleRate, cfg.resistance, cfg.capacitance)
	default:
		return nil, fmt.Errorf("rc: invalid method: %d", cfg.method)
	}
}

// ProcessInPlace runs a mono buffer through the solver in place.
func ProcessInPlace(s Solver, buf []float64) {
	for i := range buf {
		buf[i] = s.ProcessSample(buf[i])
	}
}

// ProcessTo runs src through the solver into dst. Both slices must have
// the same length.
func ProcessTo(s Solver, dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

func validMethod(method Method) bool {
	return method >= MethodWaveDigital && method <= MethodClosedForm
}

func validateSampleRate(sampleRate float64) error {
	if !numeric.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("rc: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return nil
}

func validateResistance(resistance float64) error {
	if !numeric.IsFinite(resistance) || resistance < minResistance || resistance > maxResistance {
		return fmt.Errorf("rc: resistance must be in [%g, %g] ohms: %f", minResistance, maxResistance, resistance)
	}

	return nil
}

func validateCapacitance(capacitance float64) error {
	if !numeric.IsFinite(capacitance) || capacitance < minCapacitance || capacitance > maxCapacitance {
		return fmt.Errorf("rc: capacitance must be in [%g, %g] farads: %f", minCapacitance, maxCapacitance, capacitance)
	}

	return nil
}

func sanitizeInput(value float64) float64 {
	if !numeric.IsFinite(value) {
		return 0
	}

	return value
}

func sanitizeOutput(value float64) float64 {
	if !numeric.IsFinite(value) {
		return 0
	}

	return numeric.FlushDenormals(value)
}
