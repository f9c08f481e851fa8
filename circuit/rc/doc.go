// Package rc emulates an analog first-order RC low-pass circuit in
// discrete time, offering three interchangeable numerical solvers that
// discretize the same continuous circuit by different methods:
//
//   - MethodWaveDigital:
//     A wave-digital network (circuit/wdf) solving the circuit with
//     incident/reflected wave scattering over a fixed adaptor tree.
//   - MethodStateSpace:
//     Modified nodal analysis (circuit/mna) with trapezoidal
//     discretization; a small cached-inverse linear solve per sample.
//   - MethodClosedForm:
//     The bilinear-transform-derived recursive one-pole update, with
//     no matrix or tree machinery.
//
// All three implement the Solver contract: Prepare for the sample
// rate, SetKnobs for resistance/capacitance changes, ProcessSample
// once per audio frame. Coefficients are recomputed only when a value
// actually changes, and the per-sample path is allocation-free with no
// locks or I/O. For matched parameters the three methods agree within
// numerical tolerance, since they discretize the same circuit.
//
// Each solver instance is owned by a single processing goroutine;
// knob values polled elsewhere are expected to be handed to SetKnobs
// on that goroutine at block granularity.
package rc
