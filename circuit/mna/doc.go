// Package mna implements a small dense modified-nodal-analysis engine
// with trapezoidal time discretization.
//
// A continuous circuit is described by G*x + C*dx/dt = u, where x
// stacks node voltages and source branch currents, G collects
// resistive and source stamps, and C collects reactive stamps.
// Trapezoidal integration with step T = 1/fs yields the companion
// system
//
//	(G + H) * x[n] = (H - G) * x[n-1] + u[n] + u[n-1],  H = 2*C/T
//
// The system matrix A = G + H is inverted once per parameter or rate
// change; each sample then costs two matrix-vector products and no
// factorization or allocation.
//
// The engine targets the small fixed-size systems that arise from
// audio circuit models, not general netlists: matrices are dense and
// the topology is stamped once at setup.
package mna
