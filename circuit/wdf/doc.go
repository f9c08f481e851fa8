// Package wdf provides wave-digital one-port elements and the series
// RC low-pass network built from them.
//
// Wave-digital filters simulate circuits using traveling waves rather
// than voltages and currents directly. Each one-port carries an
// incident wave a, a reflected wave b, and a port resistance R0,
// related to the physical quantities by
//
//	v = (a + b) / 2
//	i = (a - b) / (2 * R0)
//
// One sample proceeds in two passes over the element tree: an up-sweep
// (leaves to root) in which every node produces its reflected wave,
// and a down-sweep (root to leaves) in which every node receives its
// incident wave. After both passes each element holds a consistent
// (a, b) pair and voltage/current can be read out.
//
// The node kinds are a fixed set of concrete types (Resistor,
// Capacitor, SeriesAdaptor, VoltageSource) stored by value inside the
// network that composes them. The topology is fixed at construction;
// only scalar values inside nodes change at runtime, so processing is
// allocation-free and deterministic.
package wdf
