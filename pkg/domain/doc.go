// Package domain contains the core model of the simulator: the
// declarative DFA definition, the compiled transition index, and the
// trace/result types produced by a simulation run.
//
// Definitions are compiled once, are immutable afterwards, and are safe
// to share across concurrent simulation calls.
package domain
