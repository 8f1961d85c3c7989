// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the small set of interfaces shared by models and
// integrators:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Hamiltonian]: systems exposing a conserved quantity
//
// Domain errors live here too so that every package reports invalid
// parameters, durations and indices with the same sentinels.
//
// # Example
//
//	dyn := physics.NewLotkaVolterra(2, 0.1, 0.1, 1)
//	integ := integrators.NewEuler()
//	next := integ.Step(dyn, x, 0, 0.01)
package dynamo
