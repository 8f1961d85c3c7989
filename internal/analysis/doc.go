// Package analysis studies trajectories produced by the lotka engine.
//
//   - [Convergence]: first-order convergence of the Euler scheme across dt
//   - [DominantPeriod]: oscillation period from the power spectrum
//   - [Crossings]: upward level crossings, used as a second period estimate
//   - [PhasePortraitToASCII]: terminal rendering of the (x, y) orbit
//   - [Summarize]: time averages and spread of both populations
//
// Over one closed orbit the time average of the prey equals the equilibrium
// value D/C and that of the predator equals A/B, which gives a cheap sanity
// check for long runs:
//
//	s := analysis.Summarize(analysis.FromSimulation(sim))
//	ex, ey := analysis.Equilibrium(sim.Params())
package analysis
