// Package lotka implements the predator-prey simulation engine.
//
// A [Simulation] owns an append-only history of [State] values. Each call to
// [Simulation.Advance] performs one forward Euler step in rescaled
// coordinates, clamps negative densities to zero and evaluates the conserved
// quantity H. A [Monitor] compares consecutive values of H and, once the
// relative drift exceeds [Tolerance] for the step size, marks the run
// [Unstable] for good:
//
//	sim, err := lotka.New(lotka.Params{Dt: 0.001, A: 1, B: 1, C: 1, D: 1, X0: 10, Y0: 5})
//	if err != nil {
//	    return err
//	}
//	if ok, err := sim.AdvanceTime(1.0); err != nil {
//	    return err
//	} else if !ok {
//	    log.Printf("unstable, drift=%g", sim.TriggerDrift())
//	}
//
// Instability is not an error. Only invalid parameters, invalid durations
// and out-of-range lookups are reported through the dynamo sentinels.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. The engine is single-threaded
// and deterministic; drive it from one goroutine.
package lotka
