// Package physics provides the predator-prey model for simulation.
//
// [LotkaVolterra] implements [dynamo.System] in rescaled coordinates, where
// the update equations take a parameter-free form around the fixed point
// (1, 1), and [dynamo.Hamiltonian] for the conserved quantity
//
//	H(x, y) = −D·ln(x) + C·x + B·y − A·ln(y)
//
// The coordinate maps [ToRelative] and [ToAbsolute] are pure functions of
// the [Coefficients], so callers never hold a cached rescaled state.
//
// # Energy Conservation
//
// H is exactly conserved by the continuous flow and drifts by O(dt) under
// forward Euler:
//
//	dyn := physics.NewLotkaVolterra(2, 0.1, 0.1, 1)
//	energy := physics.Hamiltonian(dyn.Coefficients, 9, 20)
package physics
