// Package viz provides the terminal live view of a predator-prey run.
//
// [Model] is a Bubble Tea program that advances the simulation on every tick
// and draws the (prey, predator) orbit on a Braille [Canvas], with an energy
// chart beside it. Advancing stops for good once the run turns unstable.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the initial densities
//	+/-   - More/fewer steps per tick
//	T     - Cycle color themes
//	S     - Save the orbit as SVG
//	?     - Show help overlay
//	Q     - Quit
package viz
