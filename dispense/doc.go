// Package dispense implements the pour/orbit state machine of the ice cream machine.
//
// A Controller owns at most one Session. Begin starts a pour for a flavor into a
// cone, Tick advances it once per frame, and End stops it. While a session is
// active each Tick:
//
//   - advances progress by OrbitSpeed*dt
//   - on reaching 1, sends the rig home, marks the cone filled and ends itself
//   - emits spawn events at PourRate, including on the completing tick
//   - moves the rig toward the cone curve with exponential smoothing
//
// States are Idle, Active and Completing. Completing lasts only for the tick
// that reaches full; the controller is Idle again when Tick returns.
//
// The controller is not safe for concurrent use. The game loop is its single
// owner and marshals input onto the loop goroutine.
package dispense
