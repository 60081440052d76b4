// Package physics implements the scroll physics core: inertial deceleration
// after a fling, rubber-band resistance past the content bounds, and a
// critically damped spring that returns an overshot offset to rest.
//
// # Design
//
// Every component is a pure closed-form simulation. A component is configured
// with its initial conditions (a fling velocity, an overshoot distance) and
// then queried with the elapsed time since that event:
//
//	var s physics.Scroller
//	s.Fling(2000)
//	offset, velocity, done := s.Value(elapsed.Seconds())
//
// Queries at the same elapsed time always produce bit-identical results.
// There is no internal time source, no allocation on the query path, and no
// shared state between components; the scroll driver decides per frame which
// component's output defines the current content offset.
//
// All offsets are in points, velocities in points per second. Components are
// plain value types and may live on the stack. None of the operations fail:
// invalid inputs (negative times, non-finite velocities, out-of-range rates)
// are clamped or ignored as documented on each method.
package physics
