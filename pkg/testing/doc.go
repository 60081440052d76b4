// Package testing provides deterministic-time helpers for testing fluid
// scroll behavior.
//
// Scroll trajectories are pure functions of elapsed time, so a test that
// controls the clock controls the whole simulation:
//
//	clock := fluidtest.NewFakeClock()
//	defer animation.SetClock(animation.SetClock(clock))
//
//	position.EndDrag(2000)
//	clock.Advance(16 * time.Millisecond)
//	animation.StepTickers()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fluidtest "github.com/go-drift/fluid/pkg/testing"
package testing
