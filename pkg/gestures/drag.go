package gestures

import (
	"math"

	"github.com/go-drift/fluid/pkg/graphics"
)

// Axis selects the scroll direction a recognizer cares about.
type Axis int

const (
	// AxisHorizontal follows the X component of pointer positions.
	AxisHorizontal Axis = iota
	// AxisVertical follows the Y component of pointer positions.
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the initial touch.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position update while touching.
	PointerPhaseMove
	// PointerPhaseUp is the finger lift.
	PointerPhaseUp
	// PointerPhaseCancel aborts the gesture without a lift.
	PointerPhaseCancel
)

// PointerEvent is one touch sample delivered to a recognizer.
type PointerEvent struct {
	// PointerID distinguishes concurrent touches.
	PointerID int64
	// Position is the touch location in points.
	Position graphics.Offset
	// Time is seconds on a monotonic clock.
	Time float64
	// Phase is the event stage.
	Phase PointerPhase
}

// DefaultTouchSlop is the distance in points a touch must travel along the
// recognizer's axis before it counts as a drag.
const DefaultTouchSlop = 3.0

// DragStartDetails reports the acceptance of a drag.
type DragStartDetails struct {
	// Position is the pointer location when the slop was exceeded.
	Position graphics.Offset
	// Time is the event time in seconds.
	Time float64
}

// DragUpdateDetails reports pointer movement during an accepted drag.
type DragUpdateDetails struct {
	// Delta is the movement along the recognizer's axis since the previous
	// update, in points.
	Delta float64
	// Position is the current pointer location.
	Position graphics.Offset
	// Time is the event time in seconds.
	Time float64
}

// DragEndDetails reports the finger lift ending an accepted drag.
type DragEndDetails struct {
	// Velocity is the estimated release velocity along the recognizer's
	// axis, in points per second.
	Velocity float64
}

// DragGestureRecognizer detects single-axis drags.
//
// Feed it every pointer event for one touch sequence. Once movement along
// the configured axis exceeds the touch slop the recognizer accepts the
// drag, invokes OnStart, and reports per-event deltas through OnUpdate.
// Every move sample is fed to an internal velocity tracker so OnEnd can
// carry the release velocity.
//
// The recognizer is synchronous and single-owner, like the rest of the
// scroll core; callbacks run inline from HandleEvent.
type DragGestureRecognizer struct {
	// Axis is the direction this recognizer follows.
	Axis Axis
	// TouchSlop overrides DefaultTouchSlop when positive.
	TouchSlop float64

	// OnStart is invoked when the drag is accepted.
	OnStart func(DragStartDetails)
	// OnUpdate is invoked for each move after acceptance.
	OnUpdate func(DragUpdateDetails)
	// OnEnd is invoked on finger lift after acceptance.
	OnEnd func(DragEndDetails)
	// OnCancel is invoked when an accepted drag is aborted.
	OnCancel func()

	tracker  *VelocityTracker
	tracking bool
	accepted bool
	pointer  int64
	origin   float64
	last     float64
}

// NewDragGestureRecognizer returns a recognizer for the given axis using the
// default velocity tracker strategy.
func NewDragGestureRecognizer(axis Axis) *DragGestureRecognizer {
	return NewDragGestureRecognizerWithStrategy(axis, StrategyRecurrence)
}

// NewDragGestureRecognizerWithStrategy returns a recognizer whose release
// velocity is estimated with the given strategy.
func NewDragGestureRecognizerWithStrategy(axis Axis, strategy VelocityTrackerStrategy) *DragGestureRecognizer {
	return &DragGestureRecognizer{
		Axis:    axis,
		tracker: NewVelocityTracker(strategy),
	}
}

// Tracking reports whether a pointer is currently down on this recognizer.
func (r *DragGestureRecognizer) Tracking() bool { return r.tracking }

// Dragging reports whether the touch slop has been exceeded and the drag
// accepted.
func (r *DragGestureRecognizer) Dragging() bool { return r.accepted }

// HandleEvent consumes one pointer event.
func (r *DragGestureRecognizer) HandleEvent(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		if r.tracking {
			return
		}
		r.tracking = true
		r.accepted = false
		r.pointer = event.PointerID
		r.origin = r.axisValue(event.Position)
		r.last = r.origin
		r.ensureTracker()
		r.tracker.Reset()
		r.tracker.AddSample(event.Time, r.origin)
	case PointerPhaseMove:
		if !r.tracking || event.PointerID != r.pointer {
			return
		}
		value := r.axisValue(event.Position)
		r.tracker.AddSample(event.Time, value)
		if !r.accepted {
			if math.Abs(value-r.origin) <= r.slop() {
				return
			}
			r.accepted = true
			r.last = value
			if r.OnStart != nil {
				r.OnStart(DragStartDetails{Position: event.Position, Time: event.Time})
			}
			return
		}
		delta := value - r.last
		r.last = value
		if r.OnUpdate != nil {
			r.OnUpdate(DragUpdateDetails{Delta: delta, Position: event.Position, Time: event.Time})
		}
	case PointerPhaseUp:
		if !r.tracking || event.PointerID != r.pointer {
			return
		}
		wasAccepted := r.accepted
		r.tracking = false
		r.accepted = false
		if wasAccepted && r.OnEnd != nil {
			r.OnEnd(DragEndDetails{Velocity: r.tracker.Estimate()})
		}
	case PointerPhaseCancel:
		if !r.tracking || event.PointerID != r.pointer {
			return
		}
		wasAccepted := r.accepted
		r.tracking = false
		r.accepted = false
		r.tracker.Reset()
		if wasAccepted && r.OnCancel != nil {
			r.OnCancel()
		}
	}
}

func (r *DragGestureRecognizer) axisValue(position graphics.Offset) float64 {
	if r.Axis == AxisHorizontal {
		return position.X
	}
	return position.Y
}

func (r *DragGestureRecognizer) slop() float64 {
	if r.TouchSlop > 0 {
		return r.TouchSlop
	}
	return DefaultTouchSlop
}

func (r *DragGestureRecognizer) ensureTracker() {
	if r.tracker == nil {
		r.tracker = NewVelocityTracker(StrategyRecurrence)
	}
}
