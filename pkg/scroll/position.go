package scroll

import (
	"math"
	"time"

	"github.com/go-drift/fluid/pkg/animation"
	"github.com/go-drift/fluid/pkg/physics"
	"github.com/go-drift/fluid/pkg/tuning"
)

// State identifies who currently defines a position's offset.
type State int

const (
	// StateIdle means the offset is at rest.
	StateIdle State = iota
	// StateDragging means the user's finger defines the offset.
	StateDragging
	// StateDecelerating means a fling trajectory defines the offset.
	StateDecelerating
	// StateBouncing means a spring-back trajectory defines the offset.
	StateBouncing
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDecelerating:
		return "decelerating"
	case StateBouncing:
		return "bouncing"
	default:
		return "unknown"
	}
}

// Position stores the scroll state of a single axis and runs its state
// machine: dragging with rubber-band resistance past the bounds, inertial
// deceleration after release, and spring-back from an overshoot.
//
// A position is exclusively owned by its driver. Ballistic motion advances
// when the embedding pumps [animation.StepTickers] from its display-refresh
// callback.
type Position struct {
	profile  tuning.Profile
	offset   float64
	raw      float64
	min      float64
	max      float64
	viewport float64
	state    State
	tracking bool

	scroller physics.Scroller
	spring   physics.SpringBack
	// origin anchors the active ballistic trajectory: the release offset
	// for a fling, the violated bound for a spring-back.
	origin float64
	ticker *animation.Ticker

	onUpdate   func()
	controller *Controller
}

// NewPosition creates a position configured by profile. The optional
// controller receives attachment and observer notifications; onUpdate, if
// non-nil, runs after every offset change.
func NewPosition(controller *Controller, profile tuning.Profile, onUpdate func()) *Position {
	profile = profile.Sanitized()
	p := &Position{
		profile:    profile,
		scroller:   physics.NewScroller(profile.DecelerationRate),
		onUpdate:   onUpdate,
		controller: controller,
	}
	p.ticker = animation.NewTicker(p.step)
	if controller != nil {
		p.offset = controller.InitialOffset
		p.raw = p.offset
		controller.attach(p)
	}
	return p
}

// Offset returns the current displayed offset in points.
func (p *Position) Offset() float64 { return p.offset }

// State returns who currently defines the offset.
func (p *Position) State() State { return p.state }

// Tracking reports whether a finger is down, whether or not it has started
// dragging.
func (p *Position) Tracking() bool { return p.tracking }

// Dragging reports whether the finger currently defines the offset.
func (p *Position) Dragging() bool { return p.state == StateDragging }

// Decelerating reports whether the content is still moving after the finger
// lifted.
func (p *Position) Decelerating() bool {
	return p.state == StateDecelerating || p.state == StateBouncing
}

// MinOffset returns the lower scroll bound.
func (p *Position) MinOffset() float64 { return p.min }

// MaxOffset returns the upper scroll bound.
func (p *Position) MaxOffset() float64 { return p.max }

// SetExtents updates the scrollable range. The current offset is left in
// place; an offset now outside the bounds springs back on the next release
// or ballistic step.
func (p *Position) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
}

// SetViewport updates the viewport dimension used by the rubber band.
func (p *Position) SetViewport(extent float64) {
	if extent < 0 {
		extent = 0
	}
	p.viewport = extent
	if p.controller != nil {
		p.controller.setViewportExtent(extent)
	}
}

// Viewport returns the viewport dimension in points.
func (p *Position) Viewport() float64 { return p.viewport }

// BeginDrag puts the finger in control, freezing any ballistic motion at
// its current offset.
func (p *Position) BeginDrag() {
	p.stopBallistic()
	p.tracking = true
	p.state = StateDragging
	p.raw = p.rawFromDisplayed(p.offset)
}

// ApplyUserOffset moves the offset by a raw finger delta. Past a bound the
// delta accumulates uncompressed and the displayed offset is the
// rubber-banded projection, so the finger feels progressive resistance.
func (p *Position) ApplyUserOffset(delta float64) {
	if p.state != StateDragging {
		p.BeginDrag()
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	p.raw += delta
	p.setOffset(p.displayedFromRaw(p.raw))
}

// EndDrag releases the finger with a velocity in points per second. Within
// bounds the velocity feeds a fling; past a bound it feeds the spring-back
// together with the current overshoot distance.
func (p *Position) EndDrag(velocity float64) {
	p.tracking = false
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	if bound, over := p.overshoot(); over != 0 {
		p.absorb(bound, over, velocity)
		return
	}
	p.scroller.Fling(velocity)
	p.origin = p.offset
	p.state = StateDecelerating
	p.ticker.Start()
	p.step(0)
}

// Stop freezes any ballistic motion at the current offset.
func (p *Position) Stop() {
	p.stopBallistic()
}

// JumpTo moves directly to an offset clamped inside the bounds, cancelling
// any motion.
func (p *Position) JumpTo(offset float64) {
	p.stopBallistic()
	p.tracking = false
	if offset < p.min {
		offset = p.min
	}
	if offset > p.max {
		offset = p.max
	}
	p.raw = offset
	p.setOffset(offset)
}

// AnimateTo runs the spring toward target from the current offset,
// reusing the bounce response for a natural programmatic scroll.
func (p *Position) AnimateTo(target float64) {
	velocity := p.Velocity()
	p.stopBallistic()
	p.tracking = false
	if target < p.min {
		target = p.min
	}
	if target > p.max {
		target = p.max
	}
	if target == p.offset {
		return
	}
	p.absorb(target, p.offset-target, velocity)
}

// Velocity returns the instantaneous ballistic velocity in points per
// second, or zero when the finger is down or the position is idle.
func (p *Position) Velocity() float64 {
	elapsed := p.ticker.Elapsed().Seconds()
	switch p.state {
	case StateDecelerating:
		_, velocity, _ := p.scroller.Value(elapsed)
		return velocity
	case StateBouncing:
		return p.spring.Velocity(elapsed)
	default:
		return 0
	}
}

// absorb hands the offset to the spring-back anchored at bound.
func (p *Position) absorb(bound, distance, velocity float64) {
	p.spring.AbsorbWithResponse(velocity, distance, p.profile.BounceResponse)
	p.origin = bound
	p.state = StateBouncing
	p.ticker.Start()
	p.step(0)
}

// step advances the active ballistic trajectory to the given elapsed time.
func (p *Position) step(elapsed time.Duration) {
	seconds := elapsed.Seconds()
	switch p.state {
	case StateDecelerating:
		displacement, velocity, done := p.scroller.Value(seconds)
		offset := p.origin + displacement
		if offset < p.min || offset > p.max {
			// The fling crossed a bound; the spring absorbs the residual
			// velocity at the crossing.
			bound := p.min
			if offset > p.max {
				bound = p.max
			}
			p.absorb(bound, offset-bound, velocity)
			return
		}
		p.setOffset(offset)
		if done {
			p.finishBallistic(offset)
		}
	case StateBouncing:
		residual, done := p.spring.Value(seconds)
		if done {
			p.setOffset(p.origin)
			p.finishBallistic(p.origin)
			return
		}
		p.setOffset(p.origin + residual)
	}
}

func (p *Position) finishBallistic(offset float64) {
	p.ticker.Stop()
	p.state = StateIdle
	p.raw = offset
	p.scroller.Reset()
	p.spring.Reset()
}

func (p *Position) stopBallistic() {
	p.ticker.Stop()
	p.scroller.Reset()
	p.spring.Reset()
	if p.state != StateDragging {
		p.state = StateIdle
	}
	p.raw = p.rawFromDisplayed(p.offset)
}

// overshoot returns the violated bound and the signed displayed overshoot
// distance, or (0, 0) when the offset is within bounds.
func (p *Position) overshoot() (bound, distance float64) {
	if p.offset < p.min {
		return p.min, p.offset - p.min
	}
	if p.offset > p.max {
		return p.max, p.offset - p.max
	}
	return 0, 0
}

// displayedFromRaw compresses the out-of-bounds part of a raw offset.
func (p *Position) displayedFromRaw(raw float64) float64 {
	coefficient := p.profile.RubberBandCoefficient
	if raw < p.min {
		return p.min + physics.RubberBandOffsetWithCoefficient(raw-p.min, p.viewport, coefficient)
	}
	if raw > p.max {
		return p.max + physics.RubberBandOffsetWithCoefficient(raw-p.max, p.viewport, coefficient)
	}
	return raw
}

// rawFromDisplayed inverts the rubber-band compression so a new drag can
// continue from a displayed overshoot without a jump.
func (p *Position) rawFromDisplayed(displayed float64) float64 {
	coefficient := p.profile.RubberBandCoefficient
	if displayed < p.min {
		return p.min + invertRubberBand(displayed-p.min, p.viewport, coefficient)
	}
	if displayed > p.max {
		return p.max + invertRubberBand(displayed-p.max, p.viewport, coefficient)
	}
	return displayed
}

// invertRubberBand maps a displayed overshoot back to the raw distance that
// produces it. Displayed magnitudes at or past the saturation limit have no
// finite preimage and map to themselves.
func invertRubberBand(displayed, extent, coefficient float64) float64 {
	if extent <= 0 || coefficient <= 0 {
		return displayed
	}
	limit := coefficient * extent
	magnitude := math.Abs(displayed)
	if magnitude >= limit {
		return displayed
	}
	// displayed = (1 - 1/(raw/limit + 1)) * limit, solved for raw.
	raw := magnitude * limit / (limit - magnitude)
	return math.Copysign(raw, displayed)
}

func (p *Position) setOffset(offset float64) {
	if offset == p.offset {
		return
	}
	p.offset = offset
	p.notify()
}

func (p *Position) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
	if p.controller != nil {
		p.controller.notifyObservers()
	}
}
