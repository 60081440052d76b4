package physics

import "math"

// Deceleration rates, expressed as the fraction of velocity retained per
// millisecond after the user lifts their finger.
const (
	// DecelerationRateNormal is the default deceleration preset.
	DecelerationRateNormal = 0.998
	// DecelerationRateFast stops the content noticeably sooner.
	DecelerationRateFast = 0.99
)

// stopSpeed is the speed below which a fling is considered finished.
// Sub-pixel per frame at any realistic refresh rate.
const stopSpeed = 0.5

// Deceleration rates are kept strictly inside (0, 1); a rate of exactly 1
// would never decay and a rate of 0 has no defined trajectory.
const (
	minDecelerationRate = 1e-4
	maxDecelerationRate = 1 - 1e-4
)

// Scroller simulates inertial deceleration after a fling.
//
// Once flung, the trajectory is a fixed function of the elapsed time since
// the fling: velocity decays exponentially at a rate derived from the
// per-millisecond deceleration rate, and the offset is the integral of that
// decay. A new Fling resets elapsed time; callers measure time from the
// fling themselves and pass it to Value.
//
// The zero Scroller decelerates at DecelerationRateNormal until a rate is
// set with NewScroller, Init or SetDecelerationRate.
type Scroller struct {
	velocity float64
	rate     float64
}

// NewScroller returns a scroller with the given per-millisecond deceleration
// rate. Rates outside (0, 1) are clamped into range.
func NewScroller(decelerationRate float64) Scroller {
	var s Scroller
	s.Init(decelerationRate)
	return s
}

// Init configures the deceleration rate and clears any previous fling.
// Rates outside (0, 1) are clamped into range.
func (s *Scroller) Init(decelerationRate float64) {
	s.velocity = 0
	s.SetDecelerationRate(decelerationRate)
}

// SetDecelerationRate updates the per-millisecond deceleration rate.
// Rates outside (0, 1) are clamped into range. The new rate applies from
// the next Value query; the fling velocity is kept.
func (s *Scroller) SetDecelerationRate(decelerationRate float64) {
	if math.IsNaN(decelerationRate) {
		decelerationRate = DecelerationRateNormal
	}
	s.rate = math.Min(math.Max(decelerationRate, minDecelerationRate), maxDecelerationRate)
}

// DecelerationRate returns the current per-millisecond deceleration rate.
func (s *Scroller) DecelerationRate() float64 {
	if s.rate == 0 {
		return DecelerationRateNormal
	}
	return s.rate
}

// Fling starts a new deceleration trajectory with the given initial
// velocity in points per second and resets elapsed time to zero.
// A non-finite velocity is ignored and leaves the scroller stopped.
func (s *Scroller) Fling(velocity float64) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		s.velocity = 0
		return
	}
	s.velocity = velocity
}

// Reset returns the scroller to the no-motion state, keeping the rate.
func (s *Scroller) Reset() {
	s.velocity = 0
}

// Value reports the trajectory at the given elapsed seconds since the last
// fling. It returns the displacement from the fling position in points, the
// instantaneous velocity in points per second, and whether the fling has
// decayed below the stop threshold. Negative elapsed times are clamped to
// zero. Once done is reported the trajectory should be treated as terminal.
func (s *Scroller) Value(elapsed float64) (offset, velocity float64, done bool) {
	if s.velocity == 0 {
		return 0, 0, true
	}
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}
	alpha := 1000 * math.Log(s.DecelerationRate())
	decay := math.Exp(alpha * elapsed)
	velocity = s.velocity * decay
	offset = s.velocity * (decay - 1) / alpha
	return offset, velocity, math.Abs(velocity) < stopSpeed
}

// FinalOffset returns the displacement the current fling converges to as
// elapsed time grows without bound.
func (s *Scroller) FinalOffset() float64 {
	if s.velocity == 0 {
		return 0
	}
	alpha := 1000 * math.Log(s.DecelerationRate())
	return -s.velocity / alpha
}
