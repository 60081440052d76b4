// Package main builds the C-ABI adapter for the fluid scroll core
// (go build -buildmode=c-shared ./capi).
//
// The adapter is a thin translation layer: fixed-size opaque blobs for the
// scroller and spring-back so callers can stack-allocate them, and a
// heap-owned handle with an explicit free for the velocity tracker. All
// physics lives in the Go packages; nothing here computes.
package main

/*
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
  char padding[16];
} FlScroller;

typedef struct {
  float offset;
  float velocity;
} FlScrollerValue;

typedef struct {
  char padding[16];
} FlSpringBack;

typedef struct fl_velocity_tracker FlVelocityTracker;
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	fluiderrors "github.com/go-drift/fluid/pkg/errors"
	"github.com/go-drift/fluid/pkg/gestures"
	"github.com/go-drift/fluid/pkg/physics"
)

// scrollerState is the Go view of the FlScroller padding blob.
type scrollerState struct {
	velocity float32
	rate     float32
}

// springBackState is the Go view of the FlSpringBack padding blob.
type springBackState struct {
	distance float32
	velocity float32
	response float32
	active   int32
}

func scrollerOf(s *C.FlScroller) *scrollerState {
	return (*scrollerState)(unsafe.Pointer(s))
}

func springBackOf(s *C.FlSpringBack) *springBackState {
	return (*springBackState)(unsafe.Pointer(s))
}

//export fl_scroller_init
func fl_scroller_init(scroller *C.FlScroller, decelerationRate C.float) {
	if scroller == nil {
		return
	}
	core := physics.NewScroller(float64(decelerationRate))
	*scrollerOf(scroller) = scrollerState{rate: float32(core.DecelerationRate())}
}

//export fl_scroller_init_default
func fl_scroller_init_default(scroller *C.FlScroller) {
	fl_scroller_init(scroller, physics.DecelerationRateNormal)
}

//export fl_scroller_set_deceleration_rate
func fl_scroller_set_deceleration_rate(scroller *C.FlScroller, decelerationRate C.float) {
	if scroller == nil {
		return
	}
	state := scrollerOf(scroller)
	core := physics.NewScroller(float64(decelerationRate))
	state.rate = float32(core.DecelerationRate())
}

//export fl_scroller_fling
func fl_scroller_fling(scroller *C.FlScroller, velocity C.float) {
	if scroller == nil {
		return
	}
	state := scrollerOf(scroller)
	core := physics.NewScroller(float64(state.rate))
	core.Fling(float64(velocity))
	_, remaining, _ := core.Value(0)
	state.velocity = float32(remaining)
}

//export fl_scroller_value
func fl_scroller_value(scroller *C.FlScroller, time C.float, outStop *C.bool) C.FlScrollerValue {
	if scroller == nil {
		if outStop != nil {
			*outStop = C.bool(true)
		}
		return C.FlScrollerValue{}
	}
	state := scrollerOf(scroller)
	core := physics.NewScroller(float64(state.rate))
	core.Fling(float64(state.velocity))
	offset, velocity, done := core.Value(float64(time))
	if outStop != nil {
		*outStop = C.bool(done)
	}
	return C.FlScrollerValue{offset: C.float(offset), velocity: C.float(velocity)}
}

//export fl_scroller_reset
func fl_scroller_reset(scroller *C.FlScroller) {
	if scroller == nil {
		return
	}
	scrollerOf(scroller).velocity = 0
}

//export fl_spring_back_init
func fl_spring_back_init(springBack *C.FlSpringBack) {
	if springBack == nil {
		return
	}
	*springBackOf(springBack) = springBackState{}
}

//export fl_spring_back_absorb
func fl_spring_back_absorb(springBack *C.FlSpringBack, velocity, distance C.float) {
	fl_spring_back_absorb_with_response(springBack, velocity, distance, physics.DefaultSpringBackResponse)
}

//export fl_spring_back_absorb_with_response
func fl_spring_back_absorb_with_response(springBack *C.FlSpringBack, velocity, distance, response C.float) {
	if springBack == nil {
		return
	}
	var core physics.SpringBack
	core.AbsorbWithResponse(float64(velocity), float64(distance), float64(response))
	if response <= 0 {
		response = physics.DefaultSpringBackResponse
	}
	*springBackOf(springBack) = springBackState{
		distance: float32(distance),
		velocity: float32(velocity),
		response: float32(response),
		active:   1,
	}
}

//export fl_spring_back_value
func fl_spring_back_value(springBack *C.FlSpringBack, time C.float, outStop *C.bool) C.float {
	if springBack == nil {
		if outStop != nil {
			*outStop = C.bool(true)
		}
		return 0
	}
	state := springBackOf(springBack)
	if state.active == 0 {
		if outStop != nil {
			*outStop = C.bool(true)
		}
		return 0
	}
	var core physics.SpringBack
	core.AbsorbWithResponse(float64(state.velocity), float64(state.distance), float64(state.response))
	offset, done := core.Value(float64(time))
	if outStop != nil {
		*outStop = C.bool(done)
	}
	return C.float(offset)
}

//export fl_spring_back_reset
func fl_spring_back_reset(springBack *C.FlSpringBack) {
	fl_spring_back_init(springBack)
}

//export fl_calculate_rubber_band_offset
func fl_calculate_rubber_band_offset(offset, extent C.float) C.float {
	return C.float(physics.RubberBandOffset(float64(offset), float64(extent)))
}

//export fl_velocity_tracker_new
func fl_velocity_tracker_new(strategy C.int) *C.FlVelocityTracker {
	s := gestures.StrategyRecurrence
	if strategy == 1 {
		s = gestures.StrategyLSQ2
	}
	handle := cgo.NewHandle(gestures.NewVelocityTracker(s))
	p := C.malloc(C.size_t(unsafe.Sizeof(cgo.Handle(0))))
	*(*cgo.Handle)(p) = handle
	return (*C.FlVelocityTracker)(p)
}

//export fl_velocity_tracker_new_default
func fl_velocity_tracker_new_default() *C.FlVelocityTracker {
	return fl_velocity_tracker_new(0)
}

//export fl_velocity_tracker_free
func fl_velocity_tracker_free(tracker *C.FlVelocityTracker) {
	defer fluiderrors.Recover("capi.fl_velocity_tracker_free")
	if tracker == nil {
		return
	}
	p := unsafe.Pointer(tracker)
	(*(*cgo.Handle)(p)).Delete()
	C.free(p)
}

//export fl_velocity_tracker_add_data_point
func fl_velocity_tracker_add_data_point(tracker *C.FlVelocityTracker, time, position C.float) {
	if t := trackerOf(tracker); t != nil {
		t.AddSample(float64(time), float64(position))
	}
}

//export fl_velocity_tracker_calculate_velocity
func fl_velocity_tracker_calculate_velocity(tracker *C.FlVelocityTracker) C.float {
	if t := trackerOf(tracker); t != nil {
		return C.float(t.Estimate())
	}
	return 0
}

//export fl_velocity_tracker_reset
func fl_velocity_tracker_reset(tracker *C.FlVelocityTracker) {
	if t := trackerOf(tracker); t != nil {
		t.Reset()
	}
}

//export fl_velocity_approaching_halt
func fl_velocity_approaching_halt(vx, vy C.float) C.bool {
	return C.bool(gestures.ApproachingHalt(float64(vx), float64(vy)))
}

func trackerOf(tracker *C.FlVelocityTracker) *gestures.VelocityTracker {
	defer fluiderrors.Recover("capi.tracker_handle")
	if tracker == nil {
		return nil
	}
	handle := *(*cgo.Handle)(unsafe.Pointer(tracker))
	value, ok := handle.Value().(*gestures.VelocityTracker)
	if !ok {
		return nil
	}
	return value
}

func main() {}
