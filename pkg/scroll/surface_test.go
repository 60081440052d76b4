package scroll

import (
	"testing"
	"time"

	"github.com/go-drift/fluid/pkg/graphics"
	"github.com/go-drift/fluid/pkg/tuning"
)

func newTestSurface() *Surface {
	s := NewSurface(nil, tuning.Default(), nil)
	s.SetViewportSize(graphics.Size{Width: 400, Height: 600})
	s.SetContentSize(graphics.Size{Width: 2000, Height: 5000})
	return s
}

func TestSurface_ExtentsFromContentSize(t *testing.T) {
	withFakeClock(t)
	s := newTestSurface()

	if s.X.MaxOffset() != 1600 {
		t.Errorf("X max = %f, want 1600", s.X.MaxOffset())
	}
	if s.Y.MaxOffset() != 4400 {
		t.Errorf("Y max = %f, want 4400", s.Y.MaxOffset())
	}

	// Content smaller than the viewport cannot scroll.
	s.SetContentSize(graphics.Size{Width: 300, Height: 200})
	if s.X.MaxOffset() != 0 || s.Y.MaxOffset() != 0 {
		t.Errorf("small content extents = (%f, %f), want (0, 0)", s.X.MaxOffset(), s.Y.MaxOffset())
	}
}

func TestSurface_DragBothAxes(t *testing.T) {
	withFakeClock(t)
	s := newTestSurface()

	s.BeginDrag()
	s.ApplyUserOffset(graphics.Offset{X: 30, Y: 70})

	if got := s.ContentOffset(); got != (graphics.Offset{X: 30, Y: 70}) {
		t.Errorf("ContentOffset = %v", got)
	}
}

func TestSurface_DiagonalFlingStopsTogether(t *testing.T) {
	clock := withFakeClock(t)
	s := newTestSurface()

	s.EndDrag(graphics.Offset{X: 800, Y: 1200})
	if !s.Decelerating() {
		t.Fatal("surface should be decelerating after the fling")
	}

	pump(clock, 6*time.Second)

	if s.Decelerating() {
		t.Fatal("surface should have settled")
	}
	if s.X.State() != StateIdle || s.Y.State() != StateIdle {
		t.Errorf("states = (%v, %v), want both idle", s.X.State(), s.Y.State())
	}
}

func TestSurface_HaltCouplingStopsSlowAxis(t *testing.T) {
	clock := withFakeClock(t)
	s := newTestSurface()

	// Both axes start at the same modest speed; the combined speed crosses
	// the shared halt threshold before either axis reaches its individual
	// stop threshold, so the axes stop on the same frame.
	s.EndDrag(graphics.Offset{X: 40, Y: 40})

	for range 1000 {
		pump(clock, 16*time.Millisecond)
		xIdle := s.X.State() == StateIdle
		yIdle := s.Y.State() == StateIdle
		if xIdle != yIdle {
			t.Fatal("coupled axes must stop on the same frame")
		}
		if xIdle && yIdle {
			return
		}
	}
	t.Fatal("surface never settled")
}

func TestSurface_BounceIsNotCutShortByCoupling(t *testing.T) {
	clock := withFakeClock(t)
	s := newTestSurface()

	// Y overscrolls and springs back while X is idle; the slow end of the
	// bounce must be allowed to finish on its own.
	s.BeginDrag()
	s.ApplyUserOffset(graphics.Offset{X: 0, Y: -90})
	s.EndDrag(graphics.Offset{})

	if s.Y.State() != StateBouncing {
		t.Fatalf("Y state = %v, want bouncing", s.Y.State())
	}
	pump(clock, 3*time.Second)

	if s.Y.Offset() != 0 {
		t.Errorf("Y offset = %f, want settled exactly at the bound", s.Y.Offset())
	}
}
