package scroll

import (
	"github.com/go-drift/fluid/pkg/gestures"
	"github.com/go-drift/fluid/pkg/graphics"
	"github.com/go-drift/fluid/pkg/tuning"
)

// Surface pairs two positions into a 2-D scroll surface.
//
// The axes run independent simulations; their only coupling is the shared
// approaching-halt predicate, which stops both axes together once the
// combined ballistic speed becomes imperceptible, so a diagonal fling does
// not end with one axis creeping alone.
type Surface struct {
	// X is the horizontal position.
	X *Position
	// Y is the vertical position.
	Y *Position
}

// NewSurface creates a surface whose axes share a profile and controller.
// The optional onUpdate runs after any offset change on either axis.
func NewSurface(controller *Controller, profile tuning.Profile, onUpdate func()) *Surface {
	s := &Surface{}
	s.X = NewPosition(controller, profile, func() {
		s.settle()
		if onUpdate != nil {
			onUpdate()
		}
	})
	s.Y = NewPosition(controller, profile, func() {
		s.settle()
		if onUpdate != nil {
			onUpdate()
		}
	})
	return s
}

// ContentOffset returns the displayed offset of both axes.
func (s *Surface) ContentOffset() graphics.Offset {
	return graphics.Offset{X: s.X.Offset(), Y: s.Y.Offset()}
}

// SetContentSize updates the scrollable extents from a content size. The
// viewport size must be set first; the maximum offset per axis is the
// content overhang, never negative.
func (s *Surface) SetContentSize(content graphics.Size) {
	maxX := content.Width - s.X.Viewport()
	if maxX < 0 {
		maxX = 0
	}
	maxY := content.Height - s.Y.Viewport()
	if maxY < 0 {
		maxY = 0
	}
	s.X.SetExtents(0, maxX)
	s.Y.SetExtents(0, maxY)
}

// SetViewportSize updates the viewport dimensions of both axes.
func (s *Surface) SetViewportSize(viewport graphics.Size) {
	s.X.SetViewport(viewport.Width)
	s.Y.SetViewport(viewport.Height)
}

// BeginDrag puts the finger in control of both axes.
func (s *Surface) BeginDrag() {
	s.X.BeginDrag()
	s.Y.BeginDrag()
}

// ApplyUserOffset moves both axes by a raw finger delta.
func (s *Surface) ApplyUserOffset(delta graphics.Offset) {
	s.X.ApplyUserOffset(delta.X)
	s.Y.ApplyUserOffset(delta.Y)
}

// EndDrag releases the finger with a 2-D velocity in points per second.
func (s *Surface) EndDrag(velocity graphics.Offset) {
	s.X.EndDrag(velocity.X)
	s.Y.EndDrag(velocity.Y)
}

// Stop freezes both axes at their current offsets.
func (s *Surface) Stop() {
	s.X.Stop()
	s.Y.Stop()
}

// Decelerating reports whether either axis is still moving after release.
func (s *Surface) Decelerating() bool {
	return s.X.Decelerating() || s.Y.Decelerating()
}

// settle stops both axes once their combined fling speed approaches a
// halt. Spring-backs are left alone: a bounce must complete even when it
// is slow.
func (s *Surface) settle() {
	if s.X.State() == StateBouncing || s.Y.State() == StateBouncing {
		return
	}
	if !s.X.Decelerating() && !s.Y.Decelerating() {
		return
	}
	if gestures.ApproachingHalt(s.X.Velocity(), s.Y.Velocity()) {
		s.X.Stop()
		s.Y.Stop()
	}
}
