// Package scroll composes the physics core into a scroll surface driver.
//
// A [Position] owns the scroll state of one axis: its offset, extents, and
// the state machine that hands the offset between the user's finger, the
// fling scroller, and the spring-back. A [Controller] lets the embedding
// observe and command attached positions. A [Surface] pairs two positions
// for a 2-D content view, coupling them only through the shared
// approaching-halt predicate.
//
// The driver is synchronous: pointer deltas and release velocities go in
// through [Position.ApplyUserOffset] and [Position.EndDrag], and each
// display frame advances any ballistic motion through
// [animation.StepTickers]. Offsets grow with content moving up/left, as in
// the usual content-offset convention.
package scroll
