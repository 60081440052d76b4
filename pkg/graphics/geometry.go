// Package graphics provides the small geometry vocabulary shared by the
// fluid scroll surfaces: 2-D offsets, sizes, and edge insets, all in points.
package graphics

// Offset is a 2-D point or vector in points.
type Offset struct {
	X float64
	Y float64
}

// OffsetOne is the offset with both components set to 1.
var OffsetOne = Offset{X: 1, Y: 1}

// Add returns the component-wise sum of the two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of the two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset with both components multiplied by factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Mul returns the component-wise product of the two offsets.
func (o Offset) Mul(other Offset) Offset {
	return Offset{X: o.X * other.X, Y: o.Y * other.Y}
}

// Div returns the offset with both components divided by divisor.
// A zero divisor returns the offset unchanged.
func (o Offset) Div(divisor float64) Offset {
	if divisor == 0 {
		return o
	}
	return Offset{X: o.X / divisor, Y: o.Y / divisor}
}

// DivOffset divides component-wise. A zero divisor component leaves the
// corresponding numerator component unchanged.
func (o Offset) DivOffset(other Offset) Offset {
	result := o
	if other.X != 0 {
		result.X = o.X / other.X
	}
	if other.Y != 0 {
		result.Y = o.Y / other.Y
	}
	return result
}

// Clamp limits both components to the ranges spanned by min and max.
func (o Offset) Clamp(min, max Offset) Offset {
	return Offset{
		X: clamp(o.X, min.X, max.X),
		Y: clamp(o.Y, min.Y, max.Y),
	}
}

// Size holds a width and height in points.
type Size struct {
	Width  float64
	Height float64
}

// EdgeInsets describes distances from each edge of a rectangle.
type EdgeInsets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Add returns the edge-wise sum of the two insets.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Top:    e.Top + other.Top,
		Left:   e.Left + other.Left,
		Bottom: e.Bottom + other.Bottom,
		Right:  e.Right + other.Right,
	}
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
