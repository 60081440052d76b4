package graphics

import "testing"

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: -2}
	b := Offset{X: 1, Y: 4}

	if got := a.Add(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: -6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Offset{X: 6, Y: -4}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Mul(b); got != (Offset{X: 3, Y: -8}) {
		t.Errorf("Mul = %v", got)
	}
}

func TestOffsetDivByZeroIsIdentity(t *testing.T) {
	a := Offset{X: 10, Y: -6}

	if got := a.Div(0); got != a {
		t.Errorf("Div(0) = %v, want %v", got, a)
	}
	if got := a.Div(2); got != (Offset{X: 5, Y: -3}) {
		t.Errorf("Div(2) = %v", got)
	}

	// A zero component divides only the other axis.
	if got := a.DivOffset(Offset{X: 0, Y: 2}); got != (Offset{X: 10, Y: -3}) {
		t.Errorf("DivOffset zero X = %v", got)
	}
	if got := a.DivOffset(Offset{X: 2, Y: 0}); got != (Offset{X: 5, Y: -6}) {
		t.Errorf("DivOffset zero Y = %v", got)
	}
}

func TestOffsetClamp(t *testing.T) {
	min := Offset{X: 0, Y: 0}
	max := Offset{X: 100, Y: 50}

	if got := (Offset{X: -10, Y: 25}).Clamp(min, max); got != (Offset{X: 0, Y: 25}) {
		t.Errorf("Clamp below = %v", got)
	}
	if got := (Offset{X: 150, Y: 60}).Clamp(min, max); got != (Offset{X: 100, Y: 50}) {
		t.Errorf("Clamp above = %v", got)
	}
}

func TestEdgeInsets(t *testing.T) {
	a := EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	b := EdgeInsets{Top: 10, Left: 20, Bottom: 30, Right: 40}

	sum := a.Add(b)
	if sum != (EdgeInsets{Top: 11, Left: 22, Bottom: 33, Right: 44}) {
		t.Errorf("Add = %v", sum)
	}
	if got := a.Horizontal(); got != 6 {
		t.Errorf("Horizontal = %f, want 6", got)
	}
	if got := a.Vertical(); got != 4 {
		t.Errorf("Vertical = %f, want 4", got)
	}
}
