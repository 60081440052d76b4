package gestures

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// lsq2Velocity fits position(tau) = a0 + a1*tau + a2*tau^2 over the retained
// samples, with tau measured backwards from the newest sample, and returns
// a1: the instantaneous velocity at the newest sample. Degenerate sample
// spacing falls back to a linear fit, then to a finite difference.
func lsq2Velocity(times, positions []float64) float64 {
	n := len(times)
	newest := times[n-1]
	taus := make([]float64, n)
	distinct := 0
	for i, t := range times {
		taus[i] = t - newest
		if i == 0 || taus[i] != taus[i-1] {
			distinct++
		}
	}

	if distinct >= 3 {
		if velocity, ok := polyFitVelocity(taus, positions, 3); ok {
			return velocity
		}
	}
	if distinct >= 2 {
		if velocity, ok := polyFitVelocity(taus, positions, 2); ok {
			return velocity
		}
	}
	return finiteDifference(times, positions)
}

// polyFitVelocity solves the least-squares polynomial fit with the given
// number of coefficients via QR factorization and returns the linear
// coefficient. ok is false when the design matrix is rank deficient or the
// solution is non-finite.
func polyFitVelocity(taus, positions []float64, terms int) (velocity float64, ok bool) {
	n := len(taus)
	if n < terms {
		return 0, false
	}
	design := mat.NewDense(n, terms, nil)
	for i, tau := range taus {
		basis := 1.0
		for j := range terms {
			design.Set(i, j, basis)
			basis *= tau
		}
	}
	rhs := mat.NewDense(n, 1, nil)
	for i, p := range positions {
		rhs.Set(i, 0, p)
	}

	var qr mat.QR
	qr.Factorize(design)
	var coefficients mat.Dense
	if err := qr.SolveTo(&coefficients, false, rhs); err != nil {
		return 0, false
	}
	velocity = coefficients.At(1, 0)
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0, false
	}
	return velocity, true
}

// finiteDifference returns the velocity of the newest adjacent pair with a
// positive time step, or zero if none exists.
func finiteDifference(times, positions []float64) float64 {
	for i := len(times) - 1; i > 0; i-- {
		dt := times[i] - times[i-1]
		if dt > 0 {
			return (positions[i] - positions[i-1]) / dt
		}
	}
	return 0
}
