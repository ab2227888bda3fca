// Package bs prices European call options and their binary variants under
// the Black-Scholes model, including options whose time to expiration is
// Gamma-distributed around a holding period.
package bs

import "math"

func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// Call returns the present value of a European call. Degenerate inputs are
// resolved before any transcendental is touched, so the function never fails
// on finite input.
func Call(s, k, t, vol, r float64) float64 {
	if k <= 0 {
		return s
	}
	if s <= 0 {
		return 0.0
	}
	if vol <= 0 || t <= 0 {
		return math.Max(0.0, s-k)
	}
	vs := vol * math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*vol*vol)*t) / vs
	d2 := d1 - vs
	return s*normCDF(d1) - k*math.Exp(-r*t)*normCDF(d2)
}

// Digital returns the present value of a binary call paying 1 when the stock
// finishes above the strike: the exercise probability times the discount
// factor.
func Digital(s, k, t, vol, r float64) float64 {
	if k <= 0 {
		return 1.0
	}
	if s <= 0 {
		return 0.0
	}
	if vol <= 0 || t <= 0 {
		if s > k {
			return 1.0
		}
		return 0.0
	}
	vs := vol * math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*vol*vol)*t) / vs
	d2 := d1 - vs
	return math.Exp(-r*t) * normCDF(d2)
}
