package bs

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Thresholds carried over from the production engine. A holding period at
// least 50 times its dispersion is treated as a point mass; high coefficient
// of variation or a small shape parameter piles the Gamma mass near t=0,
// where the fixed-order rule undersamples, so those cases go adaptive.
const (
	pointMassRatio   = 50.0
	adaptiveCV       = 1.5
	adaptiveMinShape = 0.5
)

// RandomExpirationCall prices a European call whose time to expiration is
// Gamma-distributed with mean h and standard deviation volH.
func (e *Engine) RandomExpirationCall(s, k, vol, r, h, volH float64) float64 {
	return e.randomExpiration(s, k, vol, r, h, volH, false)
}

// RandomExpirationDigital is the binary variant of RandomExpirationCall.
func (e *Engine) RandomExpirationDigital(s, k, vol, r, h, volH float64) float64 {
	return e.randomExpiration(s, k, vol, r, h, volH, true)
}

func (e *Engine) randomExpiration(s, k, vol, r, h, volH float64, digital bool) float64 {
	if k <= 0 {
		if digital {
			return 1.0
		}
		return s
	}
	if s <= 0 {
		return 0.0
	}
	if vol <= 0 || h <= 0 {
		// Intrinsic value / exercise indicator at t = h.
		if digital {
			return Digital(s, k, h, vol, r)
		}
		return Call(s, k, h, vol, r)
	}

	if volH == 0 || h/math.Max(volH, 1e-300) >= pointMassRatio {
		if digital {
			return Digital(s, k, h, vol, r)
		}
		return Call(s, k, h, vol, r)
	}

	variance := math.Max(volH*volH, 1e-12)
	alpha := math.Max(h*h/variance, 1e-12)
	beta := h / variance

	if preferAdaptive(h, math.Sqrt(variance), alpha) {
		return mixAdaptive(s, k, vol, r, alpha, beta, digital)
	}
	return e.mixLaguerre(s, k, vol, r, alpha, beta, digital)
}

func preferAdaptive(h, sigmaH, alpha float64) bool {
	if h <= 0 || sigmaH <= 0 {
		return false
	}
	return sigmaH/h >= adaptiveCV || alpha < adaptiveMinShape
}

// mixLaguerre takes the expectation over the Gamma density with the cached
// fixed-order rule: E[f(T)] = (1/Γ(alpha))·Σ w_i·f(x_i/beta).
func (e *Engine) mixLaguerre(s, k, vol, r, alpha, beta float64, digital bool) float64 {
	tbl := e.laguerre(alpha - 1.0)
	sum := nodeSum(s, k, vol, r, beta, tbl.x, tbl.w, digital)
	if tbl.normalized {
		return sum
	}
	return sum / math.Gamma(alpha)
}

// mixAdaptive integrates f(t)·gammaPDF(t) over (0, ∞) directly. The density
// is evaluated in log space and exponentiated back, matching the fixed-order
// path to the integrator tolerance.
func mixAdaptive(s, k, vol, r, alpha, beta float64, digital bool) float64 {
	dist := distuv.Gamma{Alpha: alpha, Beta: beta}
	f := func(t float64) float64 {
		if t <= 0 {
			return 0.0
		}
		var price float64
		if digital {
			price = Digital(s, k, t, vol, r)
		} else {
			price = Call(s, k, t, vol, r)
		}
		v := price * math.Exp(dist.LogProb(t))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0.0
		}
		return v
	}
	return integrateUpper(f, 0.0)
}
