package bs

import (
	"math"

	"golang.org/x/sys/cpu"
)

// nodeSum accumulates Σ w[i]·price(x[i]/beta) across the quadrature nodes.
// The backend is picked once at process start: a lanes-of-4 block evaluator
// on AVX2-capable hardware, a plain scalar loop otherwise. Both must agree
// with the closed-form pricer within double rounding; the block path is a
// performance optimization only. By the time this runs the degenerate guards
// have already fired, so s, k, vol and every node are strictly positive.
var nodeSum func(s, k, vol, r, beta float64, x, w []float64, digital bool) float64

func init() {
	if cpu.X86.HasAVX2 {
		nodeSum = nodeSumBlock4
	} else {
		nodeSum = nodeSumScalar
	}
}

func nodeSumScalar(s, k, vol, r, beta float64, x, w []float64, digital bool) float64 {
	sum := 0.0
	for i := range x {
		t := x[i] / beta
		if digital {
			sum += w[i] * Digital(s, k, t, vol, r)
		} else {
			sum += w[i] * Call(s, k, t, vol, r)
		}
	}
	return sum
}

// nodeSumBlock4 walks the nodes four at a time with the analytic formula
// spelled out per lane, so the compiler is free to keep the arithmetic in
// wide registers. Remainder nodes fall back to the scalar pricer.
func nodeSumBlock4(s, k, vol, r, beta float64, x, w []float64, digital bool) float64 {
	logSK := math.Log(s / k)
	drift := r + 0.5*vol*vol

	var t, rt, vs, d1, d2, disc, px [4]float64
	sum := 0.0
	i := 0
	for ; i+3 < len(x); i += 4 {
		for j := 0; j < 4; j++ {
			t[j] = x[i+j] / beta
		}
		for j := 0; j < 4; j++ {
			rt[j] = math.Sqrt(t[j])
		}
		for j := 0; j < 4; j++ {
			vs[j] = vol * rt[j]
		}
		for j := 0; j < 4; j++ {
			d1[j] = (logSK + drift*t[j]) / vs[j]
		}
		for j := 0; j < 4; j++ {
			d2[j] = d1[j] - vs[j]
		}
		for j := 0; j < 4; j++ {
			disc[j] = math.Exp(-r * t[j])
		}
		if digital {
			for j := 0; j < 4; j++ {
				px[j] = disc[j] * normCDF(d2[j])
			}
		} else {
			for j := 0; j < 4; j++ {
				px[j] = s*normCDF(d1[j]) - k*disc[j]*normCDF(d2[j])
			}
		}
		for j := 0; j < 4; j++ {
			sum += w[i+j] * px[j]
		}
	}
	for ; i < len(x); i++ {
		tt := x[i] / beta
		if digital {
			sum += w[i] * Digital(s, k, tt, vol, r)
		} else {
			sum += w[i] * Call(s, k, tt, vol, r)
		}
	}
	return sum
}
