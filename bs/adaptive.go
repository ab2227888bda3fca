package bs

import "math"

const (
	quadTol      = 1e-9
	segmentLimit = 8192
)

// 15-point Kronrod extension of the 7-point Gauss rule on [-1, 1].
var (
	xgk = [8]float64{
		0.991455371120813, 0.949107912342759, 0.864864423359769,
		0.741531185599394, 0.586087235467691, 0.405845151377397,
		0.207784955007898, 0.0,
	}
	wgk = [8]float64{
		0.022935322010529, 0.063092092629979, 0.104790010322250,
		0.140653259715525, 0.169004726639267, 0.190350578064785,
		0.204432940075298, 0.209482141084728,
	}
	wg = [4]float64{
		0.129484966168870, 0.279705391489277,
		0.381830050505119, 0.417959183673469,
	}
)

type segment struct {
	a, b     float64
	value    float64
	errorEst float64
}

// gk15 evaluates the Gauss-Kronrod 7-15 pair on [a, b]. The difference
// between the two rules is the error estimate.
func gk15(f func(float64) float64, a, b float64) segment {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)

	fc := f(c)
	kronrod := wgk[7] * fc
	gauss := wg[3] * fc
	for i := 0; i < 7; i++ {
		dx := h * xgk[i]
		fsum := f(c-dx) + f(c+dx)
		kronrod += wgk[i] * fsum
		if i%2 == 1 {
			gauss += wg[i/2] * fsum
		}
	}
	kronrod *= h
	gauss *= h
	return segment{a: a, b: b, value: kronrod, errorEst: math.Abs(kronrod - gauss)}
}

// integrateUpper approximates ∫a..∞ f(t) dt by mapping t = a + (1-u)/u onto
// u ∈ (0, 1] and subdividing the worst segment until the summed error
// estimate meets the tolerance or the segment cap is reached. Non-finite
// evaluations count as zero, so integrands that underflow far in the tail
// cannot poison the result.
func integrateUpper(f func(float64) float64, a float64) float64 {
	g := func(u float64) float64 {
		t := a + (1.0-u)/u
		v := f(t) / (u * u)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0.0
		}
		return v
	}

	segs := make([]segment, 1, 64)
	segs[0] = gk15(g, 0.0, 1.0)

	for len(segs) < segmentLimit {
		value, errSum := 0.0, 0.0
		worst := 0
		for i, s := range segs {
			value += s.value
			errSum += s.errorEst
			if s.errorEst > segs[worst].errorEst {
				worst = i
			}
		}
		if errSum <= math.Max(quadTol, quadTol*math.Abs(value)) {
			break
		}
		s := segs[worst]
		mid := 0.5 * (s.a + s.b)
		segs[worst] = gk15(g, s.a, mid)
		segs = append(segs, gk15(g, mid, s.b))
	}

	total := 0.0
	for _, s := range segs {
		total += s.value
	}
	return total
}
