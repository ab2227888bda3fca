package bs

// Batch variants map the element-wise pricers over parallel slices. Inputs
// must be equal length; the boundary layer validates that, the engine does
// not. Results preserve element order.

func (e *Engine) CallMany(s, k, t, vol, r []float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = Call(s[i], k[i], t[i], vol[i], r[i])
	}
	return out
}

func (e *Engine) DigitalMany(s, k, t, vol, r []float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = Digital(s[i], k[i], t[i], vol[i], r[i])
	}
	return out
}

func (e *Engine) RandomExpirationCallMany(s, k, vol, r, h, volH []float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = e.RandomExpirationCall(s[i], k[i], vol[i], r[i], h[i], volH[i])
	}
	return out
}

func (e *Engine) RandomExpirationDigitalMany(s, k, vol, r, h, volH []float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = e.RandomExpirationDigital(s[i], k[i], vol[i], r[i], h[i], volH[i])
	}
	return out
}
