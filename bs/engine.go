package bs

// Engine evaluates option prices and owns the quadrature table cache used by
// the random-expiration integrals. An Engine is not safe for concurrent use:
// give every worker its own, or hold one from a pool for the duration of a
// request.
type Engine struct {
	order int
	table *laguerreTable
}

// New returns an engine with an empty cache at the default quadrature order.
func New() *Engine {
	return &Engine{order: DefaultOrder}
}
