package libemit

// Context is the per-emission record passed to every callback. It exposes
// the emitting Emitter, the results accumulated by the listeners that ran
// before the current one, and the argument sequence of the emission. A
// Context only lives for the duration of its Emit call.
type Context struct {
	emitter *Emitter
	results Results
	args    []any
}

// Emitter returns the emitter performing the emission, enabling reentrant
// registration or emission from inside a listener.
func (c *Context) Emitter() *Emitter {
	return c.emitter
}

// Results returns the results collected so far during this emission.
func (c *Context) Results() Results {
	return c.results
}

// Args returns the argument sequence of this emission.
func (c *Context) Args() []any {
	return c.args
}
