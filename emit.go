package interconnect

// Emit0 through Emit4 dispatch a signal to every slot currently connected to
// it. They are what a signal method body calls:
//
//	func (p *Postman) PaymentRequested(amount int) interconnect.Signal {
//		return interconnect.Emit1(p, (*Postman).PaymentRequested, amount)
//	}
//
// One function per arity because Go generics have no variadic type
// parameters; all five share the dispatch loop in Emitter. Arguments are
// passed to each slot by value. Dispatch is re-entrant: a slot may emit on
// the same or another signal, connect, disconnect, or destroy its own
// receiver. A panic raised by a slot propagates to the emit caller; the
// emitter stays consistent.

// Emit0 dispatches a no-argument signal.
func Emit0[E Emitting](emitter E, signal func(E) Signal) Signal {
	return emitter.emitterState().emitKey(KeyOf(signal), func(c *connectionData) {
		c.slot.(func())()
	})
}

// Emit1 dispatches a one-argument signal.
func Emit1[E Emitting, A any](emitter E, signal func(E, A) Signal, a A) Signal {
	return emitter.emitterState().emitKey(KeyOf(signal), func(c *connectionData) {
		c.slot.(func(A))(a)
	})
}

// Emit2 dispatches a two-argument signal.
func Emit2[E Emitting, A, B any](emitter E, signal func(E, A, B) Signal, a A, b B) Signal {
	return emitter.emitterState().emitKey(KeyOf(signal), func(c *connectionData) {
		c.slot.(func(A, B))(a, b)
	})
}

// Emit3 dispatches a three-argument signal.
func Emit3[E Emitting, A, B, C any](emitter E, signal func(E, A, B, C) Signal, a A, b B, c C) Signal {
	return emitter.emitterState().emitKey(KeyOf(signal), func(cd *connectionData) {
		cd.slot.(func(A, B, C))(a, b, c)
	})
}

// Emit4 dispatches a four-argument signal.
func Emit4[E Emitting, A, B, C, D any](emitter E, signal func(E, A, B, C, D) Signal, a A, b B, c C, d D) Signal {
	return emitter.emitterState().emitKey(KeyOf(signal), func(cd *connectionData) {
		cd.slot.(func(A, B, C, D))(a, b, c, d)
	})
}
