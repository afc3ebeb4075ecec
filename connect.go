package interconnect

// ConnectN binds a func slot, ConnectMemberN a method slot on a Receiver, to
// a signal of matching arity:
//
//	interconnect.ConnectMember2(postman, (*Postman).NewMessage, mailbox, (*Mailbox).AddMessage)
//	interconnect.Connect1(postman, (*Postman).PaymentRequested, func(amount int) { ... })
//
// The slot's parameter list must match the signal's exactly; a mismatch is a
// compile error, as is passing an emitter that does not embed Emitter or a
// receiver that does not embed Receiver. Connecting the same signal/slot
// pair twice is allowed and yields two independent connections, so the slot
// then runs twice per emit.
//
// Member-slot connections are additionally severed when their receiver is
// destroyed. For closure slots whose captured state can outlive its
// usefulness, hold on to the returned Connection and disconnect it.

// Connect0 connects a no-argument signal to a func slot.
func Connect0[E Emitting](emitter E, signal func(E) Signal, slot func()) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), nil, slot)
}

// Connect1 connects a one-argument signal to a func slot.
func Connect1[E Emitting, A any](emitter E, signal func(E, A) Signal, slot func(A)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), nil, slot)
}

// Connect2 connects a two-argument signal to a func slot.
func Connect2[E Emitting, A, B any](emitter E, signal func(E, A, B) Signal, slot func(A, B)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), nil, slot)
}

// Connect3 connects a three-argument signal to a func slot.
func Connect3[E Emitting, A, B, C any](emitter E, signal func(E, A, B, C) Signal, slot func(A, B, C)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), nil, slot)
}

// Connect4 connects a four-argument signal to a func slot.
func Connect4[E Emitting, A, B, C, D any](emitter E, signal func(E, A, B, C, D) Signal, slot func(A, B, C, D)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), nil, slot)
}

// ConnectMember0 connects a no-argument signal to a receiver method slot.
func ConnectMember0[E Emitting, R Receiving](emitter E, signal func(E) Signal, receiver R, slot func(R)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), receiver.receiverState(),
		func() { slot(receiver) })
}

// ConnectMember1 connects a one-argument signal to a receiver method slot.
func ConnectMember1[E Emitting, R Receiving, A any](emitter E, signal func(E, A) Signal, receiver R, slot func(R, A)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), receiver.receiverState(),
		func(a A) { slot(receiver, a) })
}

// ConnectMember2 connects a two-argument signal to a receiver method slot.
func ConnectMember2[E Emitting, R Receiving, A, B any](emitter E, signal func(E, A, B) Signal, receiver R, slot func(R, A, B)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), receiver.receiverState(),
		func(a A, b B) { slot(receiver, a, b) })
}

// ConnectMember3 connects a three-argument signal to a receiver method slot.
func ConnectMember3[E Emitting, R Receiving, A, B, C any](emitter E, signal func(E, A, B, C) Signal, receiver R, slot func(R, A, B, C)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), receiver.receiverState(),
		func(a A, b B, c C) { slot(receiver, a, b, c) })
}

// ConnectMember4 connects a four-argument signal to a receiver method slot.
func ConnectMember4[E Emitting, R Receiving, A, B, C, D any](emitter E, signal func(E, A, B, C, D) Signal, receiver R, slot func(R, A, B, C, D)) *Connection {
	return newConnection(emitter.emitterState(), KeyOf(signal), receiver.receiverState(),
		func(a A, b B, c C, d D) { slot(receiver, a, b, c, d) })
}
