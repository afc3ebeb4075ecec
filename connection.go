package interconnect

// connectionData is the heap node behind one signal→slot binding. It is
// referenced by up to three parties at once: the emitter's connection map,
// the receiver's incoming list (member slots only), and the public Connection
// handle. The node stays reachable for as long as any of them holds it; the
// connected/dead flags record which of the handle's lifecycle states it is in.
type connectionData struct {
	key      SignalKey
	emitter  *Emitter
	receiver *Receiver // nil unless this is a member-slot binding
	slot     any       // func with the signal's exact parameter list

	connected bool
	dead      bool // emitter or receiver destroyed; no reconnect possible
}

// Connection is the handle returned by every connect. It is a query object,
// not a scoped lifetime object: dropping the handle never disconnects the
// slot. Use Disconnect for that.
type Connection struct {
	key  SignalKey
	data *connectionData
}

// IsConnectionPossible reports whether the underlying binding still exists,
// i.e. neither its emitter nor its receiver has been destroyed. A possible
// but disconnected binding can be reestablished with Connect.
//
// The emitter check covers nodes that were disconnected before the emitter's
// Destroy: those are out of the emitter's map at teardown time and never get
// the dead flag, but the binding is gone for good all the same.
func (c *Connection) IsConnectionPossible() bool {
	return c.data != nil && !c.data.dead && !c.data.emitter.destroyed
}

// IsConnected reports whether the slot is currently registered in the
// emitter and will be invoked by the next matching emit.
func (c *Connection) IsConnected() bool {
	return c.data != nil && c.data.connected
}

// Connect reestablishes a previously disconnected binding under its original
// signal. Returns false if the binding is gone for good, true otherwise.
// Connecting an already connected Connection is a no-op.
func (c *Connection) Connect() bool {
	if c.data == nil || c.data.dead || c.data.emitter.destroyed {
		return false
	}
	if c.data.connected {
		return true
	}
	connectInternal(c.key, c.data)
	return true
}

// Disconnect unlinks the slot from its emitter (and receiver). The binding
// stays reconnectable. Disconnecting an already disconnected or dead
// Connection is a no-op.
func (c *Connection) Disconnect() {
	if c.data == nil || c.data.dead || !c.data.connected {
		return
	}
	disconnectInternal(c.key, c.data)
}

func newConnection(e *Emitter, key SignalKey, r *Receiver, slot any) *Connection {
	data := &connectionData{key: key, emitter: e, receiver: r, slot: slot}
	connectInternal(key, data)
	return &Connection{key: key, data: data}
}
