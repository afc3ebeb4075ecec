package interconnect

// Receiver is the base of every type with member-function slots. Embed it by
// value the same way as Emitter. Free-function and closure slots do not need
// a Receiver; its purpose is lifetime tracking, so that destroying the
// receiver severs every connection pointing at it.
//
// Unlike Emitter, destroying a receiver from inside one of its own slots is
// supported: the dispatch in progress finishes the current invocation and
// recovers through the connection-change restart.
type Receiver struct {
	connections []*connectionData
}

// Receiving is satisfied exactly by pointer types embedding Receiver.
type Receiving interface {
	receiverState() *Receiver
}

func (r *Receiver) receiverState() *Receiver { return r }

// HasSlotConnections reports whether any signal is connected to a slot of
// this receiver.
func (r *Receiver) HasSlotConnections() bool {
	return len(r.connections) > 0
}

// SlotConnectionCount returns the number of connections targeting this
// receiver.
func (r *Receiver) SlotConnectionCount() int {
	return len(r.connections)
}

// DisconnectAllSlots unlinks every connection targeting this receiver from
// its emitter. Handles stay reconnectable.
func (r *Receiver) DisconnectAllSlots() {
	conns := r.connections
	r.connections = nil
	for _, data := range conns {
		removeFromEmitter(data)
		data.connected = false
	}
}

// Destroy severs every connection targeting this receiver and flips the
// corresponding handles to the definitively-dead state. Call it when the
// receiver object is done for; calling it from inside one of this receiver's
// own slots is allowed. Idempotent.
func (r *Receiver) Destroy() {
	conns := r.connections
	r.connections = nil
	for _, data := range conns {
		removeFromEmitter(data)
		data.connected = false
		data.dead = true
	}
}
