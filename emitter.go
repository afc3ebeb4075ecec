package interconnect

// Emitter is the base of every signal-emitting type. Embed it by value:
//
//	type Postman struct {
//		interconnect.Emitter
//	}
//
// An Emitter must not be copied once any connection exists, because the
// connection nodes point back at it. It also has no background lifecycle:
// when an emitter object is done for, call Destroy to unlink everything and
// invalidate outstanding handles. Destroying an emitter from inside one of
// its own slots is not supported.
type Emitter struct {
	connections        map[SignalKey][]*connectionData
	connectionsChanged bool
	destroyed          bool
}

// Emitting is satisfied exactly by pointer types embedding Emitter. It pins
// the emitter argument of the generic ConnectN/EmitN functions to types that
// actually have signals.
type Emitting interface {
	emitterState() *Emitter
}

func (e *Emitter) emitterState() *Emitter { return e }

// HasSignalConnections reports whether anything at all is connected to this
// emitter.
func (e *Emitter) HasSignalConnections() bool {
	return len(e.connections) > 0
}

// HasSignalConnectionsTo reports whether anything is connected to the given
// signal method expression.
func (e *Emitter) HasSignalConnectionsTo(signal any) bool {
	return len(e.connections[KeyOf(signal)]) > 0
}

// SignalConnectionCount returns the total number of connections across all
// of this emitter's signals.
func (e *Emitter) SignalConnectionCount() int {
	n := 0
	for _, bucket := range e.connections {
		n += len(bucket)
	}
	return n
}

// SignalConnectionCountTo returns the number of connections to the given
// signal method expression.
func (e *Emitter) SignalConnectionCountTo(signal any) int {
	return len(e.connections[KeyOf(signal)])
}

// DisconnectSignal removes every connection to the given signal. Handles
// stay reconnectable.
func (e *Emitter) DisconnectSignal(signal any) {
	e.disconnectKey(KeyOf(signal))
}

// DisconnectAllSignals removes every connection from this emitter. Handles
// stay reconnectable.
func (e *Emitter) DisconnectAllSignals() {
	for key := range e.connections {
		e.disconnectKey(key)
	}
}

// Destroy unlinks every connection, removes each from its receiver, and
// flips outstanding handles to the definitively-dead state. Any further
// emit or connect on this emitter is a contract violation. Idempotent.
func (e *Emitter) Destroy() {
	for key, bucket := range e.connections {
		for _, data := range bucket {
			unlinkFromReceiver(data)
			data.connected = false
			data.dead = true
		}
		delete(e.connections, key)
	}
	e.connectionsChanged = true
	e.destroyed = true
}

// emitKey runs one dispatch: every slot registered under key at the start of
// the call is invoked exactly once, with invoke doing the typed call.
//
// The walk is over a snapshot of the key's bucket. Each invoked node is
// recorded in this call's visited set first, so that when a slot mutates the
// connection set (connect, disconnect, receiver teardown) the walk can
// restart from a fresh bucket without ever calling the same slot twice.
// The set lives on this activation's stack, not on the nodes: a nested emit
// of the same signal takes its own set and cannot disturb the outer call's
// once-per-call accounting, no matter how the two interleave with restarts.
func (e *Emitter) emitKey(key SignalKey, invoke func(*connectionData)) Signal {
	if e.destroyed {
		contractViolation("emit on a destroyed emitter")
	}
	e.connectionsChanged = false
	var visited map[*connectionData]struct{}

	bucket := e.connections[key]
	i := 0
	for i < len(bucket) {
		data := bucket[i]
		if _, done := visited[data]; !done && data.connected {
			if visited == nil {
				visited = make(map[*connectionData]struct{}, len(bucket))
			}
			visited[data] = struct{}{}
			invoke(data)
			if e.connectionsChanged {
				// The slot changed the connection set; the snapshot is
				// stale. Restart from the live bucket, the visited set
				// skips everything already handled.
				bucket = e.connections[key]
				i = 0
				e.connectionsChanged = false
				continue
			}
		}
		i++
	}
	return Signal{}
}

func (e *Emitter) disconnectKey(key SignalKey) {
	bucket := e.connections[key]
	if len(bucket) == 0 {
		return
	}
	for _, data := range bucket {
		unlinkFromReceiver(data)
		data.connected = false
	}
	delete(e.connections, key)
	e.connectionsChanged = true
}

// connectInternal links a node into its emitter's map and, for member slots,
// into its receiver's list. Used both for fresh connections and for
// Connection.Connect reestablishment.
func connectInternal(key SignalKey, data *connectionData) {
	e := data.emitter
	if e.destroyed {
		contractViolation("connect on a destroyed emitter")
	}
	if e.connections == nil {
		e.connections = make(map[SignalKey][]*connectionData)
	}
	e.connections[key] = append(e.connections[key], data)
	e.connectionsChanged = true
	if data.receiver != nil {
		data.receiver.connections = append(data.receiver.connections, data)
	}
	data.connected = true
}

func disconnectInternal(key SignalKey, data *connectionData) {
	if !removeFromEmitter(data) {
		contractViolation("disconnect of a connection missing from its emitter")
	}
	unlinkFromReceiver(data)
	data.connected = false
}

// removeFromEmitter takes a node out of its emitter's bucket. Reports whether
// the node was found.
func removeFromEmitter(data *connectionData) bool {
	e := data.emitter
	bucket := e.connections[data.key]
	for i, cd := range bucket {
		if cd != data {
			continue
		}
		// Full slice expression forces a copy so that snapshots held by a
		// dispatch in progress keep seeing the old bucket.
		replacement := append(bucket[:i:i], bucket[i+1:]...)
		if len(replacement) == 0 {
			delete(e.connections, data.key)
		} else {
			e.connections[data.key] = replacement
		}
		e.connectionsChanged = true
		return true
	}
	return false
}

func unlinkFromReceiver(data *connectionData) {
	r := data.receiver
	if r == nil {
		return
	}
	for i, cd := range r.connections {
		if cd != data {
			continue
		}
		r.connections = append(r.connections[:i:i], r.connections[i+1:]...)
		return
	}
}
