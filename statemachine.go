package interconnect

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Transition is one (from, input) → to entry for StateMachine.AddTransitions.
type Transition[S, I constraints.Integer] struct {
	From  S
	Input I
	To    S
}

// StateMachine is a dense-table finite state machine that broadcasts its
// transitions through signals. S and I are the application's state and input
// enum types; their values must be consecutive integers starting at 0.
//
//	type State int
//	const (
//		Ready State = iota
//		Printing
//		Finished
//	)
//
//	printer := interconnect.NewStateMachine[State, Input](3, 2)
//	printer.AddTransitions(
//		interconnect.Transition[State, Input]{Ready, Operate, Printing},
//		...)
//	printer.OnEntered(Printing, func(prev State) { ... })
//	printer.Step(Operate)
//
// Every state has its own entered and exited signal and every state pair its
// own stepped signal, so wiring stays declarative: one connect per state of
// interest, no switch over states in user code. StateMachine embeds Emitter,
// so the usual connection bookkeeping (counts, DisconnectAllSignals,
// Destroy, Connection handles) applies unchanged.
type StateMachine[S, I constraints.Integer] struct {
	Emitter
	transitions []S // states × inputs, identity-initialised
	states      int
	inputs      int
	current     S
}

// NewStateMachine creates a machine with the given number of states and
// inputs. Every transition starts out as a no-op (each input leaves each
// state unchanged) and the current state is S(0).
func NewStateMachine[S, I constraints.Integer](states, inputs int) *StateMachine[S, I] {
	if states <= 0 || inputs <= 0 {
		contractViolation("state machine needs at least one state and one input, got %d×%d", states, inputs)
	}
	m := &StateMachine[S, I]{
		transitions: make([]S, states*inputs),
		states:      states,
		inputs:      inputs,
	}
	for s := 0; s < states; s++ {
		for i := 0; i < inputs; i++ {
			m.transitions[s*inputs+i] = S(s)
		}
	}
	return m
}

// Current returns the current state. The initial state is S(0).
func (m *StateMachine[S, I]) Current() S { return m.current }

// AddTransitions writes the given triples into the transition table,
// overwriting previous entries for the same (from, input) pair. Out-of-range
// states or inputs are contract violations.
func (m *StateMachine[S, I]) AddTransitions(transitions ...Transition[S, I]) {
	for _, t := range transitions {
		if int(t.From) < 0 || int(t.From) >= m.states ||
			int(t.Input) < 0 || int(t.Input) >= m.inputs ||
			int(t.To) < 0 || int(t.To) >= m.states {
			contractViolation("out-of-bounds transition, from: %d input: %d to: %d",
				int(t.From), int(t.Input), int(t.To))
		}
		m.transitions[int(t.From)*m.inputs+int(t.Input)] = t.To
	}
}

// Step feeds one input to the machine and returns the machine for chaining.
// If the table maps (current, input) to a different state, it emits, in this
// order: the exited signal of the old state, the stepped signal of the
// (old, new) edge, and the entered signal of the new state; only then is the
// new state committed, so slots observing Current during dispatch still see
// the state being left. A transition to the same state emits nothing.
func (m *StateMachine[S, I]) Step(input I) *StateMachine[S, I] {
	m.checkInput(input)
	next := m.transitions[int(m.current)*m.inputs+int(input)]
	if next != m.current {
		m.emitExited(m.current, next)
		m.emitStepped(m.current, next)
		m.emitEntered(next, m.current)
		m.current = next
	}
	return m
}

// OnEntered connects a slot to the entered signal of one state. The slot
// runs whenever the machine transitions into that state, with the state
// being left as argument.
func (m *StateMachine[S, I]) OnEntered(state S, slot func(previous S)) *Connection {
	m.checkState(state)
	return newConnection(&m.Emitter, m.enteredKey(state), nil, slot)
}

// OnExited connects a slot to the exited signal of one state. The slot runs
// whenever the machine transitions out of that state, with the state being
// entered as argument.
func (m *StateMachine[S, I]) OnExited(state S, slot func(next S)) *Connection {
	m.checkState(state)
	return newConnection(&m.Emitter, m.exitedKey(state), nil, slot)
}

// OnStepped connects a slot to the stepped signal of one specific
// (from, to) edge.
func (m *StateMachine[S, I]) OnStepped(from, to S, slot func()) *Connection {
	m.checkState(from)
	m.checkState(to)
	return newConnection(&m.Emitter, m.steppedKey(from, to), nil, slot)
}

// DisconnectEntered removes every connection to one state's entered signal.
func (m *StateMachine[S, I]) DisconnectEntered(state S) {
	m.checkState(state)
	m.disconnectKey(m.enteredKey(state))
}

// DisconnectExited removes every connection to one state's exited signal.
func (m *StateMachine[S, I]) DisconnectExited(state S) {
	m.checkState(state)
	m.disconnectKey(m.exitedKey(state))
}

// DisconnectStepped removes every connection to one edge's stepped signal.
func (m *StateMachine[S, I]) DisconnectStepped(from, to S) {
	m.checkState(from)
	m.checkState(to)
	m.disconnectKey(m.steppedKey(from, to))
}

// ConnectEntered connects one state's entered signal to a receiver method
// slot, so the binding is severed when the receiver is destroyed.
func ConnectEntered[S, I constraints.Integer, R Receiving](m *StateMachine[S, I], state S, receiver R, slot func(R, S)) *Connection {
	m.checkState(state)
	return newConnection(&m.Emitter, m.enteredKey(state), receiver.receiverState(),
		func(previous S) { slot(receiver, previous) })
}

// ConnectExited connects one state's exited signal to a receiver method slot.
func ConnectExited[S, I constraints.Integer, R Receiving](m *StateMachine[S, I], state S, receiver R, slot func(R, S)) *Connection {
	m.checkState(state)
	return newConnection(&m.Emitter, m.exitedKey(state), receiver.receiverState(),
		func(next S) { slot(receiver, next) })
}

// ConnectStepped connects one edge's stepped signal to a receiver method
// slot.
func ConnectStepped[S, I constraints.Integer, R Receiving](m *StateMachine[S, I], from, to S, receiver R, slot func(R)) *Connection {
	m.checkState(from)
	m.checkState(to)
	return newConnection(&m.Emitter, m.steppedKey(from, to), receiver.receiverState(),
		func() { slot(receiver) })
}

func (m *StateMachine[S, I]) emitEntered(state, previous S) Signal {
	return m.emitKey(m.enteredKey(state), func(c *connectionData) {
		c.slot.(func(S))(previous)
	})
}

func (m *StateMachine[S, I]) emitExited(state, next S) Signal {
	return m.emitKey(m.exitedKey(state), func(c *connectionData) {
		c.slot.(func(S))(next)
	})
}

func (m *StateMachine[S, I]) emitStepped(from, to S) Signal {
	return m.emitKey(m.steppedKey(from, to), func(c *connectionData) {
		c.slot.(func())()
	})
}

// The per-state signal families are runtime-keyed: one marker function per
// family supplies the key's code-pointer word and the state (or edge)
// ordinal goes into the second word. That gives entered<Ready> and
// entered<Printing> distinct, independently connectable SignalKeys without
// one method per state.

func enteredSignalFamily() {}
func exitedSignalFamily()  {}
func steppedSignalFamily() {}

var (
	enteredFamilyPC = reflect.ValueOf(enteredSignalFamily).Pointer()
	exitedFamilyPC  = reflect.ValueOf(exitedSignalFamily).Pointer()
	steppedFamilyPC = reflect.ValueOf(steppedSignalFamily).Pointer()
)

func (m *StateMachine[S, I]) enteredKey(state S) SignalKey {
	return keyIndexed(enteredFamilyPC, uint(int(state)))
}

func (m *StateMachine[S, I]) exitedKey(state S) SignalKey {
	return keyIndexed(exitedFamilyPC, uint(int(state)))
}

func (m *StateMachine[S, I]) steppedKey(from, to S) SignalKey {
	return keyIndexed(steppedFamilyPC, uint(int(from)*m.states+int(to)))
}

func (m *StateMachine[S, I]) checkState(state S) {
	if int(state) < 0 || int(state) >= m.states {
		contractViolation("out-of-bounds state %d, machine has %d states", int(state), m.states)
	}
}

func (m *StateMachine[S, I]) checkInput(input I) {
	if int(input) < 0 || int(input) >= m.inputs {
		contractViolation("out-of-bounds input %d, machine has %d inputs", int(input), m.inputs)
	}
}
