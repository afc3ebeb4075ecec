// Package interconnect implements a single-threaded signal/slot runtime and a
// generic finite state machine built on top of it.
//
// Signals are methods on emitter types (types embedding Emitter) that return
// Signal and whose body forwards the arguments to the matching EmitN function:
//
//	type Postman struct {
//		interconnect.Emitter
//	}
//
//	func (p *Postman) NewMessage(price int, message string) interconnect.Signal {
//		return interconnect.Emit2(p, (*Postman).NewMessage, price, message)
//	}
//
// Slots are plain funcs, closures, or methods on receiver types (types
// embedding Receiver). ConnectN and ConnectMemberN bind a slot to a signal
// and return a Connection handle that can query, break, and reestablish the
// binding. All dispatch is synchronous and runs on the calling goroutine;
// nothing in this package locks. One emitter must not be used from multiple
// goroutines concurrently.
package interconnect

import (
	"math/bits"
	"reflect"
)

// PtrSize is the size of a pointer on the current target, in bytes.
const PtrSize = bits.UintSize / 8

// SignalKey is the opaque identity of a signal. It is a pure value: two keys
// compare equal iff they denote the same signal.
//
// The first word holds the code pointer of the signal's method expression,
// the second an ordinal (zero for ordinary signals; state machines use it to
// distinguish their per-state signal instances). Unused bytes are zero, so
// byte-wise equality is total.
type SignalKey [2 * PtrSize]byte

// Signal is the return type of signal methods. It carries no data; it exists
// so that a signal method body can have no shape other than
// `return interconnect.EmitN(...)`. Do not construct it directly.
type Signal struct{}

var signalType = reflect.TypeOf(Signal{})

// KeyOf computes the SignalKey for a signal method expression, e.g.
// KeyOf((*Postman).NewMessage). Passing anything that is not a Signal-returning
// func is a contract violation.
func KeyOf(signal any) SignalKey {
	v := reflect.ValueOf(signal)
	if v.Kind() != reflect.Func || v.IsNil() {
		contractViolation("KeyOf: %T is not a signal method expression", signal)
	}
	if t := v.Type(); t.NumOut() != 1 || t.Out(0) != signalType {
		contractViolation("KeyOf: %T does not return interconnect.Signal", signal)
	}
	return keyIndexed(v.Pointer(), 0)
}

func keyIndexed(pc uintptr, ordinal uint) SignalKey {
	var k SignalKey
	putWord(k[:PtrSize], uint(pc))
	putWord(k[PtrSize:], ordinal)
	return k
}

// putWord stores w little-endian into b, one byte per slot.
func putWord(b []byte, w uint) {
	for i := range b {
		b[i] = byte(w)
		w >>= 8
	}
}
