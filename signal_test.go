package interconnect_test

import (
	"testing"

	. "github.com/comalice/interconnect"
)

// A second emitter type with a signal of the same shape as Postman.NewMessage,
// to check that keys separate by method, not by signature.
type Telegraph struct {
	Emitter
}

func (t *Telegraph) NewTelegram(price int, message string) Signal {
	return Emit2(t, (*Telegraph).NewTelegram, price, message)
}

// Keys of the same signal method are equal across evaluations; keys of
// distinct signals differ, even with identical signatures.
func TestSignalKeyIdentity(t *testing.T) {
	k1 := KeyOf((*Postman).NewMessage)
	k2 := KeyOf((*Postman).NewMessage)
	k3 := KeyOf((*Postman).PaymentRequested)
	k4 := KeyOf((*Telegraph).NewTelegram)

	if k1 != k2 {
		t.Errorf("same signal produced different keys: %v vs %v", k1, k2)
	}
	if k1 == k3 {
		t.Errorf("distinct signals on one emitter share a key: %v", k1)
	}
	if k1 == k4 {
		t.Errorf("same-signature signals on distinct emitters share a key: %v", k1)
	}
}

// SignalKey is a pure value: comparable and usable as a map key.
func TestSignalKeyAsMapKey(t *testing.T) {
	m := map[SignalKey]int{
		KeyOf((*Postman).NewMessage):       1,
		KeyOf((*Postman).PaymentRequested): 2,
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", len(m))
	}
	if m[KeyOf((*Postman).NewMessage)] != 1 {
		t.Errorf("lookup by recomputed key failed")
	}
}

// KeyOf rejects values that are not signal method expressions.
func TestKeyOfRejectsNonSignals(t *testing.T) {
	expectPanic(t, "int", func() { KeyOf(42) })
	expectPanic(t, "nil func", func() { KeyOf((func() Signal)(nil)) })
	expectPanic(t, "wrong return", func() { KeyOf(func() {}) })
	expectPanic(t, "slot not signal", func() { KeyOf((*Mailbox).Pay) })
}
