package interconnect_test

import (
	"testing"

	. "github.com/comalice/interconnect"
)

// A receiver that destroys itself from inside its own slot.
type selfDestructor struct {
	Receiver
	calls int
}

func (s *selfDestructor) Consume(int) {
	s.calls++
	s.Destroy()
}

// Destroying the receiver inside its own slot: the dispatch completes and
// the emitter ends up with no connections for the signal.
func TestReceiverDestroyInOwnSlot(t *testing.T) {
	postman := &Postman{}
	s := &selfDestructor{}
	ConnectMember1(postman, (*Postman).PaymentRequested, s, (*selfDestructor).Consume)

	postman.PaymentRequested(1)

	if s.calls != 1 {
		t.Errorf("slot ran %d times, want 1", s.calls)
	}
	if got := postman.SignalConnectionCountTo((*Postman).PaymentRequested); got != 0 {
		t.Errorf("emitter count = %d after in-slot destroy, want 0", got)
	}

	// The emitter is unaffected otherwise.
	postman.PaymentRequested(1)
	if s.calls != 1 {
		t.Errorf("destroyed receiver's slot ran again, calls = %d", s.calls)
	}
}

// A slot destroying another receiver mid-dispatch: the victim's pending
// delivery is dropped, the dispatch itself finishes cleanly.
func TestReceiverDestroyedMidDispatch(t *testing.T) {
	postman := &Postman{}
	victim := &Mailbox{}
	Connect1(postman, (*Postman).PaymentRequested, func(int) { victim.Destroy() })
	ConnectMember1(postman, (*Postman).PaymentRequested, victim, (*Mailbox).Pay)

	postman.PaymentRequested(50)

	if victim.money != 0 {
		t.Errorf("victim received delivery after destroy, money = %d", victim.money)
	}
	if got := postman.SignalConnectionCount(); got != 1 {
		t.Errorf("emitter count = %d, want 1", got)
	}
}

// Destroying the receiver reduces the emitter's count by exactly the
// connections that receiver held.
func TestReceiverDestroyTeardown(t *testing.T) {
	postman := &Postman{}
	doomed := &Mailbox{}
	surviving := &Mailbox{}
	ConnectMember2(postman, (*Postman).NewMessage, doomed, (*Mailbox).AddMessage)
	ConnectMember1(postman, (*Postman).PaymentRequested, doomed, (*Mailbox).Pay)
	ConnectMember1(postman, (*Postman).PaymentRequested, surviving, (*Mailbox).Pay)

	doomed.Destroy()

	if got := postman.SignalConnectionCount(); got != 1 {
		t.Errorf("emitter count = %d after receiver destroy, want 1", got)
	}
	postman.PaymentRequested(10)
	if surviving.money != -10 {
		t.Errorf("surviving receiver money = %d, want -10", surviving.money)
	}
	if doomed.money != 0 {
		t.Errorf("doomed receiver money = %d, want 0", doomed.money)
	}
}

// DisconnectAllSlots detaches the receiver from every emitter but leaves
// the receiver usable for new connections.
func TestDisconnectAllSlots(t *testing.T) {
	p1 := &Postman{}
	p2 := &Postman{}
	mailbox := &Mailbox{}
	ConnectMember1(p1, (*Postman).PaymentRequested, mailbox, (*Mailbox).Pay)
	ConnectMember1(p2, (*Postman).PaymentRequested, mailbox, (*Mailbox).Pay)

	mailbox.DisconnectAllSlots()

	if mailbox.SlotConnectionCount() != 0 {
		t.Errorf("slot count = %d, want 0", mailbox.SlotConnectionCount())
	}
	if p1.SignalConnectionCount() != 0 || p2.SignalConnectionCount() != 0 {
		t.Errorf("emitter counts = %d, %d, want 0, 0",
			p1.SignalConnectionCount(), p2.SignalConnectionCount())
	}

	ConnectMember1(p1, (*Postman).PaymentRequested, mailbox, (*Mailbox).Pay)
	p1.PaymentRequested(5)
	if mailbox.money != -5 {
		t.Errorf("money = %d after re-connect, want -5", mailbox.money)
	}
}
