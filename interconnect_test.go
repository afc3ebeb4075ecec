package interconnect_test

import (
	"io"
	"log/slog"
	"testing"

	. "github.com/comalice/interconnect"
)

// Shared fixtures: a Postman emitter with two signals and a Mailbox receiver
// with matching slots.

type Postman struct {
	Emitter
}

func (p *Postman) NewMessage(price int, message string) Signal {
	return Emit2(p, (*Postman).NewMessage, price, message)
}

func (p *Postman) PaymentRequested(amount int) Signal {
	return Emit1(p, (*Postman).PaymentRequested, amount)
}

type Mailbox struct {
	Receiver
	money    int
	messages []string
}

func (m *Mailbox) AddMessage(price int, message string) {
	m.messages = append(m.messages, message)
}

func (m *Mailbox) Pay(amount int) {
	m.money -= amount
}

// expectPanic runs fn and fails the test unless it panics. Diagnostics are
// silenced for the duration so contract-violation tests don't spam the log.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	SetDiagnosticLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer SetDiagnosticLogger(nil)
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}
