// Demo of the signal/slot runtime: a postman emitting message and payment
// signals, mailboxes receiving them.
package main

import (
	"fmt"

	"github.com/comalice/interconnect"
)

type Postman struct {
	interconnect.Emitter
}

func (p *Postman) NewMessage(price int, message string) interconnect.Signal {
	return interconnect.Emit2(p, (*Postman).NewMessage, price, message)
}

func (p *Postman) PaymentRequested(amount int) interconnect.Signal {
	return interconnect.Emit1(p, (*Postman).PaymentRequested, amount)
}

type Mailbox struct {
	interconnect.Receiver
	name     string
	money    int
	messages []string
}

func (m *Mailbox) AddMessage(price int, message string) {
	m.money += price
	m.messages = append(m.messages, message)
	fmt.Printf("%s received %q (price %d)\n", m.name, message, price)
}

func (m *Mailbox) Pay(amount int) {
	m.money -= amount
	fmt.Printf("%s paid %d\n", m.name, amount)
}

func main() {
	postman := &Postman{}
	home := &Mailbox{name: "home"}
	office := &Mailbox{name: "office"}

	messages := interconnect.ConnectMember2(postman, (*Postman).NewMessage, home, (*Mailbox).AddMessage)
	interconnect.ConnectMember2(postman, (*Postman).NewMessage, office, (*Mailbox).AddMessage)
	interconnect.ConnectMember1(postman, (*Postman).PaymentRequested, home, (*Mailbox).Pay)

	// A closure slot needs no Receiver.
	delivered := 0
	interconnect.Connect2(postman, (*Postman).NewMessage, func(int, string) { delivered++ })

	postman.NewMessage(60, "hello")
	postman.PaymentRequested(50)

	fmt.Printf("home: money=%d messages=%v\n", home.money, home.messages)
	fmt.Printf("office: money=%d messages=%v\n", office.money, office.messages)
	fmt.Printf("deliveries observed: %d\n", delivered)

	// Handles can break and reestablish a single binding.
	messages.Disconnect()
	postman.NewMessage(10, "while disconnected")
	messages.Connect()
	postman.NewMessage(5, "back again")

	// Destroying a receiver severs everything pointing at it.
	office.Destroy()
	postman.NewMessage(1, "final")

	fmt.Printf("home: money=%d messages=%v\n", home.money, home.messages)
	fmt.Printf("office: money=%d messages=%v\n", office.money, office.messages)
	fmt.Printf("connections left on postman: %d\n", postman.SignalConnectionCount())
}
