package mail

import (
	"context"
	"errors"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer defines the contract for sending notification emails.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Memory is a test-friendly mailer that records messages.
type Memory struct {
	Outbox []Message
	Err    error
}

// Send records the message in memory, or fails with the configured error.
func (m *Memory) Send(_ context.Context, msg Message) error {
	if m == nil {
		return errors.New("mail: nil memory mailer")
	}
	if m.Err != nil {
		return m.Err
	}
	m.Outbox = append(m.Outbox, msg)
	return nil
}

// Nop implements Mailer without performing any action.
type Nop struct{}

// Send implements Mailer.
func (Nop) Send(context.Context, Message) error { return nil }
