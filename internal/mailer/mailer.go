// Package mailer composes and delivers plain-text notification emails.
//
// Two senders are provided: ConsoleSender, which only prints what would be
// sent, and SMTPSender, which hands the message to a mail relay.
package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Bytes renders m as an RFC 5322 message with CRLF line endings.
func (m Message) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(m.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// ConsoleSender writes a preview of every message to w instead of sending it.
type ConsoleSender struct {
	w io.Writer
}

func NewConsoleSender(w io.Writer) *ConsoleSender {
	return &ConsoleSender{w: w}
}

func (s *ConsoleSender) Send(_ context.Context, m Message) error {
	_, err := fmt.Fprintf(s.w, "[dry-run] to: %s\n  subject: %s\n  body: %s\n", m.To, m.Subject, m.Body)
	return err
}
