package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
)

// sendMail is a seam for smtp.SendMail.
var sendMail = smtp.SendMail

// SMTPSender delivers messages through an SMTP relay. Authentication is
// PLAIN and only used when a user is configured.
type SMTPSender struct {
	addr     string
	from     string
	user     string
	password string
}

func NewSMTPSender(addr, from, user, password string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from, user: user, password: password}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.From == "" {
		m.From = s.from
	}

	var auth smtp.Auth
	if s.user != "" {
		host, _, err := net.SplitHostPort(s.addr)
		if err != nil {
			return fmt.Errorf("smtp address %q: %w", s.addr, err)
		}
		auth = smtp.PlainAuth("", s.user, s.password, host)
	}

	if err := sendMail(s.addr, auth, m.From, []string{m.To}, m.Bytes()); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}
