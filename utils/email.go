package utils

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends HTML mail over SMTP. It is constructed once at startup and
// injected into anything that needs to notify users.
type Mailer struct {
	host string
	port int
	user string
	pass string
}

func NewMailer(host string, port int, user, pass string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// SendAsync fires the mail off in the background. Notification failures are
// logged, never propagated: mail must not fail a booking.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			log.Printf("mailer: failed to send %q to %s: %v", subject, to, err)
		}
	}()
}
