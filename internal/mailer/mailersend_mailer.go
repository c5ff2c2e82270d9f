package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendBookingReceived(toEmail, bookingID, bookingType string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "We received your TripNest booking"
	html := fmt.Sprintf(`
		<h2>Your booking is in!</h2>
		<p>We received your %s booking and it is now pending confirmation.</p>
		<p>Booking reference: <strong>%s</strong></p>
		<p>You can review it any time from your TripNest dashboard.</p>
	`, bookingType, bookingID)

	text := fmt.Sprintf("We received your %s booking. Reference: %s. It is now pending confirmation.", bookingType, bookingID)

	return m.sendEmail(toEmail, "", subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
