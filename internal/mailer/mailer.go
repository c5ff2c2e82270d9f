package mailer

import "github.com/tripnest/tripnest-api/pkg/config"

type Service interface {
	SendBookingReceived(toEmail, bookingID, bookingType string) error
}

// New picks the mail transport from config: dev mode logs, a MailerSend
// key wins over SMTP when both are set.
func New(cfg config.Email) Service {
	if cfg.DevMode {
		return NewDevMailer()
	}
	if cfg.MailerSendKey != "" {
		return NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.SMTPFrom)
	}
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUseTLS)
}
