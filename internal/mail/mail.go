// Package mail is the outbound email port. SMTP delivery is handled
// outside this service.
package mail

import "pokehub/backend/pkg/logger"

// Sender delivers a single email.
type Sender interface {
	Send(to, subject, body string) error
}

// LogSender writes outgoing mail to the structured log. Default wiring
// when no mail transport is configured.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	logger.Info("outgoing mail", "to", to, "subject", subject)
	return nil
}
