package mail

import "log"

// LogMailSender stands in for the external mail collaborator; actual
// delivery happens outside this system.
type LogMailSender struct{}

func (LogMailSender) SendVerificationEmail(email, code string) error {
	log.Printf("verification email for %s: code %s", email, code)
	return nil
}
