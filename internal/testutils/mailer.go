package testutils

import "sync"

// SentMail records one confirmation mail handed to the recorder.
type SentMail struct {
	To         string
	Username   string
	ConfirmURL string
}

// RecorderMailer implements mail.Sender and keeps every message in memory.
type RecorderMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *RecorderMailer) SendConfirmation(toEmail, username, confirmURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: toEmail, Username: username, ConfirmURL: confirmURL})
	return nil
}
