// Package mail delivers the email-confirmation message for new accounts.
// Delivery is best-effort: an unconfigured or failing SMTP host never blocks
// registration.
package mail

import (
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/config"
)

type Sender interface {
	SendConfirmation(toEmail, username, confirmURL string) error
}

// SMTPSender sends over plain SMTP with STARTTLS, or implicit TLS when
// smtp.ssl is set (typically port 465).
type SMTPSender struct{}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) SendConfirmation(toEmail, username, confirmURL string) error {
	cfg := config.Get()
	if cfg.SMTP.Host == "" {
		return nil
	}

	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)

	subject := "Welcome to ImageHub - please confirm your email"
	body := fmt.Sprintf(`
		<h1>Hello %s</h1>
		<p>Please confirm your email address by following this link:</p>
		<p><a href="%s">%s</a></p>
		<p>The link is valid for 24 hours.</p>
	`, username, confirmURL, confirmURL)

	fromHeader, fromAddr, err := parseAddressForHeader(cfg.SMTP.From)
	if err != nil {
		return err
	}
	toHeader, toAddr, err := parseAddressForHeader(toEmail)
	if err != nil {
		return err
	}

	msg, err := buildMessage(fromHeader, toHeader, subject, body)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	if cfg.SMTP.SSL {
		return sendWithSSL(addr, cfg.SMTP.Host, auth, fromAddr, []string{toAddr}, msg)
	}
	return smtp.SendMail(addr, auth, fromAddr, []string{toAddr}, msg)
}

func sendWithSSL(addr, host string, auth smtp.Auth, from string, to []string, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: host}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		log.Printf("[mail] TLS dial failed: %v", err)
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err = client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func parseAddressForHeader(input string) (string, string, error) {
	if err := rejectCRLF(input, "address"); err != nil {
		return "", "", err
	}
	addr, err := mail.ParseAddress(input)
	if err != nil {
		return "", "", err
	}
	headerValue := addr.String()
	if err := rejectCRLF(headerValue, "address"); err != nil {
		return "", "", err
	}
	return headerValue, addr.Address, nil
}

func buildMessage(fromHeader, toHeader, subject, body string) ([]byte, error) {
	if err := rejectCRLF(subject, "subject"); err != nil {
		return nil, err
	}
	encodedSubject := mime.BEncoding.Encode("UTF-8", subject)
	dateStr := time.Now().Format(time.RFC1123Z)

	header := fmt.Sprintf("Date: %s\r\nFrom: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		dateStr, fromHeader, toHeader, encodedSubject)
	return []byte(header + body), nil
}

func rejectCRLF(value string, field string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("invalid %s header: CRLF not allowed", field)
	}
	return nil
}
