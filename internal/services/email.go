package services

import (
	"fmt"
	"html"
	"mime"
	"net/smtp"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/config"
)

type EmailService struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg, send: smtp.SendMail}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerValue flattens v onto one line so it cannot start a new header.
func headerValue(v string) string {
	return headerBreaks.Replace(v)
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		headerValue(s.cfg.From), headerValue(to), mime.QEncoding.Encode("utf-8", headerValue(subject)), body)

	return s.send(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendConnectionRequest(to, senderName, message string) error {
	subject := fmt.Sprintf("%s wants to connect on HyperConnect", senderName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New connection request</h2>
			<p>Hi,</p>
			<p><strong>%s</strong> sent you a connection request:</p>
			<blockquote>%s</blockquote>
			<p>Open your HyperConnect inbox to accept or decline.</p>
		</body>
		</html>
	`, html.EscapeString(senderName), html.EscapeString(message))

	return s.Send(to, subject, body)
}
