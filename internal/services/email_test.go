package services

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredSMTP() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
}

func TestEmailService_IsConfigured_True(t *testing.T) {
	svc := NewEmailService(configuredSMTP())

	assert.True(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*config.SMTPConfig)
	}{
		{"host", func(c *config.SMTPConfig) { c.Host = "" }},
		{"username", func(c *config.SMTPConfig) { c.Username = "" }},
		{"password", func(c *config.SMTPConfig) { c.Password = "" }},
		{"from", func(c *config.SMTPConfig) { c.From = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configuredSMTP()
			tt.clear(&cfg)

			assert.False(t, NewEmailService(cfg).IsConfigured())
		})
	}
}

func TestEmailService_Send_NotConfigured(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{})
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}

	assert.NoError(t, svc.Send("to@example.com", "Subject", "Body"))
}

func TestEmailService_SendConnectionRequest(t *testing.T) {
	svc := NewEmailService(configuredSMTP())
	var gotAddr string
	var gotTo []string
	var gotMsg string
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := svc.SendConnectionRequest("buyer@example.com", "Ana <Acme>", "Let's talk")

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"buyer@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Ana <Acme> wants to connect on HyperConnect")
	assert.Contains(t, gotMsg, "Ana &lt;Acme&gt;")
	assert.Contains(t, gotMsg, "Let&#39;s talk")
}

func TestEmailService_SendConnectionRequest_SenderNameCannotAddHeaders(t *testing.T) {
	svc := NewEmailService(configuredSMTP())
	var gotMsg string
	svc.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = string(msg)
		return nil
	}

	err := svc.SendConnectionRequest("buyer@example.com", "Mallory\r\nBcc: victim@example.com", "hi")

	require.NoError(t, err)
	headers, _, found := strings.Cut(gotMsg, "\r\n\r\n")
	require.True(t, found)
	lines := strings.Split(headers, "\r\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
	}
	assert.Contains(t, headers, "Subject: Mallory Bcc: victim@example.com wants to connect on HyperConnect")
}

func TestEmailService_SendConnectionRequest_PropagatesError(t *testing.T) {
	svc := NewEmailService(configuredSMTP())
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := svc.SendConnectionRequest("buyer@example.com", "Ana", "hi")

	assert.EqualError(t, err, "connection refused")
}
