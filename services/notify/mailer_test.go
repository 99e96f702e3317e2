package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewMailer(SMTPConfig{To: []string{"dba@example.com"}}))
	assert.Nil(t, NewMailer(SMTPConfig{Host: "smtp.example.com"}))

	var m *Mailer
	assert.NoError(t, m.Notify("subject", "body"))
}

func TestMailer_NotifyBuildsMessage(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "smtp.example.com", Username: "console@example.com", To: []string{"dba@example.com", "ops@example.com"}})
	require.NotNil(t, m)
	assert.Equal(t, 587, m.cfg.Port)

	var sent *gomail.Message
	m.send = func(msg *gomail.Message) error {
		sent = msg
		return nil
	}
	require.NoError(t, m.Notify("Tablespace USERS at 93%", "USERS used 93.1%\nthreshold 90%"))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"console@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"dba@example.com", "ops@example.com"}, sent.GetHeader("To"))

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "USERS used 93.1%<br>threshold 90%")
}

func TestMailer_NotifyWrapsSendError(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "smtp.example.com", To: []string{"dba@example.com"}})
	m.send = func(*gomail.Message) error { return errors.New("connection refused") }
	err := m.Notify("s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
