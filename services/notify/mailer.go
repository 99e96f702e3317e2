// Package notify sends alert mail over SMTP.
package notify

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"oraconsoleapi/config"
)

// Notifier delivers an alert to the configured recipients.
type Notifier interface {
	Notify(subject, body string) error
}

// SMTPConfig is the outgoing mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// ConfigFromEnv reads the SMTP_* settings.
func ConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:     config.Cfg.SMTPHost,
		Port:     config.Cfg.SMTPPort,
		Username: config.Cfg.SMTPUser,
		Password: config.Cfg.SMTPPassword,
		From:     config.Cfg.SMTPFrom,
		To:       config.Cfg.AlertEmails,
	}
}

// Mailer sends alerts with gomail.
type Mailer struct {
	cfg  SMTPConfig
	send func(m *gomail.Message) error
}

// NewMailer returns nil when mail is not configured. A nil *Mailer is a
// valid Notifier that drops every message.
func NewMailer(cfg SMTPConfig) *Mailer {
	if cfg.Host == "" || len(cfg.To) == 0 {
		return nil
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{cfg: cfg, send: func(m *gomail.Message) error { return d.DialAndSend(m) }}
}

// Message builds the HTML alert mail.
func (m *Mailer) Message(subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", subject)
	lines := strings.Split(html.EscapeString(body), "\n")
	msg.SetBody("text/html", "<html><body><h3>"+html.EscapeString(subject)+"</h3><p>"+strings.Join(lines, "<br>")+"</p></body></html>")
	return msg
}

func (m *Mailer) Notify(subject, body string) error {
	if m == nil {
		return nil
	}
	if err := m.send(m.Message(subject, body)); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}
	return nil
}
