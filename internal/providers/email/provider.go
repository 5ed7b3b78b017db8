package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpProvider struct {
	cfg SMTPConfig
	log *zap.Logger
}

func NewSMTPProvider(cfg SMTPConfig, log *zap.Logger) Provider {
	return &smtpProvider{cfg: cfg, log: log.Named("email.smtp")}
}

func (p *smtpProvider) Send(_ context.Context, msg Message) error {
	addr := fmt.Sprintf("%s:%d", p.cfg.Host, p.cfg.Port)

	var auth smtp.Auth
	if p.cfg.Username != "" {
		auth = smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", p.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(addr, auth, p.cfg.From, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// noopProvider stands in when SMTP is not configured. Messages are logged
// and dropped.
type noopProvider struct {
	log *zap.Logger
}

func NewNoOpProvider(log *zap.Logger) Provider {
	return &noopProvider{log: log.Named("email.noop")}
}

func (p *noopProvider) Send(_ context.Context, msg Message) error {
	p.log.Info("email suppressed, smtp not configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
