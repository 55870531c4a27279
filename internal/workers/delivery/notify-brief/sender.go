// internal/workers/delivery/notify-brief/sender.go
package notifybrief

import (
	"bytes"
	"context"
	"time"

	gomail "gopkg.in/mail.v2"
)

// Sender delivers a composed message and returns the provider message ID.
type Sender interface {
	Send(ctx context.Context, m *gomail.Message, from string, to []string) (string, error)
}

// Publisher is satisfied by aws.SNSClient.
type Publisher interface {
	Publish(ctx context.Context, topicARN, subject, message string) (string, error)
}

// RawSender is satisfied by aws.SESClient.
type RawSender interface {
	SendRaw(ctx context.Context, from string, to []string, raw []byte) (string, error)
}

type smtpSender struct {
	config *Config
}

func (s *smtpSender) Send(ctx context.Context, m *gomail.Message, _ string, _ []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.Timeout = s.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d.Timeout {
			d.Timeout = left
		}
	}
	if err := d.DialAndSend(m); err != nil {
		return "", err
	}
	if ids := m.GetHeader("Message-ID"); len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

type sesSender struct {
	client RawSender
}

func (s *sesSender) Send(ctx context.Context, m *gomail.Message, from string, to []string) (string, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", err
	}
	return s.client.SendRaw(ctx, from, to, buf.Bytes())
}
