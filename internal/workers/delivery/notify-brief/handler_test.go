// internal/workers/delivery/notify-brief/handler_test.go
package notifybrief

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *gomail.Message, from string, to []string) (string, error) {
	args := m.Called(ctx, msg, from, to)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topicARN, subject, message string) (string, error) {
	args := m.Called(ctx, topicARN, subject, message)
	return args.String(0), args.Error(1)
}

type fakeRawSender struct {
	from string
	to   []string
	raw  []byte
}

func (f *fakeRawSender) SendRaw(_ context.Context, from string, to []string, raw []byte) (string, error) {
	f.from, f.to, f.raw = from, to, raw
	return "ses-123", nil
}

func createTestConfig() *Config {
	return &Config{
		Enabled:    true,
		Channel:    ChannelSMTP,
		Timeout:    5 * time.Second,
		SMTPHost:   "smtp.example.com",
		SMTPPort:   587,
		From:       "briefs@example.com",
		Recipients: []string{"marketing@example.com"},
	}
}

func createValidInput() *Input {
	return &Input{
		BriefID: "b-1",
		Company: "Acme",
		Sections: []models.Section{
			{ID: 1, Icon: "🎯", Title: "Business Objective", Content: "<strong>Grow</strong>", Type: models.SectionTypeText},
		},
	}
}

func TestExecute_SendsEmailAndPublishesEvent(t *testing.T) {
	config := createTestConfig()
	config.SNSTopicARN = "arn:aws:sns:eu-west-1:123:briefs"

	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything, "briefs@example.com", []string{"marketing@example.com"}).
		Return("<id@creative-brief>", nil)

	publisher := new(MockPublisher)
	var published string
	publisher.On("Publish", mock.Anything, config.SNSTopicARN, "Creative brief ready: Acme", mock.Anything).
		Run(func(args mock.Arguments) { published = args.String(3) }).
		Return("sns-1", nil)

	h := NewHandler(config, sender, publisher, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), createValidInput())

	require.NoError(t, err)
	assert.Equal(t, ChannelSMTP, out.Channel)
	assert.Equal(t, "<id@creative-brief>", out.MessageID)
	assert.Equal(t, "sns-1", out.EventMessageID)
	sender.AssertExpectations(t)
	publisher.AssertExpectations(t)

	var event briefReadyEvent
	require.NoError(t, json.Unmarshal([]byte(published), &event))
	assert.Equal(t, eventBriefReady, event.Event)
	assert.Equal(t, "b-1", event.BriefID)
	assert.Equal(t, 1, event.Sections)
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name        string
		input       *Input
		sendErr     error
		publishErr  error
		wantChannel string
		wantErr     error
	}{
		{"no recipients", &Input{BriefID: "b", Recipients: nil}, nil, nil, ChannelSMTP, ErrNoRecipients},
		{"smtp failure", createValidInput(), stderrors.New("421 busy"), nil, ChannelSMTP, ErrEmailSendFailed},
		{"sns failure", createValidInput(), nil, stderrors.New("throttled"), "sns", ErrPublishFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			config.SNSTopicARN = "arn:topic"
			if tt.wantErr == ErrNoRecipients {
				config.Recipients = nil
			}

			sender := new(MockSender)
			sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("id", tt.sendErr)
			publisher := new(MockPublisher)
			publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", tt.publishErr)

			h := NewHandler(config, sender, publisher, logger.NewNoOpLogger())
			out, err := h.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			se := apperrors.AsStandardError(err)
			assert.Equal(t, apperrors.ErrCodeNotificationSendFailed, se.Code)
			assert.True(t, se.Retryable)
			assert.Equal(t, tt.wantChannel, se.Metadata["channel"])
		})
	}
}

func TestExecute_Disabled(t *testing.T) {
	config := createTestConfig()
	config.Enabled = false
	sender := new(MockSender)

	out, err := NewHandler(config, sender, nil, logger.NewNoOpLogger()).Execute(context.Background(), createValidInput())

	require.NoError(t, err)
	assert.Empty(t, out.MessageID)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSESSender_SendsRawMIMEWithAttachment(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "creative_brief_Acme.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.3 test"), 0o644))

	input := createValidInput()
	input.PDFPath = pdf
	raw := &fakeRawSender{}
	s := &sesSender{client: raw}

	msg := buildMessage("briefs@example.com", []string{"a@example.com"}, "<m@creative-brief>", input)
	id, err := s.Send(context.Background(), msg, "briefs@example.com", []string{"a@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "ses-123", id)
	assert.Equal(t, []string{"a@example.com"}, raw.to)
	assert.True(t, bytes.Contains(raw.raw, []byte("Subject: Creative brief ready: Acme")))
	assert.True(t, bytes.Contains(raw.raw, []byte("creative_brief_Acme.pdf")))
	assert.True(t, bytes.Contains(raw.raw, []byte("text/html")))
}

func TestMessageBodies(t *testing.T) {
	input := createValidInput()
	input.Company = "A&B"

	plain := plainBody(input)
	assert.Contains(t, plain, "The creative brief for A&B is ready.")
	assert.Contains(t, plain, "1. Business Objective")
	assert.NotContains(t, plain, "attached")

	h := htmlBody(input)
	assert.Contains(t, h, "<h1>A&amp;B Creative Brief</h1>")
	assert.Contains(t, h, "<p><strong>Grow</strong></p>")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid smtp", func(c *Config) {}, false},
		{"disabled skips checks", func(c *Config) { c.Enabled = false; c.SMTPHost = "" }, false},
		{"missing host", func(c *Config) { c.SMTPHost = "" }, true},
		{"bad port", func(c *Config) { c.SMTPPort = 70000 }, true},
		{"ses without region", func(c *Config) { c.Channel = ChannelSES }, true},
		{"ses with region", func(c *Config) { c.Channel = ChannelSES; c.AWSRegion = "eu-west-1" }, false},
		{"unknown channel", func(c *Config) { c.Channel = "fax" }, true},
		{"no from", func(c *Config) { c.From = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
