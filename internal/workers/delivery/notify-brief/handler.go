// internal/workers/delivery/notify-brief/handler.go
package notifybrief

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	commonaws "creative-brief/internal/common/aws"
	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
)

const (
	TaskType = "notify-brief-ready"

	eventBriefReady = "creative_brief.ready"
)

var (
	ErrNoRecipients    = errors.New("NO_RECIPIENTS")
	ErrEmailSendFailed = errors.New("EMAIL_SEND_FAILED")
	ErrPublishFailed   = errors.New("EVENT_PUBLISH_FAILED")
)

type Handler struct {
	config    *Config
	sender    Sender
	publisher Publisher
	logger    logger.Logger
}

// NewHandler wires explicit transports. publisher may be nil.
func NewHandler(config *Config, sender Sender, publisher Publisher, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		sender:    sender,
		publisher: publisher,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// New builds the transports named by config, creating AWS clients as needed.
func New(ctx context.Context, config *Config, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var sender Sender = &smtpSender{config: config}
	if config.Channel == ChannelSES {
		ses, err := commonaws.NewSESClient(ctx, config.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("ses client: %w", err)
		}
		sender = &sesSender{client: ses}
	}

	var publisher Publisher
	if config.SNSTopicARN != "" {
		sns, err := commonaws.NewSNSClient(ctx, config.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("sns client: %w", err)
		}
		publisher = sns
	}

	return NewHandler(config, sender, publisher, log), nil
}

// Execute emails the brief and publishes the ready event. Errors are
// NOTIFICATION_SEND_FAILED StandardErrors tagged with the failing channel.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	log := logger.WithTrace(ctx, h.logger).WithFields(map[string]interface{}{"briefId": input.BriefID})

	if !h.config.Enabled {
		log.Debug("brief delivery disabled", nil)
		return &Output{SentAt: time.Now().UTC()}, nil
	}

	recipients := input.Recipients
	if len(recipients) == 0 {
		recipients = h.config.Recipients
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewNotificationSendFailedError(h.config.Channel, ErrNoRecipients)
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	messageID := fmt.Sprintf("<%s@creative-brief>", uuid.NewString())
	msg := buildMessage(h.config.From, recipients, messageID, input)

	sentID, err := h.sender.Send(ctx, msg, h.config.From, recipients)
	if err != nil {
		log.Error("brief email failed", map[string]interface{}{"channel": h.config.Channel, "error": err.Error()})
		return nil, apperrors.NewNotificationSendFailedError(h.config.Channel, fmt.Errorf("%w: %v", ErrEmailSendFailed, err))
	}

	out := &Output{
		Channel:    h.config.Channel,
		MessageID:  sentID,
		Recipients: recipients,
		SentAt:     time.Now().UTC(),
	}

	if h.publisher != nil && h.config.SNSTopicARN != "" {
		eventID, err := h.publishReady(ctx, input, recipients, out.SentAt)
		if err != nil {
			log.Error("brief ready event failed", map[string]interface{}{"error": err.Error()})
			return nil, apperrors.NewNotificationSendFailedError("sns", fmt.Errorf("%w: %v", ErrPublishFailed, err))
		}
		out.EventMessageID = eventID
	}

	log.Info("brief delivered", map[string]interface{}{
		"channel":    out.Channel,
		"messageId":  out.MessageID,
		"recipients": len(recipients),
	})
	return out, nil
}

func (h *Handler) publishReady(ctx context.Context, input *Input, recipients []string, at time.Time) (string, error) {
	body, err := json.Marshal(briefReadyEvent{
		Event:      eventBriefReady,
		BriefID:    input.BriefID,
		Company:    input.Company,
		Sections:   len(input.Sections),
		PDFPath:    input.PDFPath,
		Recipients: recipients,
		Timestamp:  at.Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}
	return h.publisher.Publish(ctx, h.config.SNSTopicARN, subject(input.Company), string(body))
}
