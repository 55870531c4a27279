// internal/workers/delivery/notify-brief/models.go
package notifybrief

import (
	"time"

	"creative-brief/internal/models"
)

type Input struct {
	BriefID  string           `json:"briefId"`
	Company  string           `json:"company"`
	Sections []models.Section `json:"sections"`
	PDFPath  string           `json:"pdfPath,omitempty"`
	// Recipients overrides the configured list.
	Recipients []string `json:"recipients,omitempty"`
}

type Output struct {
	Channel        string    `json:"channel"`
	MessageID      string    `json:"messageId,omitempty"`
	EventMessageID string    `json:"eventMessageId,omitempty"`
	Recipients     []string  `json:"recipients"`
	SentAt         time.Time `json:"sentAt"`
}

// briefReadyEvent is published to SNS after the email goes out.
type briefReadyEvent struct {
	Event      string   `json:"event"`
	BriefID    string   `json:"brief_id"`
	Company    string   `json:"company"`
	Sections   int      `json:"total_sections"`
	PDFPath    string   `json:"pdf_path,omitempty"`
	Recipients []string `json:"recipients"`
	Timestamp  string   `json:"timestamp"`
}
