// internal/workers/delivery/notify-brief/message.go
package notifybrief

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	gomail "gopkg.in/mail.v2"
)

func subject(company string) string {
	return fmt.Sprintf("Creative brief ready: %s", company)
}

// buildMessage assembles the delivery email. Section content is already
// display HTML and is embedded as is.
func buildMessage(from string, to []string, messageID string, input *Input) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject(input.Company))
	m.SetHeader("Message-ID", messageID)

	m.SetBody("text/plain", plainBody(input))
	m.AddAlternative("text/html", htmlBody(input))

	if input.PDFPath != "" {
		m.Attach(input.PDFPath, gomail.Rename(filepath.Base(input.PDFPath)))
	}
	return m
}

func plainBody(input *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The creative brief for %s is ready.\n\n", input.Company)
	fmt.Fprintf(&b, "Brief ID: %s\n", input.BriefID)
	b.WriteString("Sections:\n")
	for _, s := range input.Sections {
		fmt.Fprintf(&b, "\t%d. %s\n", s.ID, s.Title)
	}
	if input.PDFPath != "" {
		b.WriteString("\nThe PDF is attached.\n")
	}
	return b.String()
}

func htmlBody(input *Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s Creative Brief</h1>", html.EscapeString(input.Company))
	fmt.Fprintf(&b, "<p>Brief ID: %s</p>", html.EscapeString(input.BriefID))
	for _, s := range input.Sections {
		fmt.Fprintf(&b, "<h2>%s %s</h2><p>%s</p>", s.Icon, html.EscapeString(s.Title), s.Content)
	}
	return b.String()
}
