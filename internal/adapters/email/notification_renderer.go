package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"eventsboard/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = template.Must(template.ParseFS(templateFS, "templates/*.txt"))
)

type notificationRenderer struct{}

// NewNotificationRenderer returns a renderer backed by the embedded notification templates.
func NewNotificationRenderer() domain.NotificationRenderer {
	return notificationRenderer{}
}

func (notificationRenderer) RenderNotification(data domain.NotificationEmailData) (*domain.RenderedEmail, error) {
	var subject, html, text bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&subject, "notification_subject.txt", data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := htmlTemplates.ExecuteTemplate(&html, "notification.html", data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	if err := textTemplates.ExecuteTemplate(&text, "notification.txt", data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &domain.RenderedEmail{
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
