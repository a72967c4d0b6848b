package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// NotificationRenderer turns a board notification into an email.
type NotificationRenderer interface {
	RenderNotification(data NotificationEmailData) (*RenderedEmail, error)
}

// RenderedEmail is a ready-to-send subject with HTML and plain-text bodies.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// NotificationEmailData holds data for the notification email.
type NotificationEmailData struct {
	Email       string
	Status      NotificationStatus
	Title       string
	Description string
}

// IsError reports whether the notification describes a failure.
func (d NotificationEmailData) IsError() bool {
	return d.Status == NotificationError
}
