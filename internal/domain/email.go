package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ApplicationReceivedEmailData holds data for the organizer notification sent when a
// participant applies to an event.
type ApplicationReceivedEmailData struct {
	Email         string
	EventName     string
	EventID       string
	ApplicationID string
	ApplicantID   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendApplicationReceived(ctx context.Context, data *ApplicationReceivedEmailData) error
}
