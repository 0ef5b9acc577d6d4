package services

import (
	"context"
	"fmt"
	"log/slog"

	"hackhub/internal/domain"
	"hackhub/internal/metrics"
)

const applicationReceivedTemplate = "application_received"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendApplicationReceived tells the event contact that a participant applied.
func (s *emailService) SendApplicationReceived(ctx context.Context, data *domain.ApplicationReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("application received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(applicationReceivedTemplate, data)
	if err != nil {
		metrics.EmailsSent.WithLabelValues(applicationReceivedTemplate, "render_failed").Inc()
		return fmt.Errorf("failed to render %s template: %w", applicationReceivedTemplate, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		metrics.EmailsSent.WithLabelValues(applicationReceivedTemplate, "failed").Inc()
		return fmt.Errorf("failed to send application received email: %w", err)
	}
	metrics.EmailsSent.WithLabelValues(applicationReceivedTemplate, "sent").Inc()
	s.logger.InfoContext(ctx, "application email sent", "event_id", data.EventID, "application_id", data.ApplicationID)
	return nil
}
