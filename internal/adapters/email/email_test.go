package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTemplateRenderer_ApplicationReceived(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	subject, html, text, err := r.Render("application_received", &domain.ApplicationReceivedEmailData{
		Email:         "team@hack.dev",
		EventName:     "Hack <Night>",
		EventID:       "evt-1",
		ApplicationID: "app-1",
		ApplicantID:   "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "New application for Hack <Night>", subject)
	assert.Contains(t, html, "Hack &lt;Night&gt;")
	assert.NotContains(t, html, "<Night>")
	assert.Contains(t, text, "Applicant:   user-1")
	assert.Contains(t, text, "Application: app-1")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	_, _, _, err = r.Render("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplateRenderer_SubjectIsOneLine(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	subject, _, _, err := r.Render("application_received", &domain.ApplicationReceivedEmailData{
		EventName: "Hack\r\nBcc: victim@example.com",
	})
	require.NoError(t, err)
	assert.NotContains(t, subject, "\n")
	assert.NotContains(t, subject, "\r")
	assert.Equal(t, "New application for Hack Bcc: victim@example.com", subject)
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "a@b.c", "s", "<p>h</p>", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "resend"}, testLogger)
	assert.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "no-reply@hack.dev", SES: SESConfig{Region: "us-east-1"}}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}

func TestResendMailer_Send(t *testing.T) {
	var got resend.SendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-1"})
	}))
	defer server.Close()

	client := resend.NewClient("test-api-key")
	baseURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	client.BaseURL = baseURL
	m := &resendMailer{client: client, source: MailerConfig{FromAddress: "no-reply@hack.dev", FromName: "HackHub"}.source(), logger: testLogger}

	require.NoError(t, m.Send(context.Background(), "team@hack.dev", "Subject", "<p>Body</p>", "Body"))
	assert.Equal(t, "HackHub <no-reply@hack.dev>", got.From)
	assert.Equal(t, []string{"team@hack.dev"}, got.To)
	assert.Equal(t, "Subject", got.Subject)
	assert.Equal(t, "<p>Body</p>", got.Html)
	assert.Equal(t, "Body", got.Text)
}

func TestResendMailer_SendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"statusCode": 422, "message": "invalid from", "name": "validation_error"})
	}))
	defer server.Close()

	client := resend.NewClient("test-api-key")
	client.BaseURL, _ = url.Parse(server.URL)
	m := &resendMailer{client: client, source: "no-reply@hack.dev", logger: testLogger}

	err := m.Send(context.Background(), "team@hack.dev", "Subject", "<p>Body</p>", "")
	assert.Error(t, err)
}
