package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"hackhub/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// ErrUnknownTemplate is returned by Render for a name with no embedded template files.
var ErrUnknownTemplate = errors.New("unknown email template")

// templateRenderer renders from template sets parsed once at construction. A template named
// "x" needs x_subject.txt, x.html and x.txt.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses every embedded template. A malformed template fails here rather
// than on the first email.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html email templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text email templates: %w", err)
	}
	return &templateRenderer{html: html, text: text}, nil
}

func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	subjectTmpl := r.text.Lookup(templateName + "_subject.txt")
	htmlTmpl := r.html.Lookup(templateName + ".html")
	textTmpl := r.text.Lookup(templateName + ".txt")
	if subjectTmpl == nil || htmlTmpl == nil || textTmpl == nil {
		return "", "", "", fmt.Errorf("%w: %s", ErrUnknownTemplate, templateName)
	}

	var buf bytes.Buffer
	if err := subjectTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	// Header injection guard: a subject is always one line.
	subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := textTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
