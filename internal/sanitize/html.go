package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy removes all HTML tags and attributes.
	// Used for names, titles, URLs and emails.
	StrictPolicy = bluemonday.StrictPolicy()

	// UGCPolicy allows safe user-generated formatting.
	// Used for the event about text and track, prize and person descriptions.
	UGCPolicy = bluemonday.UGCPolicy()
)

// policyEscapes reverses only the escaping StrictPolicy applies to plain characters. An encoded
// angle bracket stays encoded, so "&lt;script&gt;" can never come back as a tag.
var policyEscapes = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// Text strips all HTML and returns plain text. Names such as "R&D Hack" or "O'Brien" survive
// unchanged; "<" and ">" in the result are always entity-encoded.
func Text(input string) string {
	return policyEscapes.Replace(StrictPolicy.Sanitize(input))
}

// HTML sanitizes HTML content, keeping safe formatting tags.
func HTML(input string) string {
	return UGCPolicy.Sanitize(input)
}

// OptionalText applies Text to a non-nil value. A value that is blank after sanitizing becomes nil.
func OptionalText(input *string) *string {
	return optional(input, Text)
}

// OptionalHTML applies HTML to a non-nil value. A value that is blank after sanitizing becomes nil.
func OptionalHTML(input *string) *string {
	return optional(input, HTML)
}

func optional(input *string, fn func(string) string) *string {
	if input == nil {
		return nil
	}
	out := strings.TrimSpace(fn(*input))
	if out == "" {
		return nil
	}
	return &out
}
