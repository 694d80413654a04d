package results

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/ahrav/go-feedback/internal/domain"
)

// Formatter stringifies answer payloads for rendering. The engine never
// parses answers itself; every view that needs answer text goes through this
// contract. Question-type-aware implementations live with the renderers.
type Formatter interface {
	// AnswerHTML renders the answer for HTML result pages.
	AnswerHTML(r domain.Response, q domain.Question, b *Bundle) string

	// AnswerCSV renders the answer for CSV exports.
	AnswerCSV(r domain.Response, q domain.Question, b *Bundle) string

	// AnswerText returns the canonical plain string form of the answer,
	// also used as the content sort key.
	AnswerText(r domain.Response, q domain.Question, b *Bundle) string
}

// PlainFormatter treats every answer payload as plain text: a JSON string
// payload is unquoted, anything else is rendered verbatim.
type PlainFormatter struct{}

// AnswerText implements Formatter.
func (PlainFormatter) AnswerText(r domain.Response, _ domain.Question, _ *Bundle) string {
	if len(r.Answer) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Answer, &s); err == nil {
		return s
	}
	return string(r.Answer)
}

// AnswerHTML implements Formatter with HTML escaping.
func (f PlainFormatter) AnswerHTML(r domain.Response, q domain.Question, b *Bundle) string {
	return html.EscapeString(f.AnswerText(r, q, b))
}

// AnswerCSV implements Formatter with RFC 4180 quoting.
func (f PlainFormatter) AnswerCSV(r domain.Response, q domain.Question, b *Bundle) string {
	s := f.AnswerText(r, q, b)
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
