package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeUsesFreshBoundaryPerMessage(t *testing.T) {
	s := &SMTPSender{host: "smtp.example.com"}
	msg := &Message{
		From:     `"Contact Form" <owner@example.com>`,
		To:       "contact@example.com",
		ReplyTo:  "jane@x.com",
		Subject:  "New Contact Form Submission from Jane Doe",
		TextBody: "Hello",
		HTMLBody: "<p>Hello</p>",
	}

	first := string(s.encode(msg, "<a@smtp.example.com>"))
	second := string(s.encode(msg, "<b@smtp.example.com>"))

	extractBoundary := func(raw string) string {
		_, after, ok := strings.Cut(raw, "boundary=")
		assert.True(t, ok)
		line, _, _ := strings.Cut(after, "\r\n")
		return strings.Trim(line, `"`)
	}

	b1 := extractBoundary(first)
	b2 := extractBoundary(second)
	assert.NotEmpty(t, b1)
	assert.NotEqual(t, b1, b2)

	// Both parts and the terminator are delimited by that boundary
	assert.Equal(t, 3, strings.Count(first, "--"+b1))
	assert.True(t, strings.Contains(first, "--"+b1+"--"))
}

func TestEncodeHeaderBlockStopsAtBlankLine(t *testing.T) {
	// A composed message carries sanitized single-line header values, so the
	// header block is exactly the seven lines written here and a body cannot
	// smuggle additional headers above the blank separator.
	s := &SMTPSender{host: "smtp.example.com"}
	msg := &Message{
		From:     `"Contact Form" <owner@example.com>`,
		To:       "contact@example.com",
		ReplyTo:  "jane@x.com",
		Subject:  "New Contact Form Submission from Jane Doe",
		TextBody: "Bcc: attacker@evil.test\nthis is body text, not a header",
		HTMLBody: "<p>Hello</p>",
	}

	raw := string(s.encode(msg, "<id@smtp.example.com>"))
	headers, _, ok := strings.Cut(raw, "\r\n\r\n")
	assert.True(t, ok)
	assert.NotContains(t, headers, "Bcc:")
	assert.NotContains(t, headers, "attacker@evil.test")
}
