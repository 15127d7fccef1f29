package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"go-portfolio-backend/config"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// ContactEmailData holds the submitted fields a contact email is built from.
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// Message is a fully composed outbound email. It exists only for the
// duration of one send attempt and is never stored.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender dispatches a composed contact email and reports an acceptance
// token (message id) on success. Implementations make exactly one attempt;
// retrying is the caller's (i.e. the user's) concern.
type Sender interface {
	Send(data ContactEmailData) (string, error)
	IsConfigured() bool
}

// SMTPSender sends contact emails through an external SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	secure   bool
	username string
	password string
	toEmail  string
}

// NewSMTPSender creates a sender from process configuration. Credentials are
// consumed here, never managed.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.EmailHost,
		port:     cfg.EmailPort,
		secure:   cfg.EmailSecure,
		username: cfg.EmailUser,
		password: cfg.EmailPassword,
		toEmail:  cfg.ContactEmailTo,
	}
}

// contactEmailTemplate is the HTML body for contact form emails
const contactEmailTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
  <p><strong>Message:</strong></p>
  <p style="white-space: pre-line;">{{.Message}}</p>
  <hr style="border: 1px solid #eee; margin: 20px 0;">
  <p style="color: #666; font-size: 14px;">You can reply directly to this email to respond to {{.SenderName}}.</p>
</div>`

// headerSanitizer removes CR/LF from submitter-controlled values before they
// enter a header line. A newline there would start a forged header.
var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// Compose builds the outbound message for a validated submission. Reply-To is
// the submitter so the site owner can answer directly from their inbox.
// Header values are forced single-line; the bodies carry the fields as
// submitted.
func Compose(data ContactEmailData, from, to string) (*Message, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	text := fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage: %s\n---\nReply directly to this email to respond to %s.\n",
		data.SenderName, data.SenderEmail, data.Message, data.SenderName,
	)

	return &Message{
		From:     fmt.Sprintf("\"Contact Form\" <%s>", from),
		To:       to,
		ReplyTo:  headerSanitizer.Replace(data.SenderEmail),
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", headerSanitizer.Replace(data.SenderName)),
		TextBody: text,
		HTMLBody: html.String(),
	}, nil
}

// Send composes and dispatches the contact email. One attempt, fully awaited.
func (s *SMTPSender) Send(data ContactEmailData) (string, error) {
	msg, err := Compose(data, s.username, s.toEmail)
	if err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	raw := s.encode(msg, messageID)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if s.secure {
		err = s.sendTLS(addr, auth, msg.To, raw)
	} else {
		// smtp.SendMail upgrades with STARTTLS when the server offers it
		err = smtp.SendMail(addr, auth, s.username, []string{msg.To}, raw)
	}
	if err != nil {
		return "", err
	}
	return messageID, nil
}

// encode renders the message as a multipart/alternative MIME document.
func (s *SMTPSender) encode(msg *Message, messageID string) []byte {
	// Random boundary so a body that happens to contain the delimiter text
	// cannot terminate a part early.
	boundary := "alt-" + uuid.NewString()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "Message-ID: %s\r\n", messageID)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(msg.TextBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	buf.WriteString(msg.HTMLBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}

// sendTLS dials with implicit TLS (e.g. port 465) instead of STARTTLS.
func (s *SMTPSender) sendTLS(addr string, auth smtp.Auth, to string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.username); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}
