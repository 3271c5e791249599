package services

import (
	"fmt"
	"net/smtp"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domain"
)

// Notifier is the email-sending collaborator used by the contact service.
// Its failures are best-effort and never surface to the submitting visitor.
type Notifier interface {
	NotifySubmission(msg *domain.ContactMessage) error
}

// EmailService sends operator notifications over SMTP
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// NotifySubmission emails the operator about a new contact message. The
// subject carries the sender's name; the body carries all three fields
// verbatim.
func (s *EmailService) NotifySubmission(msg *domain.ContactMessage) error {
	if !s.cfg.Enabled {
		// In development mode, just log
		fmt.Printf("[EMAIL] New contact message from %s (%s)\n", msg.Name, msg.Email)
		return nil
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", msg.Name)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #1C5D99;">New Contact Form Submission</h2>

        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
            <p><strong>Received:</strong> %s</p>
        </div>

        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Message:</h3>
            <p style="white-space: pre-wrap;">%s</p>
        </div>
    </div>
</body>
</html>`, msg.Name, msg.Email, msg.Email, msg.CreatedAt.Format("January 2, 2006 at 3:04 PM"), msg.Message)

	textBody := fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Received: %s

Message:
%s`, msg.Name, msg.Email, msg.CreatedAt.Format("January 2, 2006 at 3:04 PM"), msg.Message)

	return s.SendHTMLEmail(s.cfg.NotifyEmail, subject, htmlBody, textBody)
}

// SendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, subject)
		return nil
	}

	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	// Create email message
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	// Send email
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsEnabled returns whether email sending is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}
