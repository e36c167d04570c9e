package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"

	"github.com/luxystore/luxy-api/app/models"
)

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	NotifyTo string
}

// Mailer sends the store team a copy of each contact-form submission. The
// back office still holds the message; the email only cuts the time to first
// reply.
type Mailer struct {
	config MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) NotifyContactMessage(msg *models.Message) error {
	subject := fmt.Sprintf("New contact message: %s", msg.Subject)
	return m.sendHTMLEmail(m.config.NotifyTo, subject, buildContactEmailBody(msg))
}

func (m *Mailer) sendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Mailer: failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func buildContactEmailBody(msg *models.Message) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>New Contact Message</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .header { background-color: #f8f8f8; padding: 10px 0; text-align: center; border-bottom: 1px solid #ddd; }
                .content { padding: 20px; }
                .meta { color: #777; font-size: 0.9em; }
                .footer { font-size: 0.8em; color: #777; text-align: center; margin-top: 20px; border-top: 1px solid #ddd; padding-top: 10px; }
            </style>
        </head>
        <body>
            <div class="container">
                <div class="header">
                    <h2>New message from the Luxy Store contact form</h2>
                </div>
                <div class="content">
                    <p class="meta">From: %s &lt;%s&gt;</p>
                    <p class="meta">Subject: %s</p>
                    <p>%s</p>
                </div>
                <div class="footer">
                    <p>Reply directly to the sender, or manage this message from the Luxy Store back office.</p>
                </div>
            </div>
        </body>
        </html>
    `, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Subject), html.EscapeString(msg.Message))
}
