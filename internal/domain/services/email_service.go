package services

import (
	"bytes"
	"fmt"
	"html/template"

	"immowaechter-http-service/internal/infrastructure/config"

	gomail "gopkg.in/gomail.v2"
)

// EmailPayload is a rendered email ready for delivery
type EmailPayload struct {
	Subject string
	HTML    string
}

// EmailSender abstracts SMTP delivery so it can be faked in tests
type EmailSender interface {
	Send(to, subject, html string) error
}

// InterfaceEmailService defines the email service interface
type InterfaceEmailService interface {
	BuildNotificationEmail(notifType, componentName, message, url string) (EmailPayload, error)
	SendNotificationEmail(to, notifType, componentName, message, url string) error
	SendWaitlistConfirmation(to, name, confirmURL string) error
}

// EmailService renders and delivers templated HTML email
type EmailService struct {
	Config *config.Config
	Sender EmailSender
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{Config: cfg}
	service.Sender = &smtpSender{cfg: cfg}
	return service
}

// smtpSender is the production sender backed by gomail
type smtpSender struct {
	cfg *config.Config
}

func (s *smtpSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	return dialer.DialAndSend(m)
}

// Subject prefix per notification type discriminator
var emailSubjects = map[string]string{
	"critical": "🚨 Dringender Handlungsbedarf",
	"warning":  "⚠️ Wartung überfällig",
	"info":     "ℹ️ Wartung steht an",
	"success":  "✅ Wartung erledigt",
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html lang="de">
<body style="font-family:Arial,sans-serif;background:#f4f4f5;padding:24px">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px">
    <h2 style="margin-top:0">ImmoWächter</h2>
    <h3>{{.Headline}}</h3>
    <p><strong>{{.ComponentName}}</strong></p>
    <p>{{.Message}}</p>
    {{if .URL}}<p><a href="{{.URL}}" style="display:inline-block;background:#2563eb;color:#ffffff;padding:10px 20px;border-radius:6px;text-decoration:none">Details ansehen</a></p>{{end}}
    <hr style="border:none;border-top:1px solid #e4e4e7">
    <p style="color:#71717a;font-size:12px">Sie erhalten diese E-Mail, weil Sie Wartungserinnerungen aktiviert haben.</p>
  </div>
</body>
</html>`))

var waitlistTemplate = template.Must(template.New("waitlist").Parse(`<!DOCTYPE html>
<html lang="de">
<body style="font-family:Arial,sans-serif;background:#f4f4f5;padding:24px">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px">
    <h2 style="margin-top:0">Willkommen bei ImmoWächter{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Bitte bestätigen Sie Ihre Anmeldung zur Warteliste:</p>
    <p><a href="{{.ConfirmURL}}" style="display:inline-block;background:#2563eb;color:#ffffff;padding:10px 20px;border-radius:6px;text-decoration:none">Anmeldung bestätigen</a></p>
    <p style="color:#71717a;font-size:12px">Falls Sie sich nicht angemeldet haben, ignorieren Sie diese E-Mail.</p>
  </div>
</body>
</html>`))

// 1. BuildNotificationEmail renders the email for a notification type
func (s *EmailService) BuildNotificationEmail(notifType, componentName, message, url string) (EmailPayload, error) {
	headline, ok := emailSubjects[notifType]
	if !ok {
		headline = emailSubjects["info"]
	}

	var buf bytes.Buffer
	err := notificationTemplate.Execute(&buf, map[string]string{
		"Headline":      headline,
		"ComponentName": componentName,
		"Message":       message,
		"URL":           url,
	})
	if err != nil {
		return EmailPayload{}, err
	}

	return EmailPayload{
		Subject: fmt.Sprintf("%s: %s", headline, componentName),
		HTML:    buf.String(),
	}, nil
}

// 2. SendNotificationEmail renders and delivers a notification email
func (s *EmailService) SendNotificationEmail(to, notifType, componentName, message, url string) error {
	payload, err := s.BuildNotificationEmail(notifType, componentName, message, url)
	if err != nil {
		return err
	}
	return s.Sender.Send(to, payload.Subject, payload.HTML)
}

// 3. SendWaitlistConfirmation delivers the double-opt-in email
func (s *EmailService) SendWaitlistConfirmation(to, name, confirmURL string) error {
	var buf bytes.Buffer
	err := waitlistTemplate.Execute(&buf, map[string]string{
		"Name":       name,
		"ConfirmURL": confirmURL,
	})
	if err != nil {
		return err
	}
	return s.Sender.Send(to, "Bitte bestätigen Sie Ihre Anmeldung", buf.String())
}
