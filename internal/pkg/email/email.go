package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/staffgate/attendance-gate-go/internal/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// StaleSession is one unclosed prior-day session reported by the sweep.
type StaleSession struct {
	StaffName   string
	Date        string
	CheckInTime string
}

// EmailService defines the interface for sending emails
type EmailService interface {
	SendStaleSessionSummary(to string, sessions []StaleSession) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	dialer    *gomail.Dialer
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		templates: tmpl,
	}, nil
}

type staleSessionEmailData struct {
	Count    int
	Sessions []StaleSession
}

// SendStaleSessionSummary emails the daily list of unclosed sessions.
func (s *emailServiceImpl) SendStaleSessionSummary(to string, sessions []StaleSession) error {
	data := staleSessionEmailData{
		Count:    len(sessions),
		Sessions: sessions,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "stale_sessions.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Attendance: %d unclosed session(s)", len(sessions)))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
