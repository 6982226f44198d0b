package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/mvalerio/crm-backend/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type leadClosedEmailData struct {
	AgentName string
	LeadName  string
	ClosedAt  string
}

// SendLeadClosed emails the assigned agent that their lead reached "Closed".
func (s *EmailSender) SendLeadClosed(payload queue.LeadClosedPayload) error {
	data := leadClosedEmailData{
		AgentName: payload.AgentName,
		LeadName:  payload.LeadName,
		ClosedAt:  payload.ClosedAt.Format("2006-01-02 15:04"),
	}

	tmplPath := filepath.Join("templates", "lead_closed.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.AgentEmail)
	m.SetHeader("Subject", fmt.Sprintf("Lead closed: %s", payload.LeadName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
