package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var leadClosedTemplate = template.Must(template.New("lead-closed").Parse(
	`Hi {{.AgentName}},

Your lead "{{.LeadName}}" was marked Closed on {{.ClosedAt.Format "Jan 2, 2006 at 15:04 MST"}}.

Nice work!
`))

func (s *Sender) SendLeadClosed(event usecase.LeadClosedEvent) error {
	var body bytes.Buffer
	if err := leadClosedTemplate.Execute(&body, event); err != nil {
		return fmt.Errorf("render lead closed email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", event.AgentEmail)
	m.SetHeader("Subject", fmt.Sprintf("Lead closed: %s", event.LeadName))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead closed email: %w", err)
	}

	return nil
}
