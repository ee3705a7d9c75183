package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net"
	"time"

	"inmo_crm_backend/internal/tasks/domain"
	"inmo_crm_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var digestTemplate = template.Must(template.ParseFS(templateFS, "templates/urgent_digest.html"))

const subjectUrgentDigest = "Tareas urgentes de hoy"

// SMTPSender delivers mail over the tenant's SMTP server via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a sender from the email configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

type digestRow struct {
	Description  string
	EntityName   string
	DueDate      string
	DaysUntilDue int
}

type digestData struct {
	Title     string
	Heading   string
	TaskCount int
	Tasks     []digestRow
}

// SendUrgentDigest renders the urgent-task table and mails it to the agent.
func (s *SMTPSender) SendUrgentDigest(ctx context.Context, to string, tasks []domain.UrgentTask) error {
	rows := make([]digestRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, digestRow{
			Description:  task.Description,
			EntityName:   task.EntityName,
			DueDate:      task.DueDate.Format("02/01/2006"),
			DaysUntilDue: task.DaysUntilDue,
		})
	}

	var body bytes.Buffer
	err := digestTemplate.Execute(&body, digestData{
		Title:     subjectUrgentDigest,
		Heading:   subjectUrgentDigest,
		TaskCount: len(rows),
		Tasks:     rows,
	})
	if err != nil {
		return fmt.Errorf("digest template: %w", err)
	}

	return s.send(ctx, to, subjectUrgentDigest, body.String())
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
