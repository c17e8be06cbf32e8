package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/optimus-events/event-registration/events"
)

//go:embed templates
var templates embed.FS

type answer struct {
	Key   string
	Value string
}

// EmailNotifier sends the registrant a confirmation email.
type EmailNotifier struct {
	Sender      email.Sender
	FromAddress string
}

var _ Notifier = &EmailNotifier{}

func (n *EmailNotifier) NotifyRegistered(ctx context.Context, reg Registration, event events.Event) error {
	return SendRegistrationConfirmationEmail(ctx, n.Sender, n.FromAddress, reg, event)
}

func SendRegistrationConfirmationEmail(ctx context.Context, emailSender email.Sender, fromAddress string, reg Registration, event events.Event) error {
	htmlBody, err := renderTemplate("registration-confirmation.tmpl", event, reg)
	if err != nil {
		return err
	}

	textOnlyBody, err := renderTemplate("registration-confirmation-textonly.tmpl", event, reg)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.UserEmail},
		Subject:     fmt.Sprintf("Registration confirmed - %q", event.Title),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func renderTemplate(name string, event events.Event, reg Registration) (string, error) {
	tmpl, err := template.New(name).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	answers := make([]answer, 0, len(reg.FormData))
	for k, v := range reg.FormData {
		answers = append(answers, answer{Key: k, Value: v.String()})
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Key < answers[j].Key })

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Event":        event,
		"Registration": reg,
		"Answers":      answers,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
