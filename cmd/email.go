package main

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/optimus-events/event-registration/api"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent",
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.String("body", e.TextBody),
	)

	return nil
}

func createEmailSender(logger *slog.Logger, env api.Environment, awsCfg aws.Config) email.Sender {
	if env == api.LOCAL {
		return &EmailLogger{logger: logger}
	}

	return awsses.NewAWSSESSender(sesv2.NewFromConfig(awsCfg))
}
