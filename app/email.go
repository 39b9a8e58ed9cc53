package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/International-Combat-Archery-Alliance/email/gmail"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email instead of sending it, for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func NewEmailLogger(logger *slog.Logger) *EmailLogger {
	return &EmailLogger{logger: logger}
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.InfoContext(ctx, "email that would be sent",
		slog.String("from", e.FromAddress),
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.String("body", e.TextBody),
	)

	return nil
}

func newEmailSender(ctx context.Context, cfg config.Config, awsCfg aws.Config, logger *slog.Logger) (email.Sender, error) {
	if cfg.Env == config.LOCAL {
		return NewEmailLogger(logger), nil
	}

	switch cfg.EmailProvider {
	case "ses":
		return awsses.NewAWSSESSender(sesv2.NewFromConfig(awsCfg)), nil
	case "gmail":
		return createGmailEmailSender(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}

func createGmailEmailSender(ctx context.Context, cfg config.Config) (*gmail.GmailSender, error) {
	if cfg.GmailCredentialsJSON == "" {
		return nil, fmt.Errorf("gmail credentials are not set")
	}

	sender := cfg.GmailSenderAddress
	if sender == "" {
		sender = cfg.FromAddress
	}

	s, err := gmail.NewGmailSender(ctx, []byte(cfg.GmailCredentialsJSON), sender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail sender: %w", err)
	}
	return s, nil
}
