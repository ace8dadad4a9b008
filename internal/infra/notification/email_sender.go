// Package notification delivers transactional email.
package notification

import (
	"context"
	"log/slog"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

const (
	defaultSMTPPort    = 25
	defaultFromAddress = "no-reply@example.com"
)

// Params holds dependencies for the email sender, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender returns an SMTP sender, or a sender that only logs when no
// SMTP host is configured.
func NewEmailSender(params Params) service.EmailSender {
	cfg := params.Config.SMTP
	if cfg.Host == "" {
		params.Logger.Warn("SMTP host not configured, emails will be logged instead of sent")

		return &logEmailSender{logger: params.Logger}
	}

	if cfg.Port == 0 {
		cfg.Port = defaultSMTPPort
	}
	if cfg.FromAddress == "" {
		cfg.FromAddress = defaultFromAddress
	}

	return &smtpEmailSender{cfg: cfg, logger: params.Logger}
}

type smtpEmailSender struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

func (s *smtpEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg, err := buildMessage(s.cfg.FromAddress, to, subject, htmlBody)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return errors.Wrap(err, "failed to create SMTP client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Email sent",
		slog.String("subject", subject),
	)

	return nil
}

func (s *smtpEmailSender) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}

	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	return opts
}

func buildMessage(from, to, subject, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	return msg, nil
}

// logEmailSender stands in for SMTP in development. The body is logged at
// debug level since it carries one-time codes.
type logEmailSender struct {
	logger *slog.Logger
}

func (s *logEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Email not sent, SMTP disabled",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	logger.Debug("Email body", slog.String("body", htmlBody))

	return nil
}
