package service

import "context"

// EmailSender delivers a transactional HTML email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
