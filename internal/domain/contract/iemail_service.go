package contract

import "context"

// IEmailService sends transactional mail, e.g. the office notification when a
// consultation request arrives.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
