package model

import "context"

// Mail is an outbound email message.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer dispatches outbound email. Dispatch is fire-and-forget from the
// caller's perspective: failures are reported but never block the operation
// that triggered the send.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
