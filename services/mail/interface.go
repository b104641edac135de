package mail

import "context"

// Mailer is the outbound email transport. Implementations deliver exactly one
// message per call; retry policy, if any, stays with the transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
