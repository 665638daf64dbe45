package contact

import "context"

// Message is one outgoing email. Text may be empty for HTML-only messages.
type Message struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer sends a single message through the configured transport. One
// attempt per call; retry policy, if any, belongs to the caller.
// Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
