package usecases

import (
	"context"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
)

type SubmitInquiryExecutor interface {
	Execute(ctx context.Context, cmd SubmitInquiryCommand) (*SubmitInquiryResult, error)
}

// AutoReplyResolver resolves localized auto-reply content for a language.
// Resolution never fails; store problems degrade to the compiled-in
// defaults inside the resolver.
type AutoReplyResolver interface {
	Resolve(ctx context.Context, lang valueobjects.Language) *contact.AutoReplyContent
}
