package usecases

import (
	"context"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
	"github.com/ta89365/twconnect2-sub000/internal/shared/services/richtext"
)

// ResolveAutoReplyUseCase picks localized auto-reply content out of the
// content store, falling back across languages and finally to the
// compiled-in defaults. It never fails: a broken or empty store degrades
// to the default subject with an empty body marker.
type ResolveAutoReplyUseCase struct {
	store  contact.AutoReplyStore
	logger logger.Interface
}

func NewResolveAutoReplyUseCase(
	store contact.AutoReplyStore,
	logger logger.Interface,
) *ResolveAutoReplyUseCase {
	return &ResolveAutoReplyUseCase{
		store:  store,
		logger: logger,
	}
}

var _ AutoReplyResolver = (*ResolveAutoReplyUseCase)(nil)

// Resolve fetches the auto-reply document and selects the subject and body
// independently: for each, the first non-empty value along the language's
// fallback order wins. BodyText stays empty when no usable body exists so
// the composer knows to use its own default paragraph.
func (uc *ResolveAutoReplyUseCase) Resolve(ctx context.Context, lang valueobjects.Language) *contact.AutoReplyContent {
	content := &contact.AutoReplyContent{
		Language: lang,
		Subject:  defaultSubjectFor(lang),
	}

	doc, err := uc.store.FetchAutoReply(ctx)
	if err != nil {
		uc.logger.Warnw("failed to fetch auto-reply content, using defaults",
			"error", err, "lang", lang.String())
		return content
	}
	if doc == nil {
		return content
	}

	for _, l := range lang.FallbackOrder() {
		if subject := doc.SubjectFor(l); subject != "" {
			content.Subject = subject
			break
		}
	}

	for _, l := range lang.FallbackOrder() {
		if body := richtext.Flatten(doc.BodyFor(l)); body != "" {
			content.BodyText = body
			content.BodyHTML = richtext.HTMLFromPlainText(body)
			break
		}
	}

	return content
}
