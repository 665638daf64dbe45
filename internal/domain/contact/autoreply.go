package contact

import (
	"context"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
)

// AutoReplyDocument is the auto-reply template as authored in the CMS.
// Subject holds a plain string per locale; Body holds either a plain string
// or a rich-text block sequence per locale, exactly as the store returns it.
type AutoReplyDocument struct {
	Subject map[string]string `json:"subject"`
	Body    map[string]any    `json:"body"`
}

// SubjectFor returns the subject for the given locale, or "" when unset.
func (d *AutoReplyDocument) SubjectFor(lang valueobjects.Language) string {
	if d == nil {
		return ""
	}
	return d.Subject[lang.String()]
}

// BodyFor returns the raw body value for the given locale, or nil when unset.
func (d *AutoReplyDocument) BodyFor(lang valueobjects.Language) any {
	if d == nil {
		return nil
	}
	return d.Body[lang.String()]
}

// AutoReplyStore fetches the auto-reply document from the content store.
// A nil document with a nil error is a valid "nothing published" response.
type AutoReplyStore interface {
	FetchAutoReply(ctx context.Context) (*AutoReplyDocument, error)
}

// AutoReplyContent is the per-request resolved auto-reply. BodyText and
// BodyHTML are both empty when the store had no usable body; the composer
// then falls back to the compiled-in default paragraph.
type AutoReplyContent struct {
	Language valueobjects.Language
	Subject  string
	BodyText string
	BodyHTML string
}

// HasBody reports whether the store provided a usable body.
func (c *AutoReplyContent) HasBody() bool {
	return c.BodyText != ""
}
