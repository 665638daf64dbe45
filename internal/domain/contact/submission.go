package contact

import (
	"sort"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact/valueobjects"
)

// Known form field names, in the order they appear on the contact page.
// The order is reused when rendering the internal notification table.
var knownFieldNames = []string{
	"name",
	"email",
	"phone",
	"company",
	"subject",
	"summary",
	"preferredContact",
	"datetime",
	"consent",
	"lang",
	"timezone",
}

// Field is one rendered row of the internal notification.
type Field struct {
	Name  string
	Value string
}

// Submission is one contact-form inquiry. It exists only for the duration
// of a single request and is never persisted.
type Submission struct {
	Name             string
	Email            string
	Phone            string
	Company          string
	Subject          string
	Summary          string
	PreferredContact string
	Datetime         string
	Consent          string
	Timezone         string

	Language valueobjects.Language

	// Extra holds fields posted under names the form does not declare.
	// They are kept (and rendered into the notification) rather than
	// silently dropped, so a mismatched frontend deploy is visible.
	Extra map[string]string

	Attachments []Attachment
}

// NewSubmission builds a Submission from the normalized field map. The lang
// field is resolved to a supported locale here; everything downstream works
// with the resolved language only.
func NewSubmission(fields map[string]string, attachments []Attachment) *Submission {
	s := &Submission{
		Name:             fields["name"],
		Email:            fields["email"],
		Phone:            fields["phone"],
		Company:          fields["company"],
		Subject:          fields["subject"],
		Summary:          fields["summary"],
		PreferredContact: fields["preferredContact"],
		Datetime:         fields["datetime"],
		Consent:          fields["consent"],
		Timezone:         fields["timezone"],
		Language:         valueobjects.ParseLanguage(fields["lang"]),
		Attachments:      attachments,
	}

	known := make(map[string]bool, len(knownFieldNames))
	for _, name := range knownFieldNames {
		known[name] = true
	}
	for name, value := range fields {
		if !known[name] {
			if s.Extra == nil {
				s.Extra = make(map[string]string)
			}
			s.Extra[name] = value
		}
	}

	return s
}

// HasEmail reports whether the visitor supplied any email value. Whether it
// is plausible enough to send an auto-reply to is decided by the use case.
func (s *Submission) HasEmail() bool {
	return s.Email != ""
}

// OrderedFields returns the declared fields in form order, followed by any
// extra fields. Empty declared fields are included so the notification
// always shows the full form shape.
func (s *Submission) OrderedFields() []Field {
	fields := []Field{
		{Name: "name", Value: s.Name},
		{Name: "email", Value: s.Email},
		{Name: "phone", Value: s.Phone},
		{Name: "company", Value: s.Company},
		{Name: "subject", Value: s.Subject},
		{Name: "summary", Value: s.Summary},
		{Name: "preferredContact", Value: s.PreferredContact},
		{Name: "datetime", Value: s.Datetime},
		{Name: "consent", Value: s.Consent},
		{Name: "lang", Value: s.Language.String()},
		{Name: "timezone", Value: s.Timezone},
	}
	for _, name := range sortedKeys(s.Extra) {
		fields = append(fields, Field{Name: name, Value: s.Extra[name]})
	}
	return fields
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
