package valueobjects

import "golang.org/x/text/language"

// Language is one of the site locales. The site uses "jp" rather than the
// BCP 47 "ja" because the CMS datasets were created with that field name.
type Language string

const (
	LanguageJP Language = "jp"
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
)

// DefaultLanguage is used when the submission carries no usable lang field.
const DefaultLanguage = LanguageJP

var validLanguages = map[Language]bool{
	LanguageJP: true,
	LanguageEN: true,
	LanguageZH: true,
}

// matcher resolves arbitrary BCP 47 tags onto the supported locales.
// Japanese first, so unmatchable tags fall through to the primary locale.
var matcher = language.NewMatcher([]language.Tag{
	language.Japanese,
	language.English,
	language.Chinese,
})

var tagToLanguage = map[language.Tag]Language{
	language.Japanese: LanguageJP,
	language.English:  LanguageEN,
	language.Chinese:  LanguageZH,
}

func (l Language) String() string {
	return string(l)
}

func (l Language) IsValid() bool {
	return validLanguages[l]
}

// FallbackOrder returns the order in which localized fields are tried for
// this language. The first entry is always the language itself.
func (l Language) FallbackOrder() []Language {
	switch l {
	case LanguageEN:
		return []Language{LanguageEN, LanguageZH, LanguageJP}
	case LanguageZH:
		return []Language{LanguageZH, LanguageJP, LanguageEN}
	default:
		return []Language{LanguageJP, LanguageZH, LanguageEN}
	}
}

// ParseLanguage maps a raw lang field to a supported locale. The site's own
// short codes are accepted directly; anything else goes through the BCP 47
// matcher so that tags like "zh-TW" or "en-US" still resolve. Unrecognized
// or empty input yields DefaultLanguage.
func ParseLanguage(raw string) Language {
	if l := Language(raw); l.IsValid() {
		return l
	}
	if raw == "" {
		return DefaultLanguage
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}

	tags := []language.Tag{language.Japanese, language.English, language.Chinese}
	if idx < 0 || idx >= len(tags) {
		return DefaultLanguage
	}
	return tagToLanguage[tags[idx]]
}
