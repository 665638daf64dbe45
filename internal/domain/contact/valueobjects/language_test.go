package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Language
	}{
		{name: "site code jp", input: "jp", want: LanguageJP},
		{name: "site code en", input: "en", want: LanguageEN},
		{name: "site code zh", input: "zh", want: LanguageZH},
		{name: "empty defaults to jp", input: "", want: LanguageJP},
		{name: "unrecognized defaults to jp", input: "fr", want: LanguageJP},
		{name: "garbage defaults to jp", input: "not-a-tag!!", want: LanguageJP},
		{name: "bcp47 japanese", input: "ja", want: LanguageJP},
		{name: "regional english", input: "en-US", want: LanguageEN},
		{name: "traditional chinese", input: "zh-TW", want: LanguageZH},
		{name: "simplified chinese", input: "zh-Hans", want: LanguageZH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLanguage(tt.input))
		})
	}
}

func TestFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		want []Language
	}{
		{
			name: "english tries en zh jp",
			lang: LanguageEN,
			want: []Language{LanguageEN, LanguageZH, LanguageJP},
		},
		{
			name: "chinese tries zh jp en",
			lang: LanguageZH,
			want: []Language{LanguageZH, LanguageJP, LanguageEN},
		},
		{
			name: "japanese tries jp zh en",
			lang: LanguageJP,
			want: []Language{LanguageJP, LanguageZH, LanguageEN},
		},
		{
			name: "unknown value uses the jp order",
			lang: Language("fr"),
			want: []Language{LanguageJP, LanguageZH, LanguageEN},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.FallbackOrder())
		})
	}
}

func TestLanguageIsValid(t *testing.T) {
	assert.True(t, LanguageJP.IsValid())
	assert.True(t, LanguageEN.IsValid())
	assert.True(t, LanguageZH.IsValid())
	assert.False(t, Language("fr").IsValid())
	assert.False(t, Language("").IsValid())
}
