package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func block(texts ...string) map[string]any {
	children := make([]any, 0, len(texts))
	for _, t := range texts {
		children = append(children, map[string]any{"_type": "span", "text": t})
	}
	return map[string]any{"_type": "block", "children": children}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "plain string passes through unchanged",
			input: "already plain",
			want:  "already plain",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "nil yields empty string",
			input: nil,
			want:  "",
		},
		{
			name:  "number yields empty string",
			input: 42.0,
			want:  "",
		},
		{
			name:  "arbitrary object yields empty string",
			input: map[string]any{"foo": "bar"},
			want:  "",
		},
		{
			name:  "single paragraph with one span",
			input: []any{block("hello")},
			want:  "hello",
		},
		{
			name:  "paragraph concatenates spans",
			input: []any{block("hello ", "world")},
			want:  "hello world",
		},
		{
			name: "paragraphs joined with newlines",
			input: []any{
				block("first"),
				block("second"),
				block("third"),
			},
			want: "first\nsecond\nthird",
		},
		{
			name: "non-block elements are skipped",
			input: []any{
				block("kept"),
				map[string]any{"_type": "image", "asset": "ref"},
				"stray string",
				block("also kept"),
			},
			want: "kept\nalso kept",
		},
		{
			name: "block without children is skipped",
			input: []any{
				map[string]any{"_type": "block"},
				block("text"),
			},
			want: "text",
		},
		{
			name: "trailing whitespace is trimmed",
			input: []any{
				block("text"),
				block(""),
				block(""),
			},
			want: "text",
		},
		{
			name:  "empty block list",
			input: []any{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.input))
		})
	}
}

func TestFlattenIdempotence(t *testing.T) {
	inputs := []any{
		"already plain",
		"multi\nline\ntext",
		[]any{block("hello"), block("world")},
		nil,
		[]any{},
	}

	for _, input := range inputs {
		once := Flatten(input)
		twice := Flatten(any(once))
		assert.Equal(t, once, twice, "flatten must be idempotent on its own output")
	}
}

func TestHTMLFromPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "entities are escaped",
			input: `<script>alert("x") & more</script>`,
			want:  "&lt;script&gt;alert(&#34;x&#34;) &amp; more&lt;/script&gt;",
		},
		{
			name:  "newlines become line breaks",
			input: "line one\nline two",
			want:  "line one<br />\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLFromPlainText(tt.input))
		})
	}
}
