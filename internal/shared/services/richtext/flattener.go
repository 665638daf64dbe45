// Package richtext flattens CMS rich-text documents into plain text.
//
// The content store returns body fields either as a plain string or as a
// tree of typed blocks (paragraph blocks containing inline span children).
// Email bodies need plain text, so everything funnels through Flatten.
package richtext

import (
	"html"
	"strings"
)

// Flatten converts a rich-text value into plain text. It is total: strings
// pass through unchanged, block sequences are flattened paragraph by
// paragraph, and any other shape yields "". Flattening already-flat text
// is the identity, so the function is idempotent on its own output.
func Flatten(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		return flattenBlocks(v)
	default:
		return ""
	}
}

func flattenBlocks(blocks []any) string {
	var paragraphs []string
	for _, raw := range blocks {
		block, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := block["_type"].(string); t != "block" {
			continue
		}
		children, ok := block["children"].([]any)
		if !ok {
			continue
		}

		var sb strings.Builder
		for _, rawChild := range children {
			child, ok := rawChild.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := child["text"].(string); ok {
				sb.WriteString(text)
			}
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return strings.TrimRight(strings.Join(paragraphs, "\n"), " \t\n")
}

// HTMLFromPlainText wraps flattened text as minimal HTML: entities escaped,
// newlines turned into line breaks. Returns "" for empty input so callers
// can distinguish "no body" from an empty paragraph.
func HTMLFromPlainText(text string) string {
	if text == "" {
		return ""
	}
	escaped := html.EscapeString(text)
	return strings.ReplaceAll(escaped, "\n", "<br />\n")
}
