package usecases

import (
	"fmt"
	"html"
	"strings"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
	"github.com/ta89365/twconnect2-sub000/internal/shared/services/markdown"
	"github.com/ta89365/twconnect2-sub000/internal/shared/services/richtext"
)

// EmailComposer builds the two HTML documents of the pipeline: the internal
// notification and the visitor auto-reply. Pure string construction, no I/O.
type EmailComposer struct {
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewEmailComposer(md markdown.MarkdownService, logger logger.Interface) *EmailComposer {
	return &EmailComposer{
		markdown: md,
		logger:   logger,
	}
}

// ComposeNotification renders every submission field into a table. All
// interpolated values are HTML-escaped; this is the only defense against
// markup injection from attacker-controlled form input.
func (c *EmailComposer) ComposeNotification(sub *contact.Submission) (subject, body string) {
	name := sub.Name
	if name == "" {
		name = "(no name)"
	}
	subject = fmt.Sprintf("[contact] New inquiry from %s", name)

	var sb strings.Builder
	sb.WriteString("<html><body>\n")
	sb.WriteString("<h2>New contact form submission</h2>\n")
	sb.WriteString(`<table border="1" cellpadding="6" cellspacing="0">` + "\n")
	for _, field := range sub.OrderedFields() {
		sb.WriteString("<tr><th align=\"left\">")
		sb.WriteString(html.EscapeString(field.Name))
		sb.WriteString("</th><td>")
		sb.WriteString(strings.ReplaceAll(html.EscapeString(field.Value), "\n", "<br />"))
		sb.WriteString("</td></tr>\n")
	}
	sb.WriteString("</table>\n")

	if len(sub.Attachments) > 0 {
		sb.WriteString(fmt.Sprintf("<p>%d attachment(s):</p>\n<ul>\n", len(sub.Attachments)))
		for _, att := range sub.Attachments {
			sb.WriteString("<li>")
			sb.WriteString(html.EscapeString(att.Filename))
			sb.WriteString(fmt.Sprintf(" (%s, %d bytes)", html.EscapeString(att.ContentType), att.Size()))
			sb.WriteString("</li>\n")
		}
		sb.WriteString("</ul>\n")
	}

	sb.WriteString("</body></html>\n")
	return subject, sb.String()
}

// ComposeAutoReply builds the visitor-facing confirmation. The resolved
// store content wins when it has a body; otherwise the compiled-in default
// paragraph referencing the visitor's name, the inquiry subject, and the
// submission timestamp is rendered from its Markdown source.
func (c *EmailComposer) ComposeAutoReply(sub *contact.Submission, content *contact.AutoReplyContent) (subject, htmlBody, textBody string) {
	subject = content.Subject

	if content.HasBody() {
		htmlBody = wrapHTML(content.BodyHTML)
		textBody = content.BodyText
		return subject, htmlBody, textBody
	}

	name := sub.Name
	if name == "" {
		name = "-"
	}
	inquirySubject := sub.Subject
	if inquirySubject == "" {
		inquirySubject = "-"
	}
	datetime := sub.Datetime
	if datetime == "" {
		datetime = "-"
	}

	textBody = fmt.Sprintf(defaultBodyFor(content.Language),
		name, inquirySubject, datetime)

	rendered, err := c.markdown.ToHTMLSanitized(escapeMarkdownArgsSafe(textBody))
	if err != nil {
		// goldmark does not fail on any input we feed it, but degrade to
		// the escaped plain text rather than sending an empty body.
		c.logger.Warnw("failed to render default auto-reply body", "error", err)
		rendered = richtext.HTMLFromPlainText(textBody)
	}
	htmlBody = wrapHTML(rendered)

	return subject, htmlBody, textBody
}

// escapeMarkdownArgsSafe neutralizes raw HTML in the substituted visitor
// values before markdown rendering; bluemonday strips anything that slips
// through, this keeps entities readable instead of dropped.
func escapeMarkdownArgsSafe(s string) string {
	return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(s)
}

func wrapHTML(inner string) string {
	return "<html><body>\n" + inner + "\n</body></html>\n"
}
