package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Text content is escaped the way browsers serialize innerHTML: quotes are
// left alone, but no-break spaces are made visible.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// EscapeText escapes text for use as element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes an attribute value for use within double quotes.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}

// StartTag serializes an opening tag. Void elements use the same form,
// without a trailing slash.
func StartTag(tag string, attrs []Attribute) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(EscapeAttr(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

// EndTag serializes a closing tag.
func EndTag(tag string) string {
	return "</" + tag + ">"
}
