package svg

import (
	"encoding/xml"
	"strings"
)

// EscapeText makes label text safe as text element content.
// A text element draws one line, so runs of whitespace, line breaks included, become a single space.
func EscapeText(text string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(strings.Join(strings.Fields(text), " ")))
	return b.String()
}
