package validators

import (
	"regexp"
	"strings"
)

var markupEntities = map[byte]string{
	'"':  "&quot;",
	'\'': "&#x27;",
	'<':  "&lt;",
	'>':  "&gt;",
	'/':  "&#x2F;",
	'\\': "&#x5C;",
	'`':  "&#96;",
}

// emittedReference matches, at the start of a string, one of the references
// escapeMarkup itself writes.
var emittedReference = regexp.MustCompile(`^&(?:amp|lt|gt|quot|#x27|#x2F|#x5C|#96);`)

// escapeMarkup encodes markup-significant characters. An ampersand that
// opens one of its own output references is copied verbatim, which makes
// escapeMarkup(escapeMarkup(s)) == escapeMarkup(s). Any other reference,
// such as &x; or &#39;, has its ampersand encoded.
func escapeMarkup(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '&' {
			if ref := emittedReference.FindString(s[i:]); ref != "" {
				b.WriteString(ref)
				i += len(ref) - 1
				continue
			}
			b.WriteString("&amp;")
			continue
		}

		if entity, ok := markupEntities[c]; ok {
			b.WriteString(entity)
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
