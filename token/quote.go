package token

import (
	"fmt"
	"strings"
	"unicode"
)

// IsIdent reports whether s can be written as a bare key.  The bare key
// syntax is ASCII-only; anything else gets quoted on output, even though
// the tokenizer accepts unicode identifiers on input.  Keyword spellings
// are excluded: a bare true/None/... lexes as a keyword token, not a key.
func IsIdent(s string) bool {
	switch s {
	case "", "true", "True", "false", "False", "null", "None":
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Quote renders v as a double-quoted .ker string.  Only escapes the
// tokenizer decodes are emitted (\n \t \r \" \\ \uXXXX), so quoted output
// always round-trips.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsControl(r) && r <= 0xffff {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteKey renders a key: bare when it is a valid identifier, quoted
// otherwise.
func QuoteKey(k string) string {
	if IsIdent(k) {
		return k
	}
	return Quote(k)
}
