package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer produces tokens on demand from an in-memory document.
// Once the input is exhausted it keeps returning a TEOF sentinel.
type Tokenizer struct {
	d    []byte
	pos  int
	line int
	col  int
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{d: d, line: 1, col: 1}
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.d)
}

func (t *Tokenizer) cur() rune {
	r, _ := utf8.DecodeRune(t.d[t.pos:])
	return r
}

func (t *Tokenizer) here() Pos {
	return Pos{Line: t.line, Col: t.col}
}

// advance consumes one rune, tracking line/col.
func (t *Tokenizer) advance() {
	r, sz := utf8.DecodeRune(t.d[t.pos:])
	if r == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	t.pos += sz
}

func (t *Tokenizer) peekIsDigit() bool {
	_, sz := utf8.DecodeRune(t.d[t.pos:])
	if t.pos+sz >= len(t.d) {
		return false
	}
	c := t.d[t.pos+sz]
	return c >= '0' && c <= '9'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

var punct = map[rune]TokenType{
	'=': TEquals,
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	',': TComma,
	':': TColon,
}

// Next returns the next token or a *LexError.
func (t *Tokenizer) Next() (Token, error) {
	for !t.eof() {
		r := t.cur()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			t.advance()
		case r == '#':
			return t.lexComment(), nil
		case isIdentStart(r):
			return t.lexIdentOrKeyword(), nil
		case isDigit(r) || (r == '-' && t.peekIsDigit()):
			return t.lexNumber()
		case r == '"':
			return t.lexString()
		default:
			if tt, ok := punct[r]; ok {
				tok := Token{Type: tt, Value: string(r), Pos: t.here()}
				t.advance()
				return tok, nil
			}
			return Token{}, lexErrorf(t.here(), "unexpected character %q", r)
		}
	}
	return Token{Type: TEOF, Pos: t.here()}, nil
}

func (t *Tokenizer) lexComment() Token {
	start := t.here()
	t.advance() // '#'
	var b strings.Builder
	for !t.eof() && t.cur() != '\n' {
		b.WriteRune(t.cur())
		t.advance()
	}
	return Token{Type: TComment, Value: strings.TrimSpace(b.String()), Pos: start}
}

func (t *Tokenizer) lexIdentOrKeyword() Token {
	start := t.here()
	var b strings.Builder
	for !t.eof() && isIdentPart(t.cur()) {
		b.WriteRune(t.cur())
		t.advance()
	}
	s := b.String()
	switch s {
	case "true", "True":
		return Token{Type: TTrue, Value: s, Pos: start}
	case "false", "False":
		return Token{Type: TFalse, Value: s, Pos: start}
	case "null", "None":
		return Token{Type: TNull, Value: s, Pos: start}
	}
	return Token{Type: TIdent, Value: s, Pos: start}
}

func (t *Tokenizer) lexNumber() (Token, error) {
	start := t.here()
	var b strings.Builder
	isFloat := false
	if t.cur() == '-' {
		b.WriteByte('-')
		t.advance()
		if t.eof() || !isDigit(t.cur()) {
			return Token{}, lexErrorf(t.here(), "bad number")
		}
	}
	intDigits := 0
	firstDigit := t.cur()
	for !t.eof() && isDigit(t.cur()) {
		b.WriteRune(t.cur())
		intDigits++
		t.advance()
	}
	if !t.eof() && t.cur() == '.' {
		isFloat = true
		b.WriteByte('.')
		t.advance()
		if t.eof() || !isDigit(t.cur()) {
			return Token{}, lexErrorf(t.here(), "bad number")
		}
		for !t.eof() && isDigit(t.cur()) {
			b.WriteRune(t.cur())
			t.advance()
		}
	}
	if !t.eof() && (t.cur() == 'e' || t.cur() == 'E') {
		isFloat = true
		b.WriteRune(t.cur())
		t.advance()
		if !t.eof() && (t.cur() == '+' || t.cur() == '-') {
			b.WriteRune(t.cur())
			t.advance()
		}
		if t.eof() || !isDigit(t.cur()) {
			return Token{}, lexErrorf(t.here(), "bad number")
		}
		for !t.eof() && isDigit(t.cur()) {
			b.WriteRune(t.cur())
			t.advance()
		}
	}
	// leading zeros are disallowed, like JSON
	if firstDigit == '0' && intDigits > 1 {
		return Token{}, lexErrorf(start, "invalid number format %q", b.String())
	}
	tt := TInteger
	if isFloat {
		tt = TFloat
	}
	return Token{Type: tt, Value: b.String(), Pos: start}, nil
}

func (t *Tokenizer) lexString() (Token, error) {
	start := t.here()
	t.advance() // opening quote
	var b strings.Builder
	for !t.eof() && t.cur() != '"' {
		r := t.cur()
		if r != '\\' {
			b.WriteRune(r)
			t.advance()
			continue
		}
		t.advance() // backslash
		if t.eof() {
			return Token{}, lexErrorf(t.here(), "unterminated escape")
		}
		esc := t.cur()
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			cp := 0
			for i := 0; i < 4; i++ {
				t.advance()
				if t.eof() || !isHex(t.cur()) {
					return Token{}, lexErrorf(t.here(), "bad unicode escape")
				}
				cp = cp<<4 | hexVal(t.cur())
			}
			b.WriteRune(rune(cp))
		default:
			// unknown escape kept literal
			b.WriteByte('\\')
			b.WriteRune(esc)
		}
		t.advance()
	}
	if t.eof() {
		return Token{}, lexErrorf(start, "unterminated string")
	}
	t.advance() // closing quote
	return Token{Type: TString, Value: b.String(), Pos: start}, nil
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}
