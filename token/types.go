package token

import "fmt"

type TokenType int

const (
	TIdent TokenType = iota
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TNull
	TEquals
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TComment
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TEquals:  "TEquals",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
		TComment: "TComment",
		TEOF:     "TEOF",
	}[t]
}

// Token is one lexical unit of .ker input.  Value holds the cooked text:
// decoded escapes for strings, trimmed text for comments, the literal
// spelling otherwise.  Tokens are immutable once produced.
type Token struct {
	Type  TokenType
	Value string
	Pos   Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %s", t.Type, t.Value, t.Pos)
}
