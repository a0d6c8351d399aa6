package token

import "fmt"

// LexError is a character-level failure: unterminated string, bad escape,
// malformed number, unrecognized character.
type LexError struct {
	Err error
	Pos Pos
}

func NewLexError(e error, p Pos) *LexError {
	return &LexError{Err: e, Pos: p}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func lexErrorf(p Pos, format string, args ...any) *LexError {
	return &LexError{Err: fmt.Errorf(format, args...), Pos: p}
}
