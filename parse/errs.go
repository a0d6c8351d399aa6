package parse

import (
	"errors"
	"fmt"

	"github.com/keiraomg0/ker-format/go-ker/token"
)

var ErrParse = errors.New("parse error")

// ParseError is a token-level failure: unexpected token, missing '=' or
// '{', unclosed block, excessive nesting.  The first error aborts the
// parse; there is no recovery or partial document.
type ParseError struct {
	Err error
	Pos token.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func parseErrorf(p token.Pos, format string, args ...any) *ParseError {
	return &ParseError{Err: fmt.Errorf(format, args...), Pos: p}
}

// Warning is a non-fatal diagnostic, currently only duplicate-key
// overwrites.
type Warning struct {
	Msg string
	Pos token.Pos
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s", w.Msg, w.Pos)
}
