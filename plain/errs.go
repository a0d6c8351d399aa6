package plain

import "errors"

// ErrTopLevel rejects documents whose top-level value is not a mapping:
// the statement form of the text format cannot represent a bare array
// or scalar.
var ErrTopLevel = errors.New("top-level value must be a mapping")
