package ker

import (
	"bytes"

	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/libdiff"
	"github.com/keiraomg0/ker-format/go-ker/parse"
)

// Equal reports semantic equality of a and b, ignoring comments,
// positions and formatting.
func Equal(a, b *ir.Node) bool {
	return ir.Compare(a, b) == 0
}

// Diff parses two documents and renders a line diff of their canonical
// forms.  changed is false when the documents are semantically equal.
func Diff(from, to []byte) (out []byte, changed bool, err error) {
	fromNode, err := parse.Parse(from)
	if err != nil {
		return nil, false, err
	}
	toNode, err := parse.Parse(to)
	if err != nil {
		return nil, false, err
	}
	diffs, err := libdiff.Diff(fromNode, toNode)
	if err != nil {
		return nil, false, err
	}
	if !libdiff.Changed(diffs) {
		return nil, false, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := libdiff.Render(buf, diffs); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
