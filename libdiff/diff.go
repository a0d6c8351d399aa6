package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a line diff of the canonical encodings of from and to.
func Diff(from, to *ir.Node) ([]diffpatch.Diff, error) {
	fromText, err := canonical(from)
	if err != nil {
		return nil, err
	}
	toText, err := canonical(to)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToChars(fromText, toText)
	diffs := diffCfg.DiffMain(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines), nil
}

// Render writes diffs unified-style, a prefixed line per changed line:
// "- " removed, "+ " added, "  " unchanged.
func Render(w io.Writer, diffs []diffpatch.Diff) error {
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		default:
			prefix = "  "
		}
		for _, line := range splitLines(diff.Text) {
			if _, err := io.WriteString(w, prefix+line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Changed reports whether diffs contains any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

func canonical(n *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeComments(false)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
