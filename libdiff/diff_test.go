package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/keiraomg0/ker-format/go-ker/parse"
)

func TestDiffEqualDocuments(t *testing.T) {
	a, err := parse.Parse([]byte("x = 1\ny = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	// same content, different formatting and comments
	b, err := parse.Parse([]byte("# noise\nx=1   y=2"))
	if err != nil {
		t.Fatal(err)
	}
	diffs, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if Changed(diffs) {
		t.Error("formatting noise reported as change")
	}
}

func TestDiffChangedDocuments(t *testing.T) {
	a, err := parse.Parse([]byte("x = 1\ny = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Parse([]byte("x = 1\ny = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	diffs, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Changed(diffs) {
		t.Fatal("change not detected")
	}
	buf := bytes.NewBuffer(nil)
	if err := Render(buf, diffs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "- y = 2") {
		t.Errorf("missing deletion in:\n%s", out)
	}
	if !strings.Contains(out, "+ y = 3") {
		t.Errorf("missing insertion in:\n%s", out)
	}
	if !strings.Contains(out, "  x = 1") {
		t.Errorf("missing context in:\n%s", out)
	}
}
