package main

import (
	"bytes"
	"testing"

	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/parse"
)

func TestBaseEncOpts(t *testing.T) {
	node, err := parse.Parse([]byte("# c\na { b = 1 }"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{Indent: 2}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, cfg.baseEncOpts()...); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "# c\na {\n  b = 1\n}\n" {
		t.Errorf("indent 2: got %q", got)
	}

	cfg = &MainConfig{NoComments: true}
	buf.Reset()
	if err := encode.Encode(node, buf, cfg.baseEncOpts()...); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a {\n    b = 1\n}\n" {
		t.Errorf("no comments: got %q", got)
	}
}

func TestDiffInputs(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	// formatting-only differences compare equal and exit zero
	if err := diffInputs([]byte("a=1"), []byte("a = 1\n"), buf); err != nil {
		t.Errorf("equal docs: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("equal docs wrote %q", buf.String())
	}
	err := diffInputs([]byte("a = 1\n"), []byte("a = 2\n"), buf)
	if err == nil {
		t.Error("changed docs: want nonzero exit error")
	}
	if buf.Len() == 0 {
		t.Error("changed docs: no diff written")
	}
}
