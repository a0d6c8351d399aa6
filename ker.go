// Package ker wraps the sub-packages behind a small document API:
// parse text, reformat it canonically, and convert to and from JSON and
// YAML.
package ker

import (
	"bytes"

	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/parse"
	"github.com/keiraomg0/ker-format/go-ker/plain"
)

// Parse parses document text.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// Encode renders node as canonical text.
func Encode(node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format reformats document text canonically, preserving comments.
func Format(d []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return Encode(node, opts...)
}

// Load parses document text into plain Go data: an ordered map of
// nested maps, slices and literals.  Comments do not survive.
func Load(d []byte) (*plain.Map, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return plain.ToDocument(node)
}

// Dump renders plain Go data as canonical document text.  The top-level
// value must be a mapping.
func Dump(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := plain.FromDocument(v)
	if err != nil {
		return nil, err
	}
	return Encode(node, opts...)
}

// ToJSON converts document text to JSON.  Comments do not survive.
// indent == "" gives compact output.
func ToJSON(d []byte, indent string) ([]byte, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return plain.MarshalJSON(node, indent)
}

// FromJSON converts JSON to canonical document text.  The top-level
// JSON value must be an object.
func FromJSON(d []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := plain.UnmarshalJSON(d)
	if err != nil {
		return nil, err
	}
	return Encode(node, opts...)
}

// ToYAML converts document text to YAML.  Comments do not survive.
func ToYAML(d []byte) ([]byte, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return plain.MarshalYAML(node)
}

// FromYAML converts YAML to canonical document text.  The top-level
// YAML value must be a mapping.
func FromYAML(d []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := plain.UnmarshalYAML(d)
	if err != nil {
		return nil, err
	}
	return Encode(node, opts...)
}
