// Package encode renders IR nodes as canonical .ker text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// with options
//	err := encode.Encode(node, os.Stdout, encode.EncodeIndent(2))
//
// Output is canonical: encoding the parse of an encoding reproduces it
// byte for byte.
//
// # Related Packages
//
//   - github.com/keiraomg0/ker-format/go-ker/ir - IR representation
//   - github.com/keiraomg0/ker-format/go-ker/parse - Parse text to IR
package encode
