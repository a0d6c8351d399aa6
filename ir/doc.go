// Package ir contains the .ker document representation.
//
// A Node is exactly one of Object, Array or Literal (string, number, bool,
// null), plus comment and position metadata shared by every shape.  Nodes
// are write-once: they are built by the parser or the plain-value bridge
// and only read afterwards.
package ir
