// Package libdiff computes line diffs between documents.
//
// Documents compare by their canonical encoding, so formatting noise in
// the inputs never shows up as a change.
//
// # Related Packages
//
//   - github.com/keiraomg0/ker-format/go-ker/ir - IR representation
//   - github.com/keiraomg0/ker-format/go-ker/encode - canonical encoding
package libdiff
