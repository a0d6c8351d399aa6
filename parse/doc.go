// Package parse provides .ker parsing support.
//
// Parse consumes the materialized token stream and produces an ir.Node
// document root.  Comments are associated while parsing: a pending buffer
// collects comment lines and attaches them as leading comments to the
// next statement or array element; a comment on the same source line as a
// node becomes that node's line comment instead.
//
// Duplicate keys overwrite (last wins) and surface as structured warnings
// via the ParseWarnings option; the parser itself never prints.
package parse
