// Package token turns raw .ker text into a flat stream of typed tokens
// with 1-based line/column positions.
//
// The tokenizer is strict in the JSON sense for numbers (no leading-zero
// multi-digit integers) and accepts the keyword spellings true/True,
// false/False and null/None.  All other identifier spellings are plain
// identifiers.
package token
