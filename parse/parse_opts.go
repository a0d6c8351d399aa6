package parse

const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
	warns    *[]Warning
}

type ParseOption func(*parseOpts)

// ParseMaxDepth bounds nesting depth; exceeding it is a ParseError
// rather than call-stack exhaustion on adversarial input.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseWarnings collects non-fatal diagnostics (duplicate-key
// overwrites) into *ws.
func ParseWarnings(ws *[]Warning) ParseOption {
	return func(o *parseOpts) { o.warns = ws }
}
