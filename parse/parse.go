package parse

import (
	"fmt"
	"strconv"

	"github.com/keiraomg0/ker-format/go-ker/debug"
	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/token"
)

// Parse consumes d and produces the document root, a distinguished
// Object node with no key and no position.  Lexical failures surface as
// *token.LexError, structural ones as *ParseError.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	return p.parseDocument()
}

type parser struct {
	toks    []token.Token
	i       int
	pending []string
	depth   int
	opts    *parseOpts
}

func (p *parser) cur() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) advance() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) takePending() []string {
	res := p.pending
	p.pending = nil
	return res
}

func (p *parser) warn(pos token.Pos, format string, args ...any) {
	w := Warning{Msg: fmt.Sprintf(format, args...), Pos: pos}
	if p.opts.warns != nil {
		*p.opts.warns = append(*p.opts.warns, w)
	}
	if debug.Parse() {
		debug.Logf("warning: %s\n", w)
	}
}

func (p *parser) enter(pos token.Pos) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return parseErrorf(pos, "maximum nesting depth %d exceeded", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseDocument() (*ir.Node, error) {
	root := ir.NewObject()
	for p.cur().Type != token.TEOF {
		switch p.cur().Type {
		case token.TComment:
			p.pending = append(p.pending, p.cur().Value)
			p.advance()
		case token.TIdent, token.TString:
			key, node, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			p.checkLineComment(node)
			if root.Get(key) != nil {
				p.warn(*node.Pos, "duplicate key %q", key)
			}
			root.Set(key, node)
		case token.TComma:
			// stray commas tolerated between statements
			p.advance()
		default:
			return nil, parseErrorf(p.cur().Pos, "unexpected token %q at top level", p.cur().Value)
		}
	}
	return root, nil
}

// parseStatement parses one of
//
//	key = value
//	key : { ... }
//	key { ... }
//
// where key is an identifier or a quoted string.  The returned node's
// position is the key's position; pending comments become its leading
// comments.
func (p *parser) parseStatement() (string, *ir.Node, error) {
	keyTok := *p.cur()
	key := keyTok.Value
	leading := p.takePending()
	p.advance()

	var (
		node *ir.Node
		err  error
	)
	switch p.cur().Type {
	case token.TColon:
		p.advance()
		if p.cur().Type != token.TLCurl {
			return "", nil, parseErrorf(p.cur().Pos, "expected '{' after ':'")
		}
		p.advance()
		node, err = p.parseBlockAt(keyTok.Pos)
	case token.TEquals:
		p.advance()
		if p.cur().Type == token.TLCurl {
			p.advance()
			node, err = p.parseBlockAt(keyTok.Pos)
		} else {
			node, err = p.parseValue()
		}
	case token.TLCurl:
		p.advance()
		node, err = p.parseBlockAt(keyTok.Pos)
	default:
		return "", nil, parseErrorf(p.cur().Pos, "expected '=' or '{' after key %q", key)
	}
	if err != nil {
		return "", nil, err
	}
	node.Pos = &keyTok.Pos
	node.Comments = leading
	return key, node, nil
}

// parseBlockAt parses statements up to the matching '}', which the
// caller's '{' already consumed.  openPos locates the statement for
// unclosed-block errors.
func (p *parser) parseBlockAt(openPos token.Pos) (*ir.Node, error) {
	if err := p.enter(openPos); err != nil {
		return nil, err
	}
	defer p.leave()
	node := ir.NewObject()
	node.Pos = &openPos
	for {
		switch p.cur().Type {
		case token.TComment:
			p.pending = append(p.pending, p.cur().Value)
			p.advance()
		case token.TRCurl:
			p.advance()
			return node, nil
		case token.TEOF:
			return nil, parseErrorf(openPos, "unclosed block")
		case token.TIdent, token.TString:
			key, stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			p.checkLineComment(stmt)
			if node.Get(key) != nil {
				p.warn(*stmt.Pos, "duplicate key %q in block", key)
			}
			node.Set(key, stmt)
		case token.TComma:
			p.advance()
		default:
			return nil, parseErrorf(p.cur().Pos, "unexpected token %q in block", p.cur().Value)
		}
	}
}

func (p *parser) parseValue() (*ir.Node, error) {
	t := *p.cur()
	switch t.Type {
	case token.TString:
		p.advance()
		return p.withPos(ir.FromString(t.Value), t.Pos), nil
	case token.TInteger:
		i, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			return nil, parseErrorf(t.Pos, "invalid integer %q: %v", t.Value, err)
		}
		p.advance()
		return p.withPos(ir.FromInt(i), t.Pos), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, parseErrorf(t.Pos, "invalid number %q: %v", t.Value, err)
		}
		p.advance()
		return p.withPos(ir.FromFloat(f), t.Pos), nil
	case token.TTrue:
		p.advance()
		return p.withPos(ir.FromBool(true), t.Pos), nil
	case token.TFalse:
		p.advance()
		return p.withPos(ir.FromBool(false), t.Pos), nil
	case token.TNull:
		p.advance()
		return p.withPos(ir.Null(), t.Pos), nil
	case token.TLSquare:
		p.advance()
		return p.parseArray(t.Pos)
	case token.TLCurl:
		p.advance()
		return p.parseBlockAt(t.Pos)
	default:
		return nil, parseErrorf(t.Pos, "unexpected token %q when expecting value", t.Value)
	}
}

func (p *parser) parseArray(openPos token.Pos) (*ir.Node, error) {
	if err := p.enter(openPos); err != nil {
		return nil, err
	}
	defer p.leave()
	node := &ir.Node{Type: ir.ArrayType}
	node.Pos = &openPos
	for {
		switch p.cur().Type {
		case token.TComment:
			p.pending = append(p.pending, p.cur().Value)
			p.advance()
			continue
		case token.TRSquare:
			p.advance()
			return node, nil
		case token.TEOF:
			return nil, parseErrorf(openPos, "unclosed array")
		}
		leading := p.takePending()
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elem.Comments = leading
		p.checkLineComment(elem)
		node.Values = append(node.Values, elem)
		switch p.cur().Type {
		case token.TComma:
			// also covers a trailing comma before ']'
			p.advance()
			p.checkLineComment(elem)
		case token.TRSquare:
		default:
			return nil, parseErrorf(p.cur().Pos, "expected ',' or ']' in array")
		}
	}
}

func (p *parser) withPos(node *ir.Node, pos token.Pos) *ir.Node {
	node.Pos = &pos
	return node
}

// checkLineComment attaches a comment token on the same source line as
// node's position as the node's line comment.
func (p *parser) checkLineComment(node *ir.Node) {
	if node.Pos == nil {
		return
	}
	if p.cur().Type != token.TComment {
		return
	}
	if p.cur().Pos.Line != node.Pos.Line {
		return
	}
	node.LineComment = p.cur().Value
	p.advance()
}
