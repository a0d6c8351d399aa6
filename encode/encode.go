package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/keiraomg0/ker-format/go-ker/debug"
	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/token"
)

var ErrEncoding = errors.New("encoding error")

// inlineMax bounds the element count of arrays rendered on one line.
const inlineMax = 5

type EncState struct {
	indent   int
	comments bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node, which must be an object, as canonical text: one
// statement per line, arrays of at most inlineMax literals on a single
// line, keys bare when they are identifiers and quoted otherwise.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   4,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: top-level value must be an object, got %s", ErrEncoding, node.Type)
	}
	if debug.Encode() {
		debug.Logf("encode: fields=%d indent=%d comments=%v\n", node.Len(), es.indent, es.comments)
	}
	e := &encoder{w: w, es: es}
	return e.writeFields(node, 0)
}

type encoder struct {
	w  io.Writer
	es *EncState
}

func (e *encoder) writeString(s string) error {
	_, err := e.w.Write([]byte(s))
	return err
}

func (e *encoder) pad(level int) string {
	return strings.Repeat(" ", e.es.indent*level)
}

func (e *encoder) color(t ir.Type, a ColorAttr, s string) string {
	if e.es.Color == nil {
		return s
	}
	return e.es.Color(t, a, s)
}

// writeLeading emits n's leading comments as '# ...' lines.  A line
// comment on a multi-line node cannot keep its suffix position, so it
// demotes to one more leading line.
func (e *encoder) writeLeading(n *ir.Node, level int, demoteLine bool) error {
	if !e.es.comments {
		return nil
	}
	for _, c := range n.Comments {
		if err := e.writeString(e.pad(level) + e.color(n.Type, CommentColor, commentText(c)) + "\n"); err != nil {
			return err
		}
	}
	if demoteLine && n.LineComment != "" {
		return e.writeString(e.pad(level) + e.color(n.Type, CommentColor, commentText(n.LineComment)) + "\n")
	}
	return nil
}

// lineComment renders n's line comment as a suffix, two spaces off the
// value.
func (e *encoder) lineComment(n *ir.Node) string {
	if !e.es.comments || n.LineComment == "" {
		return ""
	}
	return "  " + e.color(n.Type, CommentColor, commentText(n.LineComment))
}

func commentText(c string) string {
	if c == "" {
		return "#"
	}
	return "# " + c
}

func (e *encoder) writeFields(n *ir.Node, level int) error {
	for i, f := range n.Fields {
		if err := e.writeEntry(f, n.Values[i], level); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeEntry(key string, n *ir.Node, level int) error {
	keyStr := e.color(n.Type, FieldColor, token.QuoteKey(key))
	switch n.Type {
	case ir.ObjectType:
		if err := e.writeLeading(n, level, true); err != nil {
			return err
		}
		if err := e.writeString(e.pad(level) + keyStr + " " + e.color(n.Type, SepColor, "{") + "\n"); err != nil {
			return err
		}
		if err := e.writeFields(n, level+1); err != nil {
			return err
		}
		return e.writeString(e.pad(level) + e.color(n.Type, SepColor, "}") + "\n")
	case ir.ArrayType:
		if e.inlineable(n) {
			if err := e.writeLeading(n, level, false); err != nil {
				return err
			}
			return e.writeString(e.pad(level) + keyStr + " = " + e.inlineArray(n) + e.lineComment(n) + "\n")
		}
		if err := e.writeLeading(n, level, true); err != nil {
			return err
		}
		if err := e.writeString(e.pad(level) + keyStr + " = " + e.color(n.Type, SepColor, "[") + "\n"); err != nil {
			return err
		}
		if err := e.writeElems(n, level+1); err != nil {
			return err
		}
		return e.writeString(e.pad(level) + e.color(n.Type, SepColor, "]") + "\n")
	default:
		if err := e.writeLeading(n, level, false); err != nil {
			return err
		}
		lit := e.color(n.Type, ValueColor, litRepr(n))
		return e.writeString(e.pad(level) + keyStr + " = " + lit + e.lineComment(n) + "\n")
	}
}

// writeElems renders the elements of a multi-line array, one per line,
// comma after every element but the last.
func (e *encoder) writeElems(n *ir.Node, level int) error {
	for i, elem := range n.Values {
		comma := ","
		if i == len(n.Values)-1 {
			comma = ""
		}
		switch elem.Type {
		case ir.ObjectType:
			if err := e.writeLeading(elem, level, true); err != nil {
				return err
			}
			if err := e.writeString(e.pad(level) + e.color(elem.Type, SepColor, "{") + "\n"); err != nil {
				return err
			}
			if err := e.writeFields(elem, level+1); err != nil {
				return err
			}
			if err := e.writeString(e.pad(level) + e.color(elem.Type, SepColor, "}") + comma + "\n"); err != nil {
				return err
			}
		case ir.ArrayType:
			if e.inlineable(elem) {
				if err := e.writeLeading(elem, level, false); err != nil {
					return err
				}
				if err := e.writeString(e.pad(level) + e.inlineArray(elem) + comma + e.lineComment(elem) + "\n"); err != nil {
					return err
				}
				continue
			}
			if err := e.writeLeading(elem, level, true); err != nil {
				return err
			}
			if err := e.writeString(e.pad(level) + e.color(elem.Type, SepColor, "[") + "\n"); err != nil {
				return err
			}
			if err := e.writeElems(elem, level+1); err != nil {
				return err
			}
			if err := e.writeString(e.pad(level) + e.color(elem.Type, SepColor, "]") + comma + "\n"); err != nil {
				return err
			}
		default:
			if err := e.writeLeading(elem, level, false); err != nil {
				return err
			}
			lit := e.color(elem.Type, ValueColor, litRepr(elem))
			if err := e.writeString(e.pad(level) + lit + comma + e.lineComment(elem) + "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// inlineable reports whether n renders on one line: at most inlineMax
// elements, all of them literals, none carrying comments that would
// need their own lines.
func (e *encoder) inlineable(n *ir.Node) bool {
	if len(n.Values) > inlineMax {
		return false
	}
	for _, v := range n.Values {
		if !v.Type.IsLeaf() {
			return false
		}
		if e.es.comments && (len(v.Comments) > 0 || v.LineComment != "") {
			return false
		}
	}
	return true
}

func (e *encoder) inlineArray(n *ir.Node) string {
	parts := make([]string, len(n.Values))
	for i, v := range n.Values {
		parts[i] = e.color(v.Type, ValueColor, litRepr(v))
	}
	return e.color(n.Type, SepColor, "[") + strings.Join(parts, ", ") + e.color(n.Type, SepColor, "]")
}

func litRepr(n *ir.Node) string {
	switch n.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		if n.Bool {
			return "true"
		}
		return "false"
	case ir.StringType:
		return token.Quote(n.String)
	case ir.NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		return floatRepr(*n.Float64)
	default:
		panic(fmt.Sprintf("litRepr on %s", n.Type))
	}
}

// floatRepr keeps floats re-parseable as floats: a value like 2.0 must
// not shorten to "2".
func floatRepr(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
