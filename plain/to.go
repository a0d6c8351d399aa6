package plain

import (
	"fmt"

	"github.com/keiraomg0/ker-format/go-ker/ir"
)

// ToPlain converts n to plain Go data.  Objects become *Map, arrays
// []any, numbers int64 or float64 according to how they were written.
func ToPlain(n *ir.Node) any {
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		return *n.Float64
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToPlain(v)
		}
		return res
	case ir.ObjectType:
		m := NewMap()
		for i, f := range n.Fields {
			m.Set(f, ToPlain(n.Values[i]))
		}
		return m
	default:
		panic(fmt.Sprintf("invalid node type %s", n.Type))
	}
}

// ToDocument is ToPlain restricted to document roots: v must be an
// Object, otherwise ErrTopLevel.
func ToDocument(n *ir.Node) (*Map, error) {
	if n.Type != ir.ObjectType {
		return nil, ErrTopLevel
	}
	return ToPlain(n).(*Map), nil
}
