package ir

import (
	"maps"
	"slices"

	"github.com/keiraomg0/ker-format/go-ker/token"
)

// Node is one unit of a .ker document.  The payload in use is determined
// by Type: Fields/Values for objects, Values for arrays, one of
// String/Int64/Float64/Bool for literals.
//
// Comments holds the comment lines appearing immediately before the node;
// LineComment holds a trailing comment on the node's own source line.
// Pos is the position of the node's key (statements) or value start, and
// is nil on synthetic nodes built from plain values.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64

	Comments    []string
	LineComment string
	Pos         *token.Pos
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an Object from a Go map; keys are sorted since Go map
// iteration order is unspecified.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// Get returns the value for field, or nil.  The receiver must be an
// Object.
func (y *Node) Get(field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set inserts or overwrites a field.  An overwrite replaces the value in
// place, so the key keeps its original position in the field order.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Len returns the number of fields (Object) or elements (Array).
func (y *Node) Len() int {
	return len(y.Values)
}

// Visit walks the tree pre- and post-order.  f's dive result controls
// descent into child values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	y.CloneTo(res)
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Comments != nil {
		dst.Comments = slices.Clone(y.Comments)
	}
	dst.LineComment = y.LineComment
	if y.Pos != nil {
		p := *y.Pos
		dst.Pos = &p
	}
	return dst
}
