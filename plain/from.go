package plain

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/keiraomg0/ker-format/go-ker/ir"
)

// FromPlain converts plain Go data to a node.  *Map keeps key order,
// map[string]any is visited in sorted key order for determinism.
func FromPlain(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case json.Number:
		nv, err := numberValue(t)
		if err != nil {
			return nil, err
		}
		return FromPlain(nv)
	case []any:
		node := &ir.Node{Type: ir.ArrayType}
		for _, e := range t {
			elem, err := FromPlain(e)
			if err != nil {
				return nil, err
			}
			node.Values = append(node.Values, elem)
		}
		return node, nil
	case *Map:
		node := ir.NewObject()
		for _, k := range t.Keys() {
			ev, _ := t.Get(k)
			elem, err := FromPlain(ev)
			if err != nil {
				return nil, err
			}
			node.Set(k, elem)
		}
		return node, nil
	case map[string]any:
		node := ir.NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			elem, err := FromPlain(t[k])
			if err != nil {
				return nil, err
			}
			node.Set(k, elem)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a node", v)
	}
}

// FromDocument is FromPlain restricted to document roots: v must be a
// mapping, otherwise ErrTopLevel.
func FromDocument(v any) (*ir.Node, error) {
	switch v.(type) {
	case *Map, map[string]any:
		return FromPlain(v)
	default:
		return nil, ErrTopLevel
	}
}
