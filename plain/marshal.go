package plain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/keiraomg0/ker-format/go-ker/debug"
	"github.com/keiraomg0/ker-format/go-ker/ir"
)

// MarshalJSON renders n as JSON.  indent == "" gives compact output.
func MarshalJSON(n *ir.Node, indent string) ([]byte, error) {
	v := ToPlain(n)
	if indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", indent)
}

// UnmarshalJSON parses JSON into a document root.  The top-level value
// must be an object.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	trimmed := bytes.TrimLeft(d, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrTopLevel
	}
	m := NewMap()
	if err := json.Unmarshal(d, m); err != nil {
		return nil, err
	}
	if debug.Plain() {
		debug.Logf("unmarshal json: %d top-level keys\n", m.Len())
	}
	return FromPlain(m)
}

// MarshalYAML renders n as YAML, preserving key order via yaml.MapSlice.
func MarshalYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(ToPlain(n)))
}

// UnmarshalYAML parses YAML into a document root.  The top-level value
// must be a mapping.
func UnmarshalYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	pv, err := fromYAMLValue(v)
	if err != nil {
		return nil, err
	}
	return FromDocument(pv)
}

func toYAMLValue(v any) any {
	switch t := v.(type) {
	case *Map:
		ms := make(yaml.MapSlice, 0, t.Len())
		for _, k := range t.Keys() {
			ev, _ := t.Get(k)
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAMLValue(ev)})
		}
		return ms
	case []any:
		res := make([]any, len(t))
		for i, e := range t {
			res[i] = toYAMLValue(e)
		}
		return res
	default:
		return v
	}
}

func fromYAMLValue(v any) (any, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := NewMap()
		for _, item := range t {
			k, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			ev, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, ev)
		}
		return m, nil
	case []any:
		res := make([]any, len(t))
		for i, e := range t {
			ev, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	case int:
		return int64(t), nil
	default:
		return v, nil
	}
}
