package plain

import (
	"errors"
	"testing"

	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/parse"

	"github.com/google/go-cmp/cmp"
)

func parseDoc(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	return node
}

func TestToPlain(t *testing.T) {
	root := parseDoc(t, `
name = "alice"
age = 30
ratio = 0.5
ok = true
nothing = null
tags = [1, "two"]
server {
    port = 8080
}
`)
	v := ToPlain(root)
	m, ok := v.(*Map)
	if !ok {
		t.Fatalf("got %T", v)
	}
	if got, _ := m.Get("name"); got != "alice" {
		t.Errorf("name: %v", got)
	}
	if got, _ := m.Get("age"); got != int64(30) {
		t.Errorf("age: %v", got)
	}
	if got, _ := m.Get("ratio"); got != 0.5 {
		t.Errorf("ratio: %v", got)
	}
	if got, _ := m.Get("ok"); got != true {
		t.Errorf("ok: %v", got)
	}
	if got, ok := m.Get("nothing"); !ok || got != nil {
		t.Errorf("nothing: %v %v", got, ok)
	}
	tags, _ := m.Get("tags")
	if diff := cmp.Diff([]any{int64(1), "two"}, tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
	srv, _ := m.Get("server")
	port, _ := srv.(*Map).Get("port")
	if port != int64(8080) {
		t.Errorf("port: %v", port)
	}
}

func TestPlainRoundTrip(t *testing.T) {
	root := parseDoc(t, `
b = true
a = 1
z = [1, 2, [3]]
m {
    y = "why"
    x = "ex"
}
`)
	back, err := FromPlain(ToPlain(root))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(root, back) != 0 {
		t.Error("round trip changed the document")
	}
	// insertion order survives
	if diff := cmp.Diff(root.Fields, back.Fields); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(root.Get("m").Fields, back.Get("m").Fields); diff != "" {
		t.Errorf("nested field order (-want +got):\n%s", diff)
	}
}

func TestFromPlainSortsGoMaps(t *testing.T) {
	node, err := FromPlain(map[string]any{"z": 1, "a": 2})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "z"}, node.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromDocumentTopLevel(t *testing.T) {
	if _, err := FromDocument([]any{1, 2}); !errors.Is(err, ErrTopLevel) {
		t.Errorf("array: %v", err)
	}
	if _, err := FromDocument("scalar"); !errors.Is(err, ErrTopLevel) {
		t.Errorf("scalar: %v", err)
	}
	if _, err := FromDocument(NewMap()); err != nil {
		t.Errorf("map: %v", err)
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	root := parseDoc(t, "z = 1\na = 2\nm {\n    k = [true, null]\n}\n")
	d, err := MarshalJSON(root, "")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":2,"m":{"k":[true,null]}}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	node, err := UnmarshalJSON([]byte(`{"b": 1, "a": [1.5, "x"], "o": {"n": null}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "o"}, node.Fields); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	b := node.Get("b")
	if b.Int64 == nil || *b.Int64 != 1 {
		t.Errorf("b: %v", b)
	}
	a := node.Get("a")
	if a.Values[0].Float64 == nil || *a.Values[0].Float64 != 1.5 {
		t.Errorf("a[0]: %v", a.Values[0])
	}
	if node.Get("o").Get("n").Type != ir.NullType {
		t.Error("o.n is not null")
	}
}

func TestUnmarshalJSONTopLevel(t *testing.T) {
	for _, in := range []string{`[1, 2]`, `"str"`, `42`, `null`, ``} {
		if _, err := UnmarshalJSON([]byte(in)); !errors.Is(err, ErrTopLevel) {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	root := parseDoc(t, "z = 1\na = \"two\"\nm {\n    k = [1, 2]\n    f = 1.5\n}\n")
	d, err := MarshalYAML(root)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatalf("unmarshal %q: %v", d, err)
	}
	if ir.Compare(root, back) != 0 {
		t.Errorf("round trip changed the document:\n%s", d)
	}
	if diff := cmp.Diff(root.Fields, back.Fields); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
}

func TestUnmarshalYAMLTopLevel(t *testing.T) {
	if _, err := UnmarshalYAML([]byte("- 1\n- 2\n")); !errors.Is(err, ErrTopLevel) {
		t.Errorf("sequence: %v", err)
	}
}

func TestMapSetOverwrite(t *testing.T) {
	m := NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Errorf("a: %v", v)
	}
	m.Delete("a")
	if diff := cmp.Diff([]string{"b"}, m.Keys()); diff != "" {
		t.Errorf("keys after delete (-want +got):\n%s", diff)
	}
}
