package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/parse"

	"github.com/google/go-cmp/cmp"
)

type encTest struct {
	name string
	in   string
	want string
}

func TestEncodeCanonical(t *testing.T) {
	tests := []encTest{
		{
			name: "literals",
			in:   `name="alice"  age =30   ok=true  nothing = null  ratio=0.5`,
			want: "name = \"alice\"\nage = 30\nok = true\nnothing = null\nratio = 0.5\n",
		},
		{
			name: "keyword normalization",
			in:   "a = True\nb = False\nc = None\n",
			want: "a = true\nb = false\nc = null\n",
		},
		{
			name: "block",
			in:   "server { host = \"localhost\", port = 8080 }",
			want: "server {\n    host = \"localhost\"\n    port = 8080\n}\n",
		},
		{
			name: "nested block",
			in:   "a { b { c = 1 } }",
			want: "a {\n    b {\n        c = 1\n    }\n}\n",
		},
		{
			name: "colon and equals blocks normalize",
			in:   "a : { x = 1 }\nb = { y = 2 }\n",
			want: "a {\n    x = 1\n}\nb {\n    y = 2\n}\n",
		},
		{
			name: "inline array at threshold",
			in:   "xs = [1, 2, 3, 4, 5]",
			want: "xs = [1, 2, 3, 4, 5]\n",
		},
		{
			name: "block array past threshold",
			in:   "xs = [1, 2, 3, 4, 5, 6]",
			want: "xs = [\n    1,\n    2,\n    3,\n    4,\n    5,\n    6\n]\n",
		},
		{
			name: "empty array",
			in:   "xs = []",
			want: "xs = []\n",
		},
		{
			name: "mixed literal array stays inline",
			in:   "xs = [1, \"two\", true, null]",
			want: "xs = [1, \"two\", true, null]\n",
		},
		{
			name: "nested array forces block",
			in:   "xs = [1, [2]]",
			want: "xs = [\n    1,\n    [2]\n]\n",
		},
		{
			name: "object element",
			in:   "xs = [{ a = 1 }]",
			want: "xs = [\n    {\n        a = 1\n    }\n]\n",
		},
		{
			name: "quoted keys",
			in:   "\"two words\" = 1\n\"0day\" = 2\nplain = 3\n",
			want: "\"two words\" = 1\n\"0day\" = 2\nplain = 3\n",
		},
		{
			name: "keyword-spelled keys stay quoted",
			in:   "\"true\" = 1\n\"None\" = 2\n\"false\" = 3\n",
			want: "\"true\" = 1\n\"None\" = 2\n\"false\" = 3\n",
		},
		{
			name: "string escapes",
			in:   "s = \"line\\nbreak \\\"q\\\"\"",
			want: "s = \"line\\nbreak \\\"q\\\"\"\n",
		},
		{
			name: "float stays float",
			in:   "f = 2.0",
			want: "f = 2.0\n",
		},
		{
			name: "exponent",
			in:   "f = 1e10",
			want: "f = 1e+10\n",
		},
		{
			name: "duplicate keys collapse",
			in:   "a = 1\na = 2\n",
			want: "a = 2\n",
		},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			node, err := parse.Parse([]byte(tst.in))
			if err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			if err := Encode(node, buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tst.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeComments(t *testing.T) {
	in := `# header
# more header
name = "alice"  # inline
server {
    # inner
    port = 8080
}
xs = [
    # elem comment
    1,
    2
]
`
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	want := `# header
# more header
name = "alice"  # inline
server {
    # inner
    port = 8080
}
xs = [
    # elem comment
    1,
    2
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeNoComments(t *testing.T) {
	node, err := parse.Parse([]byte("# gone\na = 1  # also gone\n"))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeComments(false)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a = 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeIndentOption(t *testing.T) {
	node, err := parse.Parse([]byte("a { b = 1 }"))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a {\n  b = 1\n}\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeIdempotent(t *testing.T) {
	docs := []string{
		"# c\na = 1  # t\nb { x = [1, 2, 3, 4, 5, 6] }\n",
		"xs = [\n    # e\n    1,\n]\n",
		"m { \"k 1\" = null }",
		"a { b = 1 }  # one line block",
		"\"true\" = 1\n\"False\" = 2\n\"null\" = 3\n",
	}
	for _, in := range docs {
		node, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		first := MustString(node)
		node2, err := parse.Parse([]byte(first))
		if err != nil {
			t.Fatalf("reparse %q: %v", first, err)
		}
		second := MustString(node2)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%q not idempotent (-first +second):\n%s", in, diff)
		}
	}
}

func TestEncodeTopLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(ir.FromInt(1), buf)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeColorsPlumbed(t *testing.T) {
	node, err := parse.Parse([]byte("a = 1"))
	if err != nil {
		t.Fatal(err)
	}
	var seen []ColorAttr
	buf := bytes.NewBuffer(nil)
	err = Encode(node, buf, func(s *EncState) {
		s.Color = func(t ir.Type, a ColorAttr, v string) string {
			seen = append(seen, a)
			return v
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a = 1\n" {
		t.Errorf("colored output changed text: %q", buf.String())
	}
	if len(seen) == 0 {
		t.Error("color function never called")
	}
}
