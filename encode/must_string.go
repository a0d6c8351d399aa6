package encode

import (
	"bytes"

	"github.com/keiraomg0/ker-format/go-ker/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
