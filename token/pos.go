package token

import "fmt"

// Pos is a 1-based line/column position in the input text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func (p Pos) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}
