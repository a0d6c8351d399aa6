package token

// Tokenize materializes the whole token stream for d, ending with the
// TEOF sentinel.  The one-token lookahead the parser needs for inline
// comment association is trivial over a slice.
func Tokenize(d []byte) ([]Token, error) {
	tk := NewTokenizer(d)
	var toks []Token
	for {
		t, err := tk.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Type == TEOF {
			return toks, nil
		}
	}
}
