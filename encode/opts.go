package encode

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
