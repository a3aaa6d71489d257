package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors enables colored output using c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
