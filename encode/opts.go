package encode

type EncodeOption func(*EncState)

// Indent sets the string repeated per nesting level when pretty printing.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// Newline sets the string written between elements.
func Newline(s string) EncodeOption {
	return func(es *EncState) { es.newline = s }
}

// Space sets the string written after object key separators.
func Space(s string) EncodeOption {
	return func(es *EncState) { es.space = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Pretty is shorthand for the usual human-readable settings.
func Pretty() EncodeOption {
	return func(es *EncState) {
		es.indent = "  "
		es.newline = "\n"
		es.space = " "
	}
}
