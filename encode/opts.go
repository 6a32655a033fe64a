package encode

type EncodeOption func(*EncState)

// EncodeComments controls whether comment lines are emitted.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeResolve substitutes definition values into resource values
// while encoding. The backing file is not modified.
func EncodeResolve(v bool) EncodeOption {
	return func(es *EncState) { es.resolve = v }
}

// EncodeColors renders with the given color table.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
