package parse

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether whole-line comments are recorded on
// the result. They are recorded by default; disabling this drops them
// (and with them exact full-text reconstruction).
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
