// Package parse parses XResources text into an ir.XFile.
//
// # Usage
//
//	f, err := parse.Parse([]byte("*foreground: white\n"))
//	if err != nil {
//	    return err
//	}
//	st := f.Resources["*foreground"]
//
// Parsing is a single deterministic pass: the first malformed
// non-blank, non-comment line aborts it with an error wrapping
// [ErrParse] and carrying the line's position.
//
// # Related Packages
//
//   - github.com/taesko/xparser/ir - parsed representation
//   - github.com/taesko/xparser/views - read-only query layer
//   - github.com/taesko/xparser/token - line tokenization
package parse
