package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/taesko/xparser/ir"
	"github.com/taesko/xparser/token"
)

// Parse tokenizes d and builds the resource and definition tables in
// source order, later statements overwriting earlier ones with the
// same key. It holds no state between calls.
func Parse(d []byte, opts ...ParseOption) (*ir.XFile, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	file := ir.NewXFile()
	sc := token.NewScanner(d)
	for {
		l, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch l.Type {
		case token.LBlank:
			file.EmptyLines = append(file.EmptyLines, l.Pos.Line)
		case token.LComment:
			if pOpts.comments {
				file.Comments = append(file.Comments, &ir.Comment{Body: l.Comment, Line: l.Pos.Line})
			}
		case token.LResource:
			st, err := parseResource(l)
			if err != nil {
				return nil, err
			}
			file.PutResource(st)
		case token.LDefine:
			def, err := parseDefine(l)
			if err != nil {
				return nil, err
			}
			file.PutDefine(def)
		case token.LInclude:
			inc, err := parseInclude(l)
			if err != nil {
				return nil, err
			}
			file.Includes = append(file.Includes, inc)
		case token.LDirective:
			word := strings.Fields(l.Text)[0]
			return nil, NewParseErr(fmt.Errorf("%w: %s", ErrUnknownDirective, word), l.Pos)
		}
	}
	file.LineCount = sc.Lines()
	return file, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.XFile, error) {
	return Parse([]byte(s), opts...)
}

// parseResource splits a resource line at the first unescaped ':' into
// key and value. The value is trimmed but otherwise verbatim.
func parseResource(l *token.Line) (*ir.Statement, error) {
	sep := sepIndex(l.Text)
	if sep == -1 {
		return nil, NewParseErr(fmt.Errorf("%w: no ':' separator", ErrMalformedResource), l.Pos)
	}
	key := strings.TrimSpace(l.Text[:sep])
	if key == "" {
		return nil, NewParseErr(fmt.Errorf("%w: empty key", ErrMalformedResource), l.Pos)
	}
	path, err := ir.ParsePath(key)
	if err != nil {
		return nil, NewParseErr(fmt.Errorf("%w: %w", ErrMalformedResource, err), l.Pos)
	}
	return &ir.Statement{
		Key:   key,
		Path:  path,
		Value: strings.TrimSpace(l.Text[sep+1:]),
		Line:  l.Pos.Line,
	}, nil
}

// sepIndex returns the index of the first ':' not escaped by a
// backslash, or -1.
func sepIndex(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ':':
			return i
		}
	}
	return -1
}

// parseDefine expects "#define <symbol> <value>", splitting on the
// first whitespace run after the symbol.
func parseDefine(l *token.Line) (*ir.Define, error) {
	rest := strings.TrimSpace(l.Text[len("#define"):])
	sep := strings.IndexAny(rest, " \t")
	if rest == "" || sep == -1 {
		return nil, NewParseErr(fmt.Errorf("%w: want '#define <symbol> <value>'", ErrMalformedDefine), l.Pos)
	}
	return &ir.Define{
		Name:  rest[:sep],
		Value: strings.TrimSpace(rest[sep:]),
		Line:  l.Pos.Line,
	}, nil
}

// parseInclude expects "#include \"file\"". The file string is
// recorded as written, never resolved.
func parseInclude(l *token.Line) (*ir.Include, error) {
	rest := strings.TrimSpace(l.Text[len("#include"):])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return nil, NewParseErr(fmt.Errorf("%w: want '#include \"file\"'", ErrMalformedInclude), l.Pos)
	}
	return &ir.Include{
		File: rest[1 : len(rest)-1],
		Line: l.Pos.Line,
	}, nil
}
