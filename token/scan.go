package token

import (
	"io"
	"strings"
)

const (
	// CommentStart begins a comment anywhere on a line unless escaped
	// with a backslash.
	CommentStart = '!'
	// DirectiveStart begins a preprocessor-style directive line.
	DirectiveStart = '#'

	defineKeyword  = "#define"
	includeKeyword = "#include"
)

// Scanner produces classified logical lines one at a time. It is
// restartable: Reset rewinds it to the beginning of the source.
type Scanner struct {
	src  []byte
	off  int
	line int
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) Reset() {
	s.off = 0
	s.line = 0
}

// Lines reports the number of physical lines consumed so far. After
// Next has returned io.EOF it is the line count of the source.
func (s *Scanner) Lines() int {
	return s.line
}

// Next returns the next logical line. Physical lines ending in an
// unescaped backslash are joined with their successors before comment
// stripping and classification. Next returns io.EOF when the source is
// exhausted; it reports no other errors, malformed content is left to
// the statement parser.
func (s *Scanner) Next() (*Line, error) {
	if s.off >= len(s.src) {
		return nil, io.EOF
	}
	startLine := s.line
	var raw strings.Builder
	for {
		phys := s.physical()
		if !endsInContinuation(phys) {
			raw.WriteString(phys)
			break
		}
		raw.WriteString(phys[:len(phys)-1])
		if s.off >= len(s.src) {
			break
		}
	}
	logical := raw.String()
	pos := &Pos{Line: startLine, Raw: logical}
	span := s.line - startLine

	stripped, comment, wholeLine := stripComment(logical)
	text := strings.TrimSpace(stripped)

	l := &Line{Text: text, Pos: pos, Span: span}
	switch {
	case wholeLine:
		l.Type = LComment
		l.Comment = comment
	case text == "":
		l.Type = LBlank
	case text[0] == DirectiveStart:
		l.Type = directiveType(text)
	default:
		l.Type = LResource
	}
	return l, nil
}

// physical consumes one physical line, without its newline.
func (s *Scanner) physical() string {
	start := s.off
	for s.off < len(s.src) && s.src[s.off] != '\n' {
		s.off++
	}
	line := string(s.src[start:s.off])
	if s.off < len(s.src) {
		s.off++ // consume '\n'
	}
	s.line++
	return line
}

// endsInContinuation reports whether the line ends in an odd run of
// backslashes, the last of which marks a continuation.
func endsInContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// stripComment removes an unescaped comment marker and everything after
// it. An escaped marker `\!` becomes a literal '!'. When only
// whitespace precedes the marker the whole line is a comment and the
// text after the marker is returned.
func stripComment(line string) (stripped, comment string, wholeLine bool) {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == CommentStart {
			b.WriteByte(CommentStart)
			i++
			continue
		}
		if c == CommentStart {
			if strings.TrimSpace(b.String()) == "" {
				return "", line[i+1:], true
			}
			return b.String(), "", false
		}
		b.WriteByte(c)
	}
	return b.String(), "", false
}

func directiveType(text string) LineType {
	switch {
	case keywordAt(text, defineKeyword):
		return LDefine
	case keywordAt(text, includeKeyword):
		return LInclude
	}
	return LDirective
}

func keywordAt(text, kw string) bool {
	if !strings.HasPrefix(text, kw) {
		return false
	}
	return len(text) == len(kw) || text[len(kw)] == ' ' || text[len(kw)] == '\t'
}

// Tokenize scans src eagerly, appending every logical line to dst.
func Tokenize(dst []Line, src []byte) ([]Line, error) {
	sc := NewScanner(src)
	for {
		l, err := sc.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *l)
	}
}
