package token

import "fmt"

type LineType int

const (
	LBlank LineType = iota
	LComment
	LResource
	LDefine
	LInclude
	LDirective
)

func (t LineType) String() string {
	return map[LineType]string{
		LBlank:     "LBlank",
		LComment:   "LComment",
		LResource:  "LResource",
		LDefine:    "LDefine",
		LInclude:   "LInclude",
		LDirective: "LDirective",
	}[t]
}

// Line is one classified logical line: physical lines joined over
// backslash continuations, with comments already stripped.
type Line struct {
	Type LineType
	// Text is the logical line after continuation joining, comment
	// stripping and whitespace trimming.
	Text string
	// Comment holds the text after the marker when the whole line is a
	// comment. Inline comments are stripped and not retained.
	Comment string
	Pos     *Pos
	// Span counts the physical lines the logical line occupies.
	Span int
}

func (l *Line) Info() string {
	return fmt.Sprintf("%s %s", l.Type, l.Pos.String())
}
