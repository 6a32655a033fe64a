package views

import (
	"fmt"
	"strings"

	"github.com/taesko/xparser/ir"
)

// XFileView is the parsed-file handle handed to callers. It owns
// nothing mutable: every accessor is a derived read over the finished
// ir.XFile.
type XFileView struct {
	Resources   *ResourcesView
	Definitions *DefinitionsView
	Includes    *IncludesView
	Comments    *CommentsView
	EmptyLines  *EmptyLinesView

	file   *ir.XFile
	byLine map[int]ir.XStatement
	blank  map[int]bool
}

func NewXFileView(f *ir.XFile) *XFileView {
	defs := NewDefinitionsView(f.Defines, f.DefineOrder)
	v := &XFileView{
		Resources:   NewResourcesView(f.Resources, f.ResourceOrder, defs),
		Definitions: defs,
		Includes:    &IncludesView{includes: f.Includes},
		Comments:    &CommentsView{comments: f.Comments},
		EmptyLines:  &EmptyLinesView{lines: f.EmptyLines},
		file:        f,
		byLine:      map[int]ir.XStatement{},
		blank:       map[int]bool{},
	}
	for _, st := range f.Statements() {
		v.byLine[st.SourceLine()] = st
	}
	for _, n := range f.EmptyLines {
		v.blank[n] = true
	}
	return v
}

func (v *XFileView) File() *ir.XFile {
	return v.file
}

// LineCount returns the number of physical lines in the source.
func (v *XFileView) LineCount() int {
	return v.file.LineCount
}

// StatementAt returns the statement starting at the 0-based line.
// Blank lines, continuation tails and lines holding overwritten
// duplicate statements own no statement.
func (v *XFileView) StatementAt(line int) (ir.XStatement, error) {
	st, ok := v.byLine[line]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrNoLine, line)
	}
	return st, nil
}

// TextAt returns the normalized text of the given line: the statement
// text for statement lines and "" for blank lines.
func (v *XFileView) TextAt(line int) (string, error) {
	if st, ok := v.byLine[line]; ok {
		return st.Text(), nil
	}
	if v.blank[line] {
		return "", nil
	}
	return "", fmt.Errorf("%w %d", ErrNoLine, line)
}

// FullText rebuilds the file from its parsed statements, whitespace
// normalized. Lines lost to overwritten duplicates or stripped inline
// comments are omitted.
func (v *XFileView) FullText() string {
	var b strings.Builder
	for line := 0; line < v.file.LineCount; line++ {
		text, err := v.TextAt(line)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}
