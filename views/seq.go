package views

import "github.com/taesko/xparser/ir"

// IncludesView is a read-only sequence of include statements, in
// source order. Entries are the strings used in the include, not
// resolved paths.
type IncludesView struct {
	includes []*ir.Include
}

func (v *IncludesView) Len() int {
	return len(v.includes)
}

func (v *IncludesView) At(i int) string {
	return v.includes[i].File
}

func (v *IncludesView) Files() []string {
	files := make([]string, len(v.includes))
	for i, inc := range v.includes {
		files[i] = inc.File
	}
	return files
}

// CommentsView is a read-only sequence of whole-line comments, in
// source order, without the comment marker.
type CommentsView struct {
	comments []*ir.Comment
}

func (v *CommentsView) Len() int {
	return len(v.comments)
}

func (v *CommentsView) At(i int) string {
	return v.comments[i].Body
}

// EmptyLinesView is a read-only sequence of the 0-based numbers of
// blank lines.
type EmptyLinesView struct {
	lines []int
}

func (v *EmptyLinesView) Len() int {
	return len(v.lines)
}

// At returns the line number of the i-th blank line.
func (v *EmptyLinesView) At(i int) int {
	return v.lines[i]
}

func (v *EmptyLinesView) Lines() []int {
	lines := make([]int, len(v.lines))
	copy(lines, v.lines)
	return lines
}
