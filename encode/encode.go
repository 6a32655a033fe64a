package encode

import (
	"fmt"
	"io"
	"sort"

	"github.com/taesko/xparser/ir"
)

type EncState struct {
	comments bool
	resolve  bool

	Color func(ColorAttr, string) string
}

func noColor(_ ColorAttr, s string) string { return s }

// Encode writes f line by line in source order, whitespace normalized.
// Lines lost during parsing (overwritten duplicates, stripped inline
// comments, continuation tails) are omitted.
func Encode(f *ir.XFile, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{comments: true, Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	byLine := map[int]ir.XStatement{}
	for _, st := range f.Statements() {
		byLine[st.SourceLine()] = st
	}
	blank := map[int]bool{}
	for _, n := range f.EmptyLines {
		blank[n] = true
	}
	for line := 0; line < f.LineCount; line++ {
		st, ok := byLine[line]
		if !ok {
			if blank[line] {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			continue
		}
		if _, isComment := st.(*ir.Comment); isComment && !es.comments {
			continue
		}
		if _, err := io.WriteString(w, statementText(f, st, es)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the normalized text of f's resource, define and
// include statements in source-line order. Comments are excluded
// unless enabled with EncodeComments.
func Lines(f *ir.XFile, opts ...EncodeOption) []string {
	es := &EncState{Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	stmts := f.Statements()
	byLine := make(map[int]ir.XStatement, len(stmts))
	lineNums := make([]int, 0, len(stmts))
	for _, st := range stmts {
		if _, isComment := st.(*ir.Comment); isComment && !es.comments {
			continue
		}
		byLine[st.SourceLine()] = st
		lineNums = append(lineNums, st.SourceLine())
	}
	sort.Ints(lineNums)
	res := make([]string, 0, len(lineNums))
	for _, n := range lineNums {
		res = append(res, statementText(f, byLine[n], es))
	}
	return res
}

func statementText(f *ir.XFile, st ir.XStatement, es *EncState) string {
	switch s := st.(type) {
	case *ir.Statement:
		val := s.Value
		if es.resolve {
			if d, ok := f.Defines[val]; ok {
				val = d.Value
			}
		}
		return fmt.Sprintf("%s%s %s",
			es.Color(KeyColor, s.Key),
			es.Color(SepColor, ":"),
			es.Color(ValueColor, val))
	case *ir.Define:
		return fmt.Sprintf("%s %s %s",
			es.Color(DirectiveColor, "#define"),
			es.Color(SymbolColor, s.Name),
			es.Color(ValueColor, s.Value))
	case *ir.Include:
		return fmt.Sprintf("%s %s",
			es.Color(DirectiveColor, "#include"),
			es.Color(ValueColor, fmt.Sprintf("%q", s.File)))
	case *ir.Comment:
		return es.Color(CommentColor, "!"+s.Body)
	}
	return es.Color(ValueColor, st.Text())
}
