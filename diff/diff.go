// Package diff computes line-level differences between the normalized
// encodings of two parsed XResources files.
package diff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/taesko/xparser/encode"
	"github.com/taesko/xparser/ir"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Edit is one normalized statement line and how it changed.
type Edit struct {
	Op   Op
	Text string
}

// Files diffs the normalized statement lines of two parsed files.
func Files(from, to *ir.XFile) []Edit {
	return Lines(encode.Lines(from), encode.Lines(to))
}

// Lines diffs two line slices. Each distinct line is mapped to a rune
// so the character differ works at line granularity.
func Lines(from, to []string) []Edit {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var edits []Edit
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		case diffpatch.DiffEqual:
			op = OpEqual
		}
		for _, r := range d.Text {
			edits = append(edits, Edit{Op: op, Text: runeMap[r]})
		}
	}
	return edits
}

// mapLinesTo assigns each distinct line a private-use rune, reusing
// assignments across both inputs.
func mapLinesTo(lineMap map[string]rune, runeMap map[rune]string, lines []string) []rune {
	res := make([]rune, 0, len(lines))
	for _, l := range lines {
		r, ok := lineMap[l]
		if !ok {
			r = rune(0xE000 + len(lineMap))
			lineMap[l] = r
			runeMap[r] = l
		}
		res = append(res, r)
	}
	return res
}

// Format writes edits in a unified-ish form, one line per edit,
// optionally colored for terminals.
func Format(w io.Writer, edits []Edit, colored bool) error {
	del := func(s string, _ ...any) string { return s }
	ins := del
	if colored {
		del = color.RedString
		ins = color.GreenString
	}
	for _, e := range edits {
		var line string
		switch e.Op {
		case OpDelete:
			line = del("- " + e.Text)
		case OpInsert:
			line = ins("+ " + e.Text)
		default:
			line = "  " + e.Text
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
