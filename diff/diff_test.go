package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taesko/xparser/parse"
)

func TestFiles(t *testing.T) {
	from, err := parse.ParseString("*color0: black\n*foreground: white\n")
	if err != nil {
		t.Fatal(err)
	}
	to, err := parse.ParseString("*color0: grey\n*foreground: white\n")
	if err != nil {
		t.Fatal(err)
	}
	edits := Files(from, to)
	var dels, inss, eqs []string
	for _, e := range edits {
		switch e.Op {
		case OpDelete:
			dels = append(dels, e.Text)
		case OpInsert:
			inss = append(inss, e.Text)
		case OpEqual:
			eqs = append(eqs, e.Text)
		}
	}
	if len(dels) != 1 || dels[0] != "*color0: black" {
		t.Errorf("deletes = %v", dels)
	}
	if len(inss) != 1 || inss[0] != "*color0: grey" {
		t.Errorf("inserts = %v", inss)
	}
	if len(eqs) != 1 || eqs[0] != "*foreground: white" {
		t.Errorf("equals = %v", eqs)
	}
}

func TestFilesEqual(t *testing.T) {
	a, err := parse.ParseString("*a: 1\n*b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString("! reordered whitespace\n*a:    1\n\n*b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range Files(a, b) {
		if e.Op != OpEqual {
			t.Errorf("normalized files differ: %+v", e)
		}
	}
}

func TestFormat(t *testing.T) {
	edits := []Edit{
		{Op: OpEqual, Text: "*a: 1"},
		{Op: OpDelete, Text: "*b: 2"},
		{Op: OpInsert, Text: "*b: 3"},
	}
	var buf bytes.Buffer
	if err := Format(&buf, edits, false); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{"  *a: 1", "- *b: 2", "+ *b: 3", ""}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Format:\n%q\nwant:\n%q", got, want)
	}
}
