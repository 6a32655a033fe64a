package token

import (
	"io"
	"testing"
)

type scanTest struct {
	in    string
	types []LineType
	texts []string
}

func TestScanClassify(t *testing.T) {
	tests := []scanTest{
		{
			in:    "*foreground: white\n",
			types: []LineType{LResource},
			texts: []string{"*foreground: white"},
		},
		{
			in:    "#define white #FFFFFF\n",
			types: []LineType{LDefine},
			texts: []string{"#define white #FFFFFF"},
		},
		{
			in:    "#include \"colors\"\n",
			types: []LineType{LInclude},
			texts: []string{"#include \"colors\""},
		},
		{
			in:    "#ifdef COLOR\n",
			types: []LineType{LDirective},
			texts: []string{"#ifdef COLOR"},
		},
		{
			in:    "! a comment\n\n",
			types: []LineType{LComment, LBlank},
			texts: []string{"", ""},
		},
		{
			in:    "   \t\n",
			types: []LineType{LBlank},
			texts: []string{""},
		},
		{
			// inline comment stripped, line stays a resource
			in:    "*bg: black ! night mode\n",
			types: []LineType{LResource},
			texts: []string{"*bg: black"},
		},
		{
			// escaped marker is a literal '!'
			in:    "*prompt: hello\\!\n",
			types: []LineType{LResource},
			texts: []string{"*prompt: hello!"},
		},
		{
			// continuation joins physical lines
			in:    "*font: -misc-\\\nfixed\n",
			types: []LineType{LResource},
			texts: []string{"*font: -misc-fixed"},
		},
		{
			// escaped backslash at end of line does not continue
			in:    "*sep: \\\\\n*x: 1\n",
			types: []LineType{LResource, LResource},
			texts: []string{"*sep: \\\\", "*x: 1"},
		},
		{
			// no trailing newline
			in:    "*x: 1",
			types: []LineType{LResource},
			texts: []string{"*x: 1"},
		},
	}
	for _, tc := range tests {
		lines, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tc.in, err)
		}
		if len(lines) != len(tc.types) {
			t.Fatalf("Tokenize(%q): got %d lines, want %d", tc.in, len(lines), len(tc.types))
		}
		for i, l := range lines {
			if l.Type != tc.types[i] {
				t.Errorf("Tokenize(%q) line %d: got %s, want %s", tc.in, i, l.Type, tc.types[i])
			}
			if tc.texts[i] != "" && l.Text != tc.texts[i] {
				t.Errorf("Tokenize(%q) line %d: got text %q, want %q", tc.in, i, l.Text, tc.texts[i])
			}
		}
	}
}

func TestScanComment(t *testing.T) {
	lines, err := Tokenize(nil, []byte("! note \n*x: 1 ! inline\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Comment != " note " {
		t.Errorf("got comment %q, want %q", lines[0].Comment, " note ")
	}
	if lines[1].Comment != "" {
		t.Errorf("inline comment retained: %q", lines[1].Comment)
	}
}

func TestScanPositions(t *testing.T) {
	src := "! c\n*a: 1\n*b: x \\\ny\n*c: 3\n"
	lines, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	wantLines := []int{0, 1, 2, 4}
	wantSpans := []int{1, 1, 2, 1}
	if len(lines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d", len(lines), len(wantLines))
	}
	for i, l := range lines {
		if l.Pos.Line != wantLines[i] {
			t.Errorf("line %d: got pos %d, want %d", i, l.Pos.Line, wantLines[i])
		}
		if l.Span != wantSpans[i] {
			t.Errorf("line %d: got span %d, want %d", i, l.Span, wantSpans[i])
		}
	}
}

func TestScannerRestart(t *testing.T) {
	sc := NewScanner([]byte("*a: 1\n*b: 2\n"))
	first, err := sc.Next()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := sc.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	if got := sc.Lines(); got != 2 {
		t.Errorf("Lines() = %d, want 2", got)
	}
	sc.Reset()
	again, err := sc.Next()
	if err != nil {
		t.Fatal(err)
	}
	if first.Text != again.Text || first.Pos.Line != again.Pos.Line {
		t.Errorf("restart: got %q at %d, want %q at %d",
			again.Text, again.Pos.Line, first.Text, first.Pos.Line)
	}
}
