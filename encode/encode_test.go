package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/taesko/xparser/parse"
)

const theme = `! theme
#define white #FFFFFF

*foreground:   white
URxvt*color0:black
`

func TestEncode(t *testing.T) {
	f, err := parse.ParseString(theme)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(f, &buf); err != nil {
		t.Fatal(err)
	}
	want := `! theme
#define white #FFFFFF

*foreground: white
URxvt*color0: black
`
	if got := buf.String(); got != want {
		t.Errorf("Encode:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeNoComments(t *testing.T) {
	f, err := parse.ParseString(theme)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(f, &buf, EncodeComments(false)); err != nil {
		t.Fatal(err)
	}
	want := `#define white #FFFFFF

*foreground: white
URxvt*color0: black
`
	if got := buf.String(); got != want {
		t.Errorf("Encode:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeResolve(t *testing.T) {
	f, err := parse.ParseString(theme)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(f, &buf, EncodeComments(false), EncodeResolve(true)); err != nil {
		t.Fatal(err)
	}
	want := `#define white #FFFFFF

*foreground: #FFFFFF
URxvt*color0: black
`
	if got := buf.String(); got != want {
		t.Errorf("Encode:\n%q\nwant:\n%q", got, want)
	}
	// resolution is derived output only
	if f.Resources["*foreground"].Value != "white" {
		t.Error("EncodeResolve rewrote the stored value")
	}
}

func TestLines(t *testing.T) {
	f, err := parse.ParseString(theme)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"#define white #FFFFFF",
		"*foreground: white",
		"URxvt*color0: black",
	}
	if diff := cmp.Diff(want, Lines(f)); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}
