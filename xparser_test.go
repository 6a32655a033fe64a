package xparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taesko/xparser/parse"
	"github.com/taesko/xparser/views"
)

func TestParse(t *testing.T) {
	view, err := Parse(`#define white #FFFFFF
*foreground: white
`)
	if err != nil {
		t.Fatal(err)
	}
	def, err := view.Definitions.Get("white")
	if err != nil {
		t.Fatal(err)
	}
	if def != "#FFFFFF" {
		t.Errorf("definitions[white] = %q, want %q", def, "#FFFFFF")
	}
	raw, err := view.Resources.Get("*foreground")
	if err != nil {
		t.Fatal(err)
	}
	if raw != "white" {
		t.Errorf("resources[*foreground] = %q, want %q", raw, "white")
	}
	st, err := view.Resources.XStatement("*foreground")
	if err != nil {
		t.Fatal(err)
	}
	if st.Value != "white" {
		t.Errorf("statement value = %q, want %q", st.Value, "white")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("*foreground white\n"); !errors.Is(err, parse.ErrMalformedResource) {
		t.Errorf("got %v, want ErrMalformedResource", err)
	}
	if _, err := Parse("#define white\n"); !errors.Is(err, parse.ErrMalformedDefine) {
		t.Errorf("got %v, want ErrMalformedDefine", err)
	}
}

func TestParseCommentOnly(t *testing.T) {
	view, err := Parse("! a comment\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if view.Resources.Len() != 0 || view.Definitions.Len() != 0 {
		t.Errorf("comment-only input produced entries: %v %v",
			view.Resources.Keys(), view.Definitions.Names())
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Xresources")
	if err := os.WriteFile(path, []byte("*color0: black\n"), 0644); err != nil {
		t.Fatal(err)
	}
	view, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := view.Resources.Get("*color0")
	if err != nil {
		t.Fatal(err)
	}
	if got != "black" {
		t.Errorf("resources[*color0] = %q, want %q", got, "black")
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("missing file did not error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want wrapped os.ErrNotExist", err)
	}
}

// A single view is shared safely by concurrent readers.
func TestConcurrentReads(t *testing.T) {
	view, err := Parse(`#define white #FFFFFF
*foreground: white
URxvt*color0: black
`)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if _, err := view.Resources.Resolve("*foreground"); err != nil {
					done <- err
					return
				}
				if _, err := view.Resources.Filter("*color0"); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	view, err := Parse("*foreground: white\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := view.Resources.Get("*background"); !errors.Is(err, views.ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
	// a failed lookup leaves the view usable
	if got, err := view.Resources.Get("*foreground"); err != nil || got != "white" {
		t.Errorf("Get after miss = %q, %v", got, err)
	}
}
