package ir

import "fmt"

// XStatement is a parsed statement occupying a source line.
type XStatement interface {
	// SourceLine is the 0-based line the statement starts on.
	SourceLine() int
	// Text is the statement's normalized source text, without a
	// trailing newline.
	Text() string
}

// Statement is one resource assignment. It is immutable once built;
// the value is stored verbatim, with no escape processing and no
// definition substitution.
type Statement struct {
	// Key is the whitespace-trimmed key text as written in the source.
	Key   string
	Path  *Path
	Value string
	Line  int
}

func (s *Statement) SourceLine() int { return s.Line }

func (s *Statement) Text() string {
	return fmt.Sprintf("%s: %s", s.Key, s.Value)
}

func (s *Statement) String() string {
	return fmt.Sprintf("Statement(key=%s, value=%s, line=%d)", s.Key, s.Value, s.Line)
}

// Define is a symbolic definition: a name paired with a literal value.
type Define struct {
	Name  string
	Value string
	Line  int
}

func (d *Define) SourceLine() int { return d.Line }

func (d *Define) Text() string {
	return fmt.Sprintf("#define %s %s", d.Name, d.Value)
}

func (d *Define) String() string {
	return fmt.Sprintf("Define(name=%s, value=%s, line=%d)", d.Name, d.Value, d.Line)
}

// Comment is a whole-line comment; Body excludes the marker.
type Comment struct {
	Body string
	Line int
}

func (c *Comment) SourceLine() int { return c.Line }

func (c *Comment) Text() string {
	return "!" + c.Body
}

// Include records an include directive. File is the quoted string as
// written; it is never resolved or expanded.
type Include struct {
	File string
	Line int
}

func (i *Include) SourceLine() int { return i.Line }

func (i *Include) Text() string {
	return fmt.Sprintf("#include %q", i.File)
}
