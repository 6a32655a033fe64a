package ir

import (
	"fmt"
	"strings"
)

// Binding is the separator preceding a path component. It is retained
// because it is significant to resource matching: '.' binds tightly,
// '*' loosely.
type Binding int

const (
	TightBinding Binding = iota
	LooseBinding
)

func (b Binding) String() string {
	if b == LooseBinding {
		return "*"
	}
	return "."
}

// Component is one segment of a resource path: a literal name or the
// single-level wildcard "?", together with its preceding binding.
type Component struct {
	Binding Binding
	Name    string
}

func (c Component) Wildcard() bool {
	return c.Name == "?"
}

// Path is an ordered sequence of components. A valid path has at least
// one component.
type Path struct {
	Components []Component
}

// ParsePath parses a resource key into a Path. Separators are '.'
// (tight) and '*' (loose); interior runs of separators collapse into
// one with loose winning, and a trailing separator is an error. A
// backslash escapes the
// structural characters '.', '*', '?', ':', '!' and '\\' inside a
// component name; the backslash is dropped and the character kept
// literally. The wildcard '?' delimits itself, so "a?b" reads as the
// three components a, ?, b. A key with no components is an error.
func ParsePath(s string) (*Path, error) {
	p := &Path{}
	binding := TightBinding
	pendingSep := false
	var name strings.Builder

	flush := func() {
		if name.Len() == 0 {
			return
		}
		p.Components = append(p.Components, Component{Binding: binding, Name: name.String()})
		name.Reset()
		binding = TightBinding
		pendingSep = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 < len(s) && isStructural(s[i+1]) {
				name.WriteByte(s[i+1])
				i++
				continue
			}
			name.WriteByte(c)
		case '.':
			flush()
			pendingSep = true
		case '*':
			flush()
			binding = LooseBinding
			pendingSep = true
		case '?':
			flush()
			name.WriteByte(c)
			flush()
		default:
			name.WriteByte(c)
		}
	}
	if pendingSep && name.Len() == 0 {
		return nil, fmt.Errorf("%w: trailing separator in %q", ErrPath, s)
	}
	flush()
	if len(p.Components) == 0 {
		return nil, fmt.Errorf("%w: empty path %q", ErrPath, s)
	}
	return p, nil
}

func isStructural(c byte) bool {
	switch c {
	case '.', '*', '?', '\\', ':', '!':
		return true
	}
	return false
}

// String reconstructs the path. A leading tight binding is implicit and
// not printed, so String is the normalized form of the original key.
func (p *Path) String() string {
	var b strings.Builder
	for i, c := range p.Components {
		if i > 0 || c.Binding == LooseBinding {
			b.WriteString(c.Binding.String())
		}
		b.WriteString(escapeName(c.Name))
	}
	return b.String()
}

func escapeName(name string) string {
	if name == "?" {
		return name
	}
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if isStructural(name[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// Equal reports character-for-character path equality, bindings
// included. It is not resource-manager pattern matching.
func (p *Path) Equal(q *Path) bool {
	if len(p.Components) != len(q.Components) {
		return false
	}
	for i, c := range p.Components {
		if c != q.Components[i] {
			return false
		}
	}
	return true
}
