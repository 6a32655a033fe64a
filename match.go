package xparser

import (
	"fmt"

	"github.com/taesko/xparser/ir"
)

// Match reports whether two resource identifiers match under wildcard
// semantics: a '*' on either side expands to as many single-level
// wildcards as needed to equalize component counts, and '?' matches
// any one component. A wildcard cannot be the final component of
// either identifier, since attributes cannot be named by wildcards.
//
//	Match("comp_a.*.comp_d.attribute", "comp_a.*.attribute") // true
//	Match("comp_a.?.?.comp_d.attribute", "comp_a.*.attribute") // true
func Match(pattern, key string) (bool, error) {
	p, err := parseMatchArg(pattern)
	if err != nil {
		return false, err
	}
	k, err := parseMatchArg(key)
	if err != nil {
		return false, err
	}
	return k.Matches(p), nil
}

func parseMatchArg(s string) (*ir.Path, error) {
	p, err := ir.ParsePath(s)
	if err != nil {
		return nil, err
	}
	if p.Components[len(p.Components)-1].Wildcard() {
		return nil, fmt.Errorf("%w: wildcard cannot name an attribute in %q", ir.ErrPath, s)
	}
	return p, nil
}
