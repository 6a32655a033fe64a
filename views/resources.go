package views

import (
	"fmt"

	"github.com/taesko/xparser/ir"
)

// ResourcesView is a read-only mapping of resource keys to statements.
type ResourcesView struct {
	statements map[string]*ir.Statement
	order      []string
	defs       *DefinitionsView
}

func NewResourcesView(statements map[string]*ir.Statement, order []string, defs *DefinitionsView) *ResourcesView {
	return &ResourcesView{statements: statements, order: order, defs: defs}
}

// Get returns the raw value for an exact key match. Values are never
// substituted through definitions here; see Resolve.
func (v *ResourcesView) Get(key string) (string, error) {
	st, err := v.XStatement(key)
	if err != nil {
		return "", err
	}
	return st.Value, nil
}

// Resolve returns the value for key with one level of definition
// substitution: if the raw value names a definition, the definition's
// literal value is returned instead. The substitution is computed on
// read; stored statements are never rewritten.
func (v *ResourcesView) Resolve(key string) (string, error) {
	raw, err := v.Get(key)
	if err != nil {
		return "", err
	}
	if v.defs != nil {
		if val, err := v.defs.Get(raw); err == nil {
			return val, nil
		}
	}
	return raw, nil
}

// XStatement returns the structured statement (path plus raw value)
// for an exact key match.
func (v *ResourcesView) XStatement(key string) (*ir.Statement, error) {
	st, ok := v.statements[key]
	if !ok {
		return nil, fmt.Errorf("%w: resource %q", ErrKeyNotFound, key)
	}
	return st, nil
}

// Lookup returns the statement whose path is component-for-component
// equal to p. This is exact structural equality, not resource-manager
// pattern matching.
func (v *ResourcesView) Lookup(p *ir.Path) (*ir.Statement, error) {
	for _, key := range v.order {
		if st := v.statements[key]; st.Path.Equal(p) {
			return st, nil
		}
	}
	return nil, fmt.Errorf("%w: path %q", ErrKeyNotFound, p.String())
}

func (v *ResourcesView) Has(key string) bool {
	_, ok := v.statements[key]
	return ok
}

// Keys returns the resource keys in first-insertion order.
func (v *ResourcesView) Keys() []string {
	keys := make([]string, len(v.order))
	copy(keys, v.order)
	return keys
}

func (v *ResourcesView) Len() int {
	return len(v.statements)
}

// Filter returns a view reduced to the resources whose key matches
// pattern under wildcard semantics ('*' expands over components, '?'
// matches one). A wildcard cannot be the pattern's final component.
func (v *ResourcesView) Filter(pattern string) (*ResourcesView, error) {
	pat, err := ir.ParsePath(pattern)
	if err != nil {
		return nil, err
	}
	if pat.Components[len(pat.Components)-1].Wildcard() {
		return nil, fmt.Errorf("%w: wildcard cannot name an attribute in %q", ir.ErrPath, pattern)
	}
	filtered := &ResourcesView{
		statements: map[string]*ir.Statement{},
		defs:       v.defs,
	}
	for _, key := range v.order {
		st := v.statements[key]
		if st.Path.Matches(pat) {
			filtered.statements[key] = st
			filtered.order = append(filtered.order, key)
		}
	}
	return filtered, nil
}
