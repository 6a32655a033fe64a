package views

import (
	"fmt"

	"github.com/taesko/xparser/ir"
)

// DefinitionsView is a read-only mapping of definition names to their
// literal values.
type DefinitionsView struct {
	defines map[string]*ir.Define
	order   []string
}

func NewDefinitionsView(defines map[string]*ir.Define, order []string) *DefinitionsView {
	return &DefinitionsView{defines: defines, order: order}
}

// Get returns the literal value defined for name.
func (v *DefinitionsView) Get(name string) (string, error) {
	d, err := v.XStatement(name)
	if err != nil {
		return "", err
	}
	return d.Value, nil
}

// XStatement returns the structured definition for name.
func (v *DefinitionsView) XStatement(name string) (*ir.Define, error) {
	d, ok := v.defines[name]
	if !ok {
		return nil, fmt.Errorf("%w: definition %q", ErrKeyNotFound, name)
	}
	return d, nil
}

func (v *DefinitionsView) Has(name string) bool {
	_, ok := v.defines[name]
	return ok
}

// Names returns the defined names in first-insertion order.
func (v *DefinitionsView) Names() []string {
	names := make([]string, len(v.order))
	copy(names, v.order)
	return names
}

func (v *DefinitionsView) Len() int {
	return len(v.defines)
}
