package ir

// XFile is the product of parsing one XResources text. The maps hold
// the last statement written under each key; the order slices hold
// first-insertion key order for stable iteration. An XFile is never
// mutated after the builder returns it, so it is safe to share across
// concurrent readers.
type XFile struct {
	Resources     map[string]*Statement
	ResourceOrder []string

	Defines     map[string]*Define
	DefineOrder []string

	Comments []*Comment
	Includes []*Include

	// EmptyLines are the 0-based numbers of lines that are blank after
	// comment stripping.
	EmptyLines []int

	// LineCount is the number of physical lines in the source.
	LineCount int
}

func NewXFile() *XFile {
	return &XFile{
		Resources: map[string]*Statement{},
		Defines:   map[string]*Define{},
	}
}

// PutResource inserts a resource statement, overwriting any earlier
// statement with the same key (last write wins).
func (f *XFile) PutResource(s *Statement) {
	if _, ok := f.Resources[s.Key]; !ok {
		f.ResourceOrder = append(f.ResourceOrder, s.Key)
	}
	f.Resources[s.Key] = s
}

// PutDefine inserts a definition with the same last-write-wins rule.
func (f *XFile) PutDefine(d *Define) {
	if _, ok := f.Defines[d.Name]; !ok {
		f.DefineOrder = append(f.DefineOrder, d.Name)
	}
	f.Defines[d.Name] = d
}

// Statements returns every parsed statement, in no particular order.
func (f *XFile) Statements() []XStatement {
	res := make([]XStatement, 0,
		len(f.Resources)+len(f.Defines)+len(f.Comments)+len(f.Includes))
	for _, k := range f.ResourceOrder {
		res = append(res, f.Resources[k])
	}
	for _, n := range f.DefineOrder {
		res = append(res, f.Defines[n])
	}
	for _, c := range f.Comments {
		res = append(res, c)
	}
	for _, i := range f.Includes {
		res = append(res, i)
	}
	return res
}
