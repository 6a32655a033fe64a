package token

import (
	"fmt"
	"strconv"
)

// Pos locates a logical line in the source text. Line numbers are
// 0-based and refer to the first physical line of a continued line.
type Pos struct {
	Line int
	Raw  string
}

func (p *Pos) String() string {
	sample := p.Raw
	if len(sample) > 40 {
		sample = sample[:40]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s` at line %d", sample, p.Line)
}
