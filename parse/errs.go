package parse

import (
	"errors"
	"fmt"

	"github.com/taesko/xparser/token"
)

var (
	ErrParse = errors.New("parse error")

	// ErrMalformedResource is a resource line without an unescaped ':'
	// separator, or with an empty key.
	ErrMalformedResource = fmt.Errorf("%w: malformed resource line", ErrParse)
	// ErrMalformedDefine is a #define with fewer than two tokens after
	// the keyword.
	ErrMalformedDefine = fmt.Errorf("%w: malformed define line", ErrParse)
	// ErrMalformedInclude is an #include without a quoted file name.
	ErrMalformedInclude = fmt.Errorf("%w: malformed include line", ErrParse)
	// ErrUnknownDirective is a '#' line that is neither #define nor
	// #include.
	ErrUnknownDirective = fmt.Errorf("%w: unknown directive", ErrParse)
)

// ParseErr decorates a parse error with the position of the offending
// logical line.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func NewParseErr(e error, p *token.Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: *p}
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Pos.String())
}
