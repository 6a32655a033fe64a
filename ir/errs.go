package ir

import "errors"

var (
	ErrPath = errors.New("bad resource path")
)
