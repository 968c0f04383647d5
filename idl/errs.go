package idl

import "errors"

var ErrMalformedInput = errors.New("malformed input")
