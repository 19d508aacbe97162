package pkg

import "errors"

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrMissingArg = errors.New("missing argument")
)
