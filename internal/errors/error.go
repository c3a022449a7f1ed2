package errors

import "errors"

var (
	ErrMalformedInput   = errors.New("malformed sgf input")
	ErrUnbalancedBranch = errors.New("unbalanced sgf branch")
	ErrEmptyCollection  = errors.New("sgf collection has no game trees")
	ErrRecordNotFound   = errors.New("record not found")
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrInternal         = errors.New("internal error")
)
