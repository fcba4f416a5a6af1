package element

import "errors"

var (
	ErrInvalidTag   = errors.New("element: invalid tag name")
	ErrMissingID    = errors.New("element: input requires an id")
	ErrMissingLabel = errors.New("element: input requires a label")
)
