package domain

import "errors"

// Domain errors.
var (
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrInvalidTemplate      = errors.New("template must contain exactly one " + Placeholder + " placeholder")
	ErrMissingTemplate      = errors.New("greeting template missing")
)
