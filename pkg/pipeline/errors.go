package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidNGramSize = errors.New("n-gram size must be greater than 0")
	ErrNilOperation     = errors.New("operation must be set")
	ErrUnknownOperation = errors.New("unknown operation")
)
