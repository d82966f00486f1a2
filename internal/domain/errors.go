package domain

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnknownKind = errors.New("unknown kind")
)
