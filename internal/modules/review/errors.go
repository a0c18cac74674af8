package review

import "errors"

var (
	ErrNotFound        = errors.New("submission not found")
	ErrDuplicateMember = errors.New("email already registered")
)
