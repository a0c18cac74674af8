package intake

import "errors"

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrDuplicatePending  = errors.New("email already awaiting approval")
	ErrDuplicateMember   = errors.New("email already registered")
)
