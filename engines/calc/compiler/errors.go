package compiler

import "errors"

var (
	ErrContentNil         = errors.New("calc content is nil")
	ErrExecCreationFailed = errors.New("unable to create calc executable")
	ErrValidationFailed   = errors.New("calc expression validation error")
)
