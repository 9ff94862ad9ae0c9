package lang

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrMissingOperand  = errors.New("missing operand")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIntegerOverflow = errors.New("integer overflow")
)

// Error describes where an expression failed. Kind is one of the sentinel
// errors above, so callers can match with errors.Is.
type Error struct {
	Kind  error
	Token string
	Pos   int
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at token %d", msg, e.Pos)
	}
	if e.Token != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, tok Token) *Error {
	return &Error{Kind: kind, Token: tok.Value, Pos: tok.Pos}
}
