package lang

import (
	"fmt"
	"math"
	"strings"
)

// Operator is one of the four binary arithmetic operators.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

func (o Operator) String() string {
	return string(o)
}

// ParseOperator reports whether s is exactly one of "+", "-", "*" or "/".
func ParseOperator(s string) (Operator, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch op := Operator(s[0]); op {
	case Add, Sub, Mul, Div:
		return op, true
	}
	return 0, false
}

// OverflowPolicy selects what happens when a result leaves the range of int.
type OverflowPolicy int

const (
	// OverflowFail returns ErrIntegerOverflow.
	OverflowFail OverflowPolicy = iota
	// OverflowWrap keeps the two's-complement wrapped result.
	OverflowWrap
	// OverflowSaturate clamps to math.MinInt or math.MaxInt.
	OverflowSaturate
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowFail:
		return "fail"
	case OverflowWrap:
		return "wrap"
	case OverflowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy maps "fail", "wrap" or "saturate" (case-insensitive)
// to a policy. The empty string selects OverflowFail.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return OverflowFail, nil
	case "wrap":
		return OverflowWrap, nil
	case "saturate":
		return OverflowSaturate, nil
	}
	return OverflowFail, fmt.Errorf("unknown overflow policy %q", s)
}

// Apply computes a op b. Division truncates toward zero.
func Apply(op Operator, a, b int, policy OverflowPolicy) (int, error) {
	switch op {
	case Add:
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return overflow(r, b > 0, policy)
		}
		return r, nil
	case Sub:
		r := a - b
		if (b < 0 && r < a) || (b > 0 && r > a) {
			return overflow(r, b < 0, policy)
		}
		return r, nil
	case Mul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
			return overflow(r, (a > 0) == (b > 0), policy)
		}
		return r, nil
	case Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if a == math.MinInt && b == -1 {
			// the only quotient that does not fit
			return overflow(math.MinInt, true, policy)
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op.String())
}

func overflow(wrapped int, positive bool, policy OverflowPolicy) (int, error) {
	switch policy {
	case OverflowWrap:
		return wrapped, nil
	case OverflowSaturate:
		if positive {
			return math.MaxInt, nil
		}
		return math.MinInt, nil
	default:
		return 0, ErrIntegerOverflow
	}
}
