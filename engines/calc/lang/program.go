package lang

import (
	"errors"
	"strconv"
	"strings"
)

// Step is one (operator, operand) pair applied to the accumulator.
type Step struct {
	Op      Operator
	Operand int
	// Pos is the token index of Op, used for error reporting.
	Pos int
}

// Program is a validated expression: the initial operand followed by the
// steps to apply in order.
type Program struct {
	First int
	Steps []Step
}

// Parse checks that tokens alternate operand, operator, ..., operand and
// returns the resulting Program.
//
// Errors are reported in the order a left-to-right pass reaches them: when a
// syntax error is found, the steps before it are run under policy first, and
// an arithmetic error there wins. Arithmetic errors in a syntactically valid
// program surface from Run.
func Parse(tokens []Token, policy OverflowPolicy) (*Program, error) {
	if len(tokens) == 0 {
		return nil, &Error{Kind: ErrEmptyExpression, Pos: -1}
	}

	first, err := operand(tokens[0])
	if err != nil {
		return nil, err
	}

	prog := &Program{First: first, Steps: make([]Step, 0, len(tokens)/2)}
	for i := 1; i < len(tokens); i += 2 {
		step, err := nextStep(tokens, i)
		if err != nil {
			if _, foldErr := prog.Run(policy); foldErr != nil {
				return nil, foldErr
			}
			return nil, err
		}
		prog.Steps = append(prog.Steps, step)
	}
	return prog, nil
}

// nextStep reads the operator at tokens[i] and the operand after it.
func nextStep(tokens []Token, i int) (Step, error) {
	opTok := tokens[i]
	if opTok.Kind != KindOperator {
		return Step{}, newError(ErrUnknownOperator, opTok)
	}
	if i+1 >= len(tokens) {
		return Step{}, newError(ErrMissingOperand, opTok)
	}
	n, err := operand(tokens[i+1])
	if err != nil {
		return Step{}, err
	}
	return Step{Op: Operator(opTok.Value[0]), Operand: n, Pos: opTok.Pos}, nil
}

// Run folds the program left to right.
func (p *Program) Run(policy OverflowPolicy) (int, error) {
	return Fold(p.First, p.Steps, policy)
}

// String renders the program with single spaces between tokens.
func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(p.First))
	for _, s := range p.Steps {
		sb.WriteByte(' ')
		sb.WriteByte(byte(s.Op))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(s.Operand))
	}
	return sb.String()
}

// Fold applies steps to acc in order and returns the final accumulator.
func Fold(acc int, steps []Step, policy OverflowPolicy) (int, error) {
	for _, s := range steps {
		next, err := apply(acc, s, policy)
		if err != nil {
			return 0, err
		}
		acc = next
	}
	return acc, nil
}

func apply(acc int, s Step, policy OverflowPolicy) (int, error) {
	r, err := Apply(s.Op, acc, s.Operand, policy)
	if err != nil {
		e := &Error{Kind: ErrIntegerOverflow, Token: s.Op.String(), Pos: s.Pos}
		switch {
		case errors.Is(err, ErrDivisionByZero):
			e.Kind = ErrDivisionByZero
		case errors.Is(err, ErrUnknownOperator):
			e.Kind = ErrUnknownOperator
		}
		return 0, e
	}
	return r, nil
}
