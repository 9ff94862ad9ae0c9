// Package lang implements the left-to-right integer expression language:
// whitespace tokenization and a single reduction pass in which every
// operator shares one precedence level, so "10 + 5 * 2" is (10 + 5) * 2.
//
// Everything in this package is pure and safe for concurrent use.
package lang

// Evaluate reduces expression left to right using OverflowFail.
func Evaluate(expression string) (int, error) {
	return EvaluateWithPolicy(expression, OverflowFail)
}

// EvaluateWithPolicy reduces expression left to right. Tokens are consumed
// and applied in a single pass, so the first error reached is the one
// returned: "10 / 0 + x" fails with ErrDivisionByZero.
func EvaluateWithPolicy(expression string, policy OverflowPolicy) (int, error) {
	tokens := Tokenize(expression)
	if len(tokens) == 0 {
		return 0, &Error{Kind: ErrEmptyExpression, Pos: -1}
	}

	acc, err := operand(tokens[0])
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(tokens); i += 2 {
		step, err := nextStep(tokens, i)
		if err != nil {
			return 0, err
		}
		if acc, err = apply(acc, step, policy); err != nil {
			return 0, err
		}
	}
	return acc, nil
}
