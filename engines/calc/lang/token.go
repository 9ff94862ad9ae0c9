package lang

import (
	"errors"
	"strconv"
	"strings"
)

// Kind classifies a token by the role it can fill: an operand where the
// grammar expects one, an operator otherwise.
type Kind int

const (
	KindUnknown Kind = iota
	KindOperand
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindOperand:
		return "OPERAND"
	case KindOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is one whitespace-delimited fragment of an expression.
type Token struct {
	Kind  Kind
	Value string
	// Pos is the index of the token in the token sequence.
	Pos int
	// Num is the parsed value of a KindOperand token.
	Num int
}

// Tokenize splits expression on runs of whitespace. An empty or
// whitespace-only expression yields no tokens.
func Tokenize(expression string) []Token {
	fields := strings.Fields(expression)
	tokens := make([]Token, 0, len(fields))
	for i, f := range fields {
		tokens = append(tokens, newToken(f, i))
	}
	return tokens
}

func newToken(s string, pos int) Token {
	tok := Token{Value: s, Pos: pos}
	if _, ok := ParseOperator(s); ok {
		tok.Kind = KindOperator
		return tok
	}
	if n, err := strconv.Atoi(s); err == nil {
		tok.Kind = KindOperand
		tok.Num = n
	}
	return tok
}

// operand returns the value of tok, or an InvalidOperand error carrying
// strconv.ErrSyntax or strconv.ErrRange.
func operand(tok Token) (int, error) {
	if tok.Kind == KindOperand {
		return tok.Num, nil
	}

	e := newError(ErrInvalidOperand, tok)
	_, err := strconv.Atoi(tok.Value)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		e.Err = numErr.Err
	}
	return 0, e
}
