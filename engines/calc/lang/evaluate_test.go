package lang

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		want       int
	}{
		{name: "left to right, no precedence", expression: "10 + 5 * 2", want: 30},
		{name: "single operand", expression: "7", want: 7},
		{name: "addition", expression: "10 + 5", want: 15},
		{name: "subtraction below zero", expression: "3 - 10", want: -7},
		{name: "multiplication", expression: "6 * 7", want: 42},
		{name: "integer division", expression: "7 / 2", want: 3},
		{name: "truncates toward zero", expression: "-7 / 2", want: -3},
		{name: "truncates toward zero, negative divisor", expression: "7 / -2", want: -3},
		{name: "signed literals", expression: "+4 * -3", want: -12},
		{name: "long chain", expression: "1 + 2 - 3 * 4 / 5", want: 0},
		{name: "collapsed whitespace", expression: "10   +   5", want: 15},
		{name: "tabs and newlines", expression: "\t10\n+\r\n5 ", want: 15},
		{name: "leading zeros", expression: "007 + 1", want: 8},
		{name: "max int", expression: strconv.Itoa(math.MaxInt), want: math.MaxInt},
		{name: "min int", expression: strconv.Itoa(math.MinInt), want: math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		wantErr    error
		wantPos    int
		wantToken  string
	}{
		{name: "empty", expression: "", wantErr: ErrEmptyExpression, wantPos: -1},
		{name: "only whitespace", expression: " \t\n ", wantErr: ErrEmptyExpression, wantPos: -1},
		{name: "trailing operator", expression: "10 /", wantErr: ErrMissingOperand, wantPos: 1, wantToken: "/"},
		{name: "division by zero", expression: "10 / 0", wantErr: ErrDivisionByZero, wantPos: 1, wantToken: "/"},
		{name: "unknown operator", expression: "10 % 2", wantErr: ErrUnknownOperator, wantPos: 1, wantToken: "%"},
		{name: "invalid first operand", expression: "a + 1", wantErr: ErrInvalidOperand, wantPos: 0, wantToken: "a"},
		{name: "invalid later operand", expression: "1 + b", wantErr: ErrInvalidOperand, wantPos: 2, wantToken: "b"},
		{name: "operator where operand expected", expression: "1 + +", wantErr: ErrInvalidOperand, wantPos: 2, wantToken: "+"},
		{name: "leading operator", expression: "+ 1", wantErr: ErrInvalidOperand, wantPos: 0, wantToken: "+"},
		{name: "two operands in a row", expression: "1 2", wantErr: ErrUnknownOperator, wantPos: 1, wantToken: "2"},
		{name: "multi-character operator", expression: "1 ++ 2", wantErr: ErrUnknownOperator, wantPos: 1, wantToken: "++"},
		{name: "unspaced expression", expression: "1+2", wantErr: ErrInvalidOperand, wantPos: 0, wantToken: "1+2"},
		{name: "float literal", expression: "1.5 + 1", wantErr: ErrInvalidOperand, wantPos: 0, wantToken: "1.5"},
		{name: "hex literal", expression: "0x10 + 1", wantErr: ErrInvalidOperand, wantPos: 0, wantToken: "0x10"},
		{name: "first error wins", expression: "10 / 0 + a", wantErr: ErrDivisionByZero, wantPos: 1, wantToken: "/"},
		{name: "overflow", expression: strconv.Itoa(math.MaxInt) + " + 1", wantErr: ErrIntegerOverflow, wantPos: 1, wantToken: "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(tt.expression)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, got)

			var langErr *Error
			require.ErrorAs(t, err, &langErr)
			assert.Equal(t, tt.wantPos, langErr.Pos)
			assert.Equal(t, tt.wantToken, langErr.Token)
		})
	}
}

func TestEvaluate_OutOfRangeLiteral(t *testing.T) {
	t.Parallel()

	_, err := Evaluate("99999999999999999999999 + 1")
	require.ErrorIs(t, err, ErrInvalidOperand)
	require.ErrorIs(t, err, strconv.ErrRange)

	_, err = Evaluate("abc")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestEvaluateWithPolicy_Overflow(t *testing.T) {
	t.Parallel()

	maxInt := strconv.Itoa(math.MaxInt)
	minInt := strconv.Itoa(math.MinInt)

	tests := []struct {
		name       string
		expression string
		wrap       int
		saturate   int
	}{
		{name: "add past max", expression: maxInt + " + 1", wrap: math.MinInt, saturate: math.MaxInt},
		{name: "sub past min", expression: minInt + " - 1", wrap: math.MaxInt, saturate: math.MinInt},
		{name: "sub negative past max", expression: maxInt + " - -1", wrap: math.MinInt, saturate: math.MaxInt},
		{name: "mul past max", expression: maxInt + " * 2", wrap: -2, saturate: math.MaxInt},
		{name: "mul past min", expression: maxInt + " * -2", wrap: 2, saturate: math.MinInt},
		{name: "negate min", expression: minInt + " * -1", wrap: math.MinInt, saturate: math.MaxInt},
		{name: "divide min by minus one", expression: minInt + " / -1", wrap: math.MinInt, saturate: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := EvaluateWithPolicy(tt.expression, OverflowFail)
			require.ErrorIs(t, err, ErrIntegerOverflow)

			got, err := EvaluateWithPolicy(tt.expression, OverflowWrap)
			require.NoError(t, err)
			assert.Equal(t, tt.wrap, got, "wrap")

			got, err = EvaluateWithPolicy(tt.expression, OverflowSaturate)
			require.NoError(t, err)
			assert.Equal(t, tt.saturate, got, "saturate")
		})
	}

	t.Run("wrapped intermediate can recover", func(t *testing.T) {
		got, err := EvaluateWithPolicy(maxInt+" + 1 - 1", OverflowWrap)
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("near the boundary is not overflow", func(t *testing.T) {
		got, err := Evaluate(minInt + " + " + maxInt)
		require.NoError(t, err)
		assert.Equal(t, -1, got)

		got, err = Evaluate("-1 - " + maxInt)
		require.NoError(t, err)
		assert.Equal(t, math.MinInt, got)
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	const expression = "100 - 1 * 3 / 7"
	first, err := Evaluate(expression)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Evaluate(expression)
			assert.NoError(t, err)
			assert.Equal(t, first, got)
		}()
	}
	wg.Wait()
}

// TestEvaluate_LeftFold checks random well-formed expressions against
// govaluate evaluating the same expression fully parenthesized from the left.
// govaluate divides floats, so quotients go through trunc to match Go's
// truncation toward zero.
func TestEvaluate_LeftFold(t *testing.T) {
	t.Parallel()

	functions := map[string]govaluate.ExpressionFunction{
		"trunc": func(args ...any) (any, error) {
			return math.Trunc(args[0].(float64)), nil
		},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	ops := []string{"+", "-", "*", "/"}

	for i := range 300 {
		k := rng.IntN(6)
		plain := []string{strconv.Itoa(rng.IntN(41) - 20)}
		nested := plain[0]
		for range k {
			op := ops[rng.IntN(len(ops))]
			v := rng.IntN(41) - 20
			if op == "/" && v == 0 {
				v = -3
			}
			n := strconv.Itoa(v)
			plain = append(plain, op, n)
			if op == "/" {
				nested = fmt.Sprintf("trunc((%s) / (%s))", nested, n)
			} else {
				nested = fmt.Sprintf("(%s %s (%s))", nested, op, n)
			}
		}
		expression := strings.Join(plain, " ")

		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := Evaluate(expression)
			require.NoError(t, err, expression)

			oracle, err := govaluate.NewEvaluableExpressionWithFunctions(nested, functions)
			require.NoError(t, err, nested)
			want, err := oracle.Evaluate(nil)
			require.NoError(t, err, nested)

			assert.Equal(t, want, float64(got), "%s vs %s", expression, nested)
		})
	}
}

func ExampleEvaluate() {
	fmt.Println(Evaluate("10 + 5 * 2"))
	fmt.Println(Evaluate("7"))
	fmt.Println(Evaluate("-7 / 2"))
	fmt.Println(Evaluate("10 / 0"))
	fmt.Println(Evaluate("10 % 2"))
	// Output:
	// 30 <nil>
	// 7 <nil>
	// -3 <nil>
	// 0 division by zero at token 1 ("/")
	// 0 unknown operator at token 1 ("%")
}
