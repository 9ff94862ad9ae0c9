package platform_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/robbyt/go-polycalc"
	"github.com/robbyt/go-polycalc/engines/mocks"
	"github.com/robbyt/go-polycalc/options"
	"github.com/robbyt/go-polycalc/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorInterface(t *testing.T) {
	t.Parallel()

	mockResponse := new(mocks.EvaluatorResponse)
	mockResponse.On("Interface").Return(30)
	mockResponse.On("GetScriptExeID").Return("test-script-id")
	mockResponse.On("GetExecTime").Return("10µs")
	mockResponse.On("Inspect").Return("30")

	// use a custom type for the context key lookup, to avoid lint warnings
	type contextKey string
	testKey := contextKey("test-key")
	ctx := context.WithValue(context.Background(), testKey, "test-value")

	evaluator := new(mocks.Evaluator)
	evaluator.On("Eval", mock.MatchedBy(func(c context.Context) bool {
		_, hasKey := c.Value(testKey).(string)
		return hasKey
	})).Return(mockResponse, nil)

	var e platform.Evaluator = evaluator
	response, err := e.Eval(ctx)
	require.NoError(t, err)
	require.NotNil(t, response)

	assert.Equal(t, 30, response.Interface())
	assert.Equal(t, "test-script-id", response.GetScriptExeID())
	assert.Equal(t, "10µs", response.GetExecTime())
	assert.Equal(t, "30", response.Inspect())

	errorEvaluator := new(mocks.Evaluator)
	errorEvaluator.On("Eval", mock.Anything).
		Return((*mocks.EvaluatorResponse)(nil), errors.New("evaluation error"))

	response, err = errorEvaluator.Eval(context.Background())
	require.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "evaluation error")
}

func TestEvaluatorImplementation(t *testing.T) {
	t.Parallel()

	e, err := polycalc.FromString(
		"10 + 5 * 2",
		options.WithLogHandler(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	var response platform.EvaluatorResponse
	response, err = e.Eval(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, response.Interface())
	assert.Equal(t, "30", response.Inspect())
	assert.NotEmpty(t, response.GetScriptExeID())
	assert.NotEmpty(t, response.GetExecTime())
}
