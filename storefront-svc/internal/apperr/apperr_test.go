package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataFor(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		retryable bool
	}{
		{CodeValidation, http.StatusBadRequest, false},
		{CodeUnauthorized, http.StatusUnauthorized, false},
		{CodeNotFound, http.StatusNotFound, false},
		{CodeConflict, http.StatusConflict, false},
		{CodeRateLimit, http.StatusTooManyRequests, false},
		{CodeDependency, http.StatusServiceUnavailable, true},
		{CodeInternal, http.StatusInternalServerError, true},
		{Code("BOGUS"), http.StatusInternalServerError, true},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.code), func(t *testing.T) {
			meta := MetadataFor(testCase.code)
			assert.Equal(t, testCase.status, meta.HTTPStatus)
			assert.Equal(t, testCase.retryable, meta.Retryable)
			assert.NotEmpty(t, meta.PublicMessage)
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(CodeDependency, cause, "create order")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDependency, err.Code())
	assert.True(t, err.Retryable())
	assert.Contains(t, err.Error(), "dial tcp")
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeNotFound, nil, "missing")
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "NOT_FOUND: missing", err.Error())
}

func TestAsFindsTypedErrorThroughFmtWrap(t *testing.T) {
	inner := New(CodeConflict, "submission in flight").WithDetails(map[string]any{"session": "s1"})
	err := fmt.Errorf("submit: %w", inner)

	typed := As(err)
	require.NotNil(t, typed)
	assert.Equal(t, CodeConflict, typed.Code())
	assert.Equal(t, map[string]any{"session": "s1"}, typed.Details())
	assert.True(t, Is(err, CodeConflict))
	assert.False(t, Is(err, CodeNotFound))
}

func TestCodeOfUntyped(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.Nil(t, As(nil))
	assert.False(t, Is(nil, CodeInternal))
}

func TestNilErrorAccessors(t *testing.T) {
	var e *Error
	assert.Equal(t, CodeInternal, e.Code())
	assert.Empty(t, e.Message())
	assert.Nil(t, e.Details())
	assert.Nil(t, e.WithDetails("x"))
	assert.Empty(t, e.Error())
}
