package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tie/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest, message: "bad input"},
		{name: "bad request from error", err: failure.BadRequest(errors.New("decode failed")), code: http.StatusBadRequest, message: "decode failed"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
		{name: "not found", err: failure.NotFound("reservation not found"), code: http.StatusNotFound, message: "reservation not found"},
		{name: "conflict", err: failure.Conflict("already exists"), code: http.StatusConflict, message: "already exists"},
		{name: "forbidden", err: failure.Forbidden("access denied"), code: http.StatusForbidden, message: "access denied"},
		{name: "unavailable", err: failure.Unavailable("sequence exhausted"), code: http.StatusServiceUnavailable, message: "sequence exhausted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure", input: failure.ForbiddenError, expected: http.StatusForbidden},
		{name: "wrapped failure", input: fmt.Errorf("outer: %w", failure.Conflict("dup")), expected: http.StatusConflict},
		{name: "plain error", input: errors.New("boom"), expected: http.StatusInternalServerError},
		{name: "nil", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIsServerFault(t *testing.T) {
	assert.True(t, failure.IsServerFault(errors.New("connection reset")))
	assert.True(t, failure.IsServerFault(failure.Unavailable("sequence exhausted")))
	assert.False(t, failure.IsServerFault(failure.BadRequestFromString("check_out must be after check_in")))
	assert.False(t, failure.IsServerFault(failure.ForbiddenError))
}
