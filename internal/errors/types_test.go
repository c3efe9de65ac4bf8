package errors

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "code and component",
			err:      NewValidationError(ErrCodeNoChoices, "no choices").WithComponent("input"),
			expected: "[ERR_NO_CHOICES] component:input no choices",
		},
		{
			name:     "with cause",
			err:      NewIOError(ErrCodeReadFailed, "read failed", io.ErrUnexpectedEOF),
			expected: "[ERR_READ_FAILED] read failed: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorIsMatchesTypeAndCode(t *testing.T) {
	sentinel := NewIOError(ErrCodeStreamClosed, "stream closed", io.EOF)
	wrapped := &Error{Type: ErrorTypeIO, Code: ErrCodeStreamClosed, Message: "other text"}

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, errors.Is(sentinel, io.EOF))
	assert.False(t, errors.Is(NewIOError(ErrCodeReadFailed, "x", nil), sentinel))
	assert.False(t, errors.Is(NewValidationError(ErrCodeStreamClosed, "x"), sentinel))
}

func TestErrorWithContext(t *testing.T) {
	err := NewConfigError(ErrCodeConfigInvalid, "bad unit").
		WithContext("field", "timer.unit").
		WithContext("value", "fortnights")

	require.NotNil(t, err.Context)
	assert.Equal(t, "timer.unit", err.Context["field"])
	assert.Equal(t, "fortnights", err.Context["value"])
	assert.False(t, err.Recoverable)
}

func TestCategoryHelpers(t *testing.T) {
	validation := NewValidationError(ErrCodeEmptyRange, "empty")
	ioErr := NewIOError(ErrCodeReadFailed, "read", nil)
	cfg := NewConfigError(ErrCodeConfigInvalid, "cfg")

	assert.True(t, IsValidationError(validation))
	assert.True(t, IsRecoverable(validation))
	assert.True(t, IsIOError(ioErr))
	assert.True(t, IsConfigError(cfg))
	assert.False(t, IsIOError(errors.New("plain")))
	assert.False(t, IsRecoverable(errors.New("plain")))
}

type recordingLogger struct {
	errors []string
	warns  []string
}

func (r *recordingLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.errors = append(r.errors, msg)
}

func (r *recordingLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.warns = append(r.warns, msg)
}

func TestHandler(t *testing.T) {
	logger := &recordingLogger{}
	h := NewHandler(logger)
	ctx := context.Background()

	h.Handle(ctx, nil)
	h.Handle(ctx, NewValidationError(ErrCodeNoChoices, "none"))
	h.Handle(ctx, NewIOError(ErrCodeReadFailed, "read", nil))
	h.Handle(ctx, errors.New("plain"))

	assert.Equal(t, []string{"Validation error occurred"}, logger.warns)
	assert.Equal(t, []string{"Error occurred", "Unhandled error occurred"}, logger.errors)
}
