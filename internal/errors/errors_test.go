package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	err := New(ErrorTypeValidation, "test_op", "test message")
	assert.Equal(t, "[validation] test_op: test message", err.Error())

	cause := errors.New("underlying error")
	err = Wrap(cause, ErrorTypeStorage, "save_op", "failed to save")
	assert.Contains(t, err.Error(), "[storage] save_op: failed to save")
	assert.Contains(t, err.Error(), "underlying error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestStructuredError_WithContext(t *testing.T) {
	err := New(ErrorTypeStorage, "read_triangles", "bad file").
		WithContext("path", "/tmp/soup.parquet").
		WithContext("triangles", 42)

	assert.Equal(t, "/tmp/soup.parquet", err.Context["path"])
	assert.Equal(t, 42, err.Context["triangles"])
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, ErrorTypeStorage, NewStorageError("op", "msg").Type)
	assert.Equal(t, ErrorTypeConfiguration, NewConfigurationError("op", "msg").Type)
}

func TestErrorWrapping(t *testing.T) {
	original := errors.New("original error")

	wrapped := WrapStorageError(original, "write_triangles", "write failed")
	assert.Equal(t, ErrorTypeStorage, wrapped.Type)
	assert.Equal(t, "write_triangles", wrapped.Operation)
	assert.Equal(t, original, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, original))

	assert.Nil(t, Wrap(nil, ErrorTypeStorage, "op", "msg"))
	assert.Nil(t, WrapValidationError(nil, "op", "msg"))
}

func TestStackTraceCapture(t *testing.T) {
	err := New(ErrorTypeComputation, "test", "message")
	assert.Greater(t, len(err.Stack), 0)
}
