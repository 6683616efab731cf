package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	err := NotFoundf("project %s", "p-1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "project p-1")
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: "draft", To: "work_started"}

	assert.True(t, IsInvalidTransition(err))
	assert.Contains(t, err.Error(), `"draft"`)
	assert.Contains(t, err.Error(), `"work_started"`)

	// Detection survives wrapping
	wrapped := fmt.Errorf("update failed: %w", err)
	assert.True(t, IsInvalidTransition(wrapped))

	assert.False(t, IsInvalidTransition(ErrConflict))
	assert.False(t, IsInvalidTransition(nil))
}

func TestHelpersWrapTheirSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{Validationf("bad input"), ErrValidation},
		{NotFoundf("missing"), ErrNotFound},
		{PreconditionFailedf("not yet"), ErrPreconditionFailed},
		{Upstreamf("render: %v", "boom"), ErrUpstream},
	}

	for _, tt := range tests {
		assert.True(t, errors.Is(tt.err, tt.sentinel), "%v should wrap %v", tt.err, tt.sentinel)
	}
}
