package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	cause := New("redis down")

	err := Wrap(Retryable(cause), "record engagement")

	assert.True(t, IsRetryable(err))
	assert.True(t, Is(err, cause))
	assert.Equal(t, "record engagement: retryable: redis down", err.Error())

	assert.False(t, IsRetryable(cause))
	assert.False(t, IsRetryable(nil))
	assert.NoError(t, Retryable(nil))
}

func TestWrap_KeepsStack(t *testing.T) {
	err := Wrap(New("boom"), "load promotion")

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsStack")
	assert.NoError(t, Wrap(nil, "ignored"))
}
