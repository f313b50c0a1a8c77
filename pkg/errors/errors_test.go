package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesCode(t *testing.T) {
	err := BadRequest("buyer_id is required", nil)

	assert.True(t, Is(err, "BAD_REQUEST"))
	assert.False(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(fmt.Errorf("plain"), "BAD_REQUEST"))
}

func TestIsUnwrapsNestedErrors(t *testing.T) {
	wrapped := fmt.Errorf("turn failed: %w", NotFound("Item", nil))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsUnavailable(wrapped))
}

func TestIsUnavailable(t *testing.T) {
	err := Unavailable("Session store read failed", fmt.Errorf("dial tcp: refused"))

	assert.True(t, IsUnavailable(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, 503, err.Status)
}
