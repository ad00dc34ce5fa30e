package errors

import (
	"net/http"
	"testing"

	"promo/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("placements must not be empty")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidDateRange))
	assert.Equal(t, "placements must not be empty", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsSentinel(t *testing.T) {
	err := ErrPromotionNotFound.WrapMessage("record click")

	assert.True(t, errors.Is(err, ErrPromotionNotFound))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PROMOTION_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create promotion")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create promotion", err.Details())
}
