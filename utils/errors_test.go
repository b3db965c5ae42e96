package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequestError("bad", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, UnauthorizedError("no", nil).Code)
	assert.Equal(t, http.StatusForbidden, ForbiddenError("no", nil).Code)
	assert.Equal(t, http.StatusNotFound, NotFoundError("gone", nil).Code)
}

func TestGetAppError(t *testing.T) {
	appErr := BadRequestError("bad", nil)
	assert.Equal(t, appErr, GetAppError(appErr))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestProfileUpdateErrorCarriesAttemptedAmount(t *testing.T) {
	cause := errors.New("write timeout")
	err := NewProfileUpdateError("user-1", 100, cause)

	assert.Equal(t, int64(100), err.AttemptedCts)
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "100")
	require.ErrorIs(t, err, cause)
}
