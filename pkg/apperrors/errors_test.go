package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMarshalHidesInternals(t *testing.T) {
	inner := errors.New("pq: connection refused")
	appErr := Wrap(inner, CodeDatabaseError, "job", "Failed to load job", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, "Failed to load job", body["message"])
	assert.Equal(t, "job", body["domain"])
	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "HTTPCode")
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("row not found")
	appErr := Wrap(inner, CodeNotFound, "user", "User not found", http.StatusNotFound)

	assert.True(t, errors.Is(appErr, inner))

	var target *AppError
	require.True(t, errors.As(appErr, &target))
	assert.Equal(t, CodeNotFound, target.Code)
}

func TestValidationErrorStatus(t *testing.T) {
	err := ValidationError(map[string]string{"title": "This field is required"})
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode)
	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.NotNil(t, err.Details)
}

func TestPredefinedErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrJobNotFound.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrJobAlreadySaved.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrCategoryTitleTaken.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrEventNotFound.HTTPCode)
}

func TestInternalErrorMessageIsGeneric(t *testing.T) {
	err := InternalError(errors.New("secret detail"))
	assert.Equal(t, "Internal server error", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
}
