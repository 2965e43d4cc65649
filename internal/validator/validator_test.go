package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Title    string   `json:"title" validate:"required,min=2,max=100"`
	Email    string   `json:"email" validate:"omitempty,email"`
	LevelID  string   `json:"levelId" validate:"omitempty,uuid"`
	Role     string   `json:"role" validate:"omitempty,is-user-role"`
	UserType string   `json:"userType" validate:"omitempty,is-event-user-type"`
	Tags     []string `json:"tags" validate:"max=3"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{
		Title:    "Engineering",
		Email:    "dev@example.com",
		LevelID:  "6f1e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b",
		Role:     "admin",
		UserType: "speaker",
		Tags:     []string{"go", "backend"},
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "title")
	assert.Equal(t, "This field is required", vErr.Errors["title"])
}

func TestValidateRejectsBadUUID(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Title: "ok", LevelID: "not-a-uuid"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid UUID", vErr.Errors["levelId"])
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	err := v.Validate(&samplePayload{Title: "ok", Role: "superuser"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])

	err = v.Validate(&samplePayload{Title: "ok", UserType: "spectator"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid event user type", vErr.Errors["userType"])
}

func TestValidateMaxItems(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Title: "ok", Tags: []string{"a", "b", "c", "d"}})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "tags")
}
