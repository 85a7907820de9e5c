package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vishalPatil7/Binaried/internal/errors"
	"github.com/vishalPatil7/Binaried/internal/validation"
)

type promptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

func TestValidator_Success(t *testing.T) {
	v := validation.New()

	err := v.Validate(promptRequest{Prompt: "something scary", Limit: 5})
	assert.NoError(t, err)
}

func TestValidator_MissingPrompt(t *testing.T) {
	v := validation.New()

	err := v.Validate(promptRequest{Prompt: ""})
	require.Error(t, err)

	var domainErr *apperrors.Error
	require.True(t, apperrors.As(err, &domainErr))
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

	// Field names come from the JSON tags.
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "prompt")
}

func TestValidator_LimitBounds(t *testing.T) {
	v := validation.New()

	err := v.Validate(promptRequest{Prompt: "ok", Limit: 51})
	require.Error(t, err)

	var domainErr *apperrors.Error
	require.True(t, apperrors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "limit")
}
