package response

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vishalPatil7/Binaried/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJSON_WritesPayloadVerbatim(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]any{"movies": []string{}}, testLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "movies")
	// No envelope keys sneak in.
	assert.NotContains(t, body, "success")
	assert.NotContains(t, body, "data")
}

func TestError_FlatShape(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusInternalServerError, "TMDB parallel fetch failed", testLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"TMDB parallel fetch failed"}`, w.Body.String())
}

func TestHandleError_DomainError(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, apperrors.NotFound("Unknown genre"), testLogger())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Unknown genre"}`, w.Body.String())
}

func TestHandleError_UnknownErrorBecomes500(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, apperrors.New("socket closed"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
