package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]int{"rating": 4})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rating":4}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithDetails(w, http.StatusBadRequest, "Invalid request", "amount must be between 1 and 100000")

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request", body.Error)
	assert.Equal(t, "amount must be between 1 and 100000", body.Details)

	w = httptest.NewRecorder()
	RespondWithError(w, http.StatusNotFound, "Resource not found")
	assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
}
