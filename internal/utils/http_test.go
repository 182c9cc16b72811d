package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilyasov/bookstore/models"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, models.ErrorResponse{Err: "Invalid token"}, http.StatusUnauthorized)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body["err"])
}

func TestWriteJSON_NilBody(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := WriteJSON(rr, nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "null", rr.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// NaN is not representable in JSON
	n, err := WriteJSON(rr, math.NaN(), http.StatusOK)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 36)
}
