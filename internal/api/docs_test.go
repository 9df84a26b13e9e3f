package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	spec, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Moneta Checkout API", spec.Info.Title)
	assert.Equal(t, "1.0.0", spec.Info.Version)

	for _, path := range []string{
		"/api/v1/orders/{orderID}/redirect",
		"/api/v1/orders/{orderID}/redirect/retry",
		"/api/v1/orders/{orderID}/retry-eligibility",
		"/api/v1/fees",
		"/api/v1/settings",
	} {
		assert.NotNil(t, spec.Paths.Find(path), path)
	}
}

func TestRegisterDocsRoutes(t *testing.T) {
	spec, err := Load(context.Background())
	require.NoError(t, err)

	mux := http.NewServeMux()
	RegisterDocsRoutes(mux, spec)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "title: Moneta Checkout API")
}
