package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensourcebim/bcf-server/internal/discovery"
	"github.com/opensourcebim/bcf-server/pkg/config"
)

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultDiscovery()
	svc, err := discovery.NewService(&cfg)
	require.NoError(t, err)

	return setupRouter(svc)
}

func TestSetupRouter(t *testing.T) {
	assert.NotPanics(t, func() {
		testRouter(t)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "bcf-server")
}

func TestDiscoveryRoutesRegistered(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bcf/versions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success": false, "error": "route not found"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/bcf/versions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupLogging_UnknownLevelFallsBack(t *testing.T) {
	setupLogging(config.LoggingConfig{Level: "nonsense", Format: "json"})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
