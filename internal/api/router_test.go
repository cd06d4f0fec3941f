package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filetransfer/filetransfer_api/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitRouter_NotFound(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "endpoint not found")
}

func TestInitRouter_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/login", nil)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Body.String(), "method not allowed")
}

func TestInitRouter_Preflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transfer/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInitRouter_StrictSlash(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/my-files", nil)
	server.authorize(req, testdata.Alice)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMovedPermanently, rr.Code)
	assert.Equal(t, "/api/v1/my-files/", rr.Header().Get("Location"))
}

func TestInitRouter_RequestID(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(requestIDHeader))

	rr = httptest.NewRecorder()
	server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))
}

func TestInitRouter_Overview(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/", nil)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp overviewResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Anonymous", resp.User)
		assert.Equal(t, apiVersion, resp.Version)
		assert.Equal(t, "/api/v1/transfer/", resp.Endpoints["transfer"])
	})

	t.Run("authenticated", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/", nil)
		server.authorize(req, testdata.Alice)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		var resp overviewResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "alice", resp.User)
	})
}

func TestInitRouter_ProtectedRoutes(t *testing.T) {
	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/upload/"},
		{http.MethodGet, "/api/v1/upload/"},
		{http.MethodPost, "/api/v1/transfer/"},
		{http.MethodPost, "/api/v1/revoke/"},
		{http.MethodGet, "/api/v1/my-files/"},
		{http.MethodGet, "/api/v1/history/"},
		{http.MethodGet, "/api/v1/users/"},
		{http.MethodGet, "/api/v1/files/"},
		{http.MethodGet, "/api/v1/files/" + testdata.ReportID.String() + "/"},
		{http.MethodGet, "/api/v1/files/" + testdata.ReportID.String() + "/download"},
		{http.MethodGet, "/api/v1/files/" + testdata.ReportID.String() + "/history"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodDelete, "/api/v1/users/me"},
		{http.MethodPost, "/api/v1/users/me/logout"},
		{http.MethodGet, "/api/v1/admin/files"},
		{http.MethodGet, "/api/v1/admin/transfers"},
	}

	server := newTestServer(t)
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rr := httptest.NewRecorder()

			server.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInitRouter_AdminRequiresRole(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/files", nil)
	server.authorize(req, testdata.Alice)
	rr := httptest.NewRecorder()

	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	server.ownership.AssertNotCalled(t, "AdminFiles", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitRouter_Metrics(t *testing.T) {
	server := newTestServer(t)

	server.router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `filetransfer_http_requests_total{method="GET",route="/api/v1/health",status="200"}`)
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)
	server.healthy = true

	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true\n", rr.Body.String())
}
