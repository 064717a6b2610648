package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growth-tools/goal-report/pkg/services/config"
)

func newTestAPI(t *testing.T) *WebAPI {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sites.ini")
	content := `[example.com]
apikey     = secret
baseurl    = http://127.0.0.1:1/api/
apiversion = v1
period     = custom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := config.NewRegistry(path)
	require.NoError(t, err)

	return NewWebAPI(zerolog.Nop(), Config{
		Addr: "127.0.0.1:0",
		Dependencies: Dependencies{
			Registry: registry,
		},
	})
}

func TestRoutes_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRoutes_Metrics(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_Sites(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "example.com")
}

func TestRoutes_ReportRejectsBadGranularity(t *testing.T) {
	api := newTestAPI(t)

	target := fmt.Sprintf("/api/v1/sites/%s/report?granularity=hour&start=2024-06-01&end=2024-06-01&page=/&goals=signup",
		"example.com")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
