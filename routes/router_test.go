package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/middleware"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
)

func newTestRouter(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Store.Backend = config.BackendMemory
	cfg.Admin.Password = password
	cfg.JWT.AdminTokenSecret = "test-secret"
	cfg.JWT.AdminTokenExpiryHours = 1
	cfg.Match.Timezone = "Asia/Kolkata"
	cfg.Match.DurationHours = 4
	cfg.Feed.PollIntervalSeconds = 10
	cfg.Feed.BannerSeconds = 5

	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC))
	return SetupRoutes(cfg, store.NewMemoryStore(), clock)
}

func send(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPublicSurface(t *testing.T) {
	r := newTestRouter("admin123")

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/api/teams", "", nil).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/api/admin/points", "", nil).Code)

	w := send(r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = send(r, http.MethodPost, "/api/chat", `{"message":"show me the points table"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/points")
}

func TestAdminWritesNeedPassword(t *testing.T) {
	r := newTestRouter("admin123")
	body := `{"points":[{"team":"GT","matches":1,"won":1,"lost":0,"points":2}]}`

	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodPost, "/api/admin/points", body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodPost, "/api/admin/points", body,
		map[string]string{middleware.AdminPasswordHeader: "wrong"}).Code)

	w := send(r, http.MethodPost, "/api/admin/points", body,
		map[string]string{middleware.AdminPasswordHeader: "admin123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodGet, "/api/admin/points", "", nil)
	assert.Contains(t, w.Body.String(), `"team":"GT"`)
}

func TestAdminOpenWithoutPassword(t *testing.T) {
	r := newTestRouter("")

	w := send(r, http.MethodDelete, "/api/admin/points", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
