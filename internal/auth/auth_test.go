package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(password, hash string) *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Password = password
	cfg.Admin.PasswordHash = hash
	cfg.JWT.AdminTokenSecret = "test-secret"
	cfg.JWT.AdminTokenExpiryHours = 24
	return cfg
}

func TestAuthenticatorPlainAndHash(t *testing.T) {
	plain := NewAuthenticator(testConfig("admin123", ""))
	assert.True(t, plain.Enabled())
	assert.True(t, plain.CheckPassword("admin123"))
	assert.False(t, plain.CheckPassword("ADMIN123"))
	assert.False(t, plain.CheckPassword(""))

	hash, err := utils.HashPassword("letmein")
	require.NoError(t, err)
	hashed := NewAuthenticator(testConfig("", hash))
	assert.True(t, hashed.CheckPassword("letmein"))
	assert.False(t, hashed.CheckPassword("admin123"))

	// a hash placed in ADMIN_PASSWORD is treated as a hash
	inline := NewAuthenticator(testConfig(hash, ""))
	assert.True(t, inline.CheckPassword("letmein"))

	assert.False(t, NewAuthenticator(testConfig("", "")).Enabled())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	a := NewAuthenticator(testConfig("admin123", ""))

	_, err := a.Login("nope")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	res, err := a.Login("admin123")
	require.NoError(t, err)
	claims, err := a.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAuthRoutes(r.Group("/api"), NewAuthenticator(testConfig("admin123", "")))

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool          `json:"success"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)

	assert.Equal(t, http.StatusUnauthorized, post(`{"password":"wrong"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{}`).Code)
}
