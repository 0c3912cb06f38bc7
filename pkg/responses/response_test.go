package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSendSuccessKeepsEmptyData(t *testing.T) {
	code, body := run(t, func(c *gin.Context) {
		SendSuccess(c, http.StatusOK, "", []string{})
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["data"])

	_, body = run(t, func(c *gin.Context) {
		SendSuccess(c, http.StatusOK, "", nil)
	})
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestSendErrorAndValidation(t *testing.T) {
	code, body := run(t, func(c *gin.Context) { ServiceUnavailable(c, "") })
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Storage is temporarily unavailable", body["error"])

	code, body = run(t, func(c *gin.Context) {
		SendValidationError(c, map[string]string{"Name": "required"})
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]any{"Name": "required"}, body["errors"])
}
