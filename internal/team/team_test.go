package team

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticList(t *testing.T) {
	all := All()
	require.Len(t, all, 10)
	assert.Equal(t, "CSK", all[0].Code)

	all[0].Name = "changed"
	assert.Equal(t, "Chennai Super Kings", All()[0].Name)
}

func TestNormalizeAndLookup(t *testing.T) {
	assert.Equal(t, "PBKS", Normalize(" pbsk "))
	assert.Equal(t, "PBKS", Normalize("KXIP"))
	assert.Equal(t, "XYZ", Normalize("xyz"))

	mi, ok := Lookup("mi")
	require.True(t, ok)
	assert.Equal(t, "#004BA0", mi.Color)

	assert.False(t, IsKnown("XYZ"))
	assert.Equal(t, "Punjab Kings", Name("PBSK"))
	assert.Equal(t, "XYZ", Name("xyz"))
}

func TestMentioned(t *testing.T) {
	got := Mentioned("Will Mumbai beat CSK tonight?")
	require.Len(t, got, 2)
	assert.Equal(t, "CSK", got[0].Code)
	assert.Equal(t, "MI", got[1].Code)

	// "minute" must not be read as MI
	assert.Empty(t, Mentioned("last minute drama"))
}

func TestTeamRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterTeamRoutes(r.Group("/api"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/teams/rcb", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Royal Challengers Bangalore", body.Data.Name)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/teams/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
