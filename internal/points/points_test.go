package points

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	codes := []string{"gt", "CSK", "lsg", "RR", "RCB", "mi"}
	entries := make([]Entry, len(codes))
	for i, c := range codes {
		n := models.FlexInt(i)
		entries[i] = Entry{Team: c, Matches: 14, Won: 10 - n, Lost: 4 + n, Points: 20 - 2*n, NRR: models.FlexFloat(0.5 - 0.2*float64(i))}
	}
	return entries
}

func TestBuildRanksAndQualifies(t *testing.T) {
	rows := Build(sampleEntries())
	require.Len(t, rows, 6)

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "GT", rows[0].Team)
	assert.Equal(t, "Gujarat Titans", rows[0].Name)
	assert.Equal(t, "assets/gt_logo_new.svg", rows[0].Logo)
	assert.True(t, rows[3].Qualified)
	assert.False(t, rows[4].Qualified)
	assert.Equal(t, 6, rows[5].Rank)
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(sampleEntries()))

	errs := Validate([]Entry{
		{Team: "MI", Matches: 2, Won: 2, Lost: 1},
		{Team: "mi"},
		{Team: "XYZ", Form: []string{"w", "D"}},
	})
	assert.Contains(t, errs, "points[0].matches")
	assert.Contains(t, errs["points[1].team"], "already listed")
	assert.Contains(t, errs, "points[2].team")
	assert.Contains(t, errs, "points[2].form")
}

func TestRepositoryReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	repo := NewPointsRepository(store.NewMemoryStore())

	_, err := repo.Replace(ctx, sampleEntries())
	require.NoError(t, err)
	_, err = repo.Replace(ctx, []Entry{{Team: "KKR", Matches: 1, Won: 1, Points: 2, NRR: 1.25, Form: []string{"w"}}})
	require.NoError(t, err)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "KKR", rows[0].Team)
	assert.InDelta(t, 1.25, float64(rows[0].NRR), 1e-9)
	assert.Equal(t, []string{"W"}, rows[0].Form)

	require.NoError(t, repo.Clear(ctx))
	rows, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPointsEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterPointsRoutes(api, api.Group("/admin"), NewPointsRepository(store.NewMemoryStore()))

	send := func(method, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/admin/points", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = send(http.MethodPost, `{"points":[{"team":"MI","matches":"14","won":9,"lost":5,"points":18,"nrr":"0.42"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []Row `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Mumbai Indians", body.Data[0].Name)
	assert.True(t, body.Data[0].Qualified)

	assert.Equal(t, http.StatusBadRequest, send(http.MethodPost, `{"points":[{"team":"MI","matches":-1}]}`).Code)
	assert.Equal(t, http.StatusOK, send(http.MethodDelete, "").Code)
}
