package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/community"
	"github.com/DhavalSuthar-24/crickethub/internal/fixture"
	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/player"
	"github.com/DhavalSuthar-24/crickethub/internal/points"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/internal/store/storetest"
	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type site struct {
	router *gin.Engine
	flaky  *storetest.Flaky
	src    Sources
	clock  *clockwork.FakeClock
}

func newSite(t *testing.T) *site {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Match.Timezone = "Asia/Kolkata"
	cfg.Match.DurationHours = 4

	// 20:00 IST
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 12, 14, 30, 0, 0, time.UTC))
	flaky := storetest.NewFlaky(store.NewMemoryStore())
	src := Sources{
		Players:   player.NewPlayerRepository(flaky),
		Fixtures:  fixture.NewFixtureRepository(flaky),
		Points:    points.NewPointsRepository(flaky),
		LiveMatch: livematch.NewLiveMatchRepository(flaky, clock),
		Community: community.NewCommunityRepository(flaky, clock),
	}
	r := gin.New()
	RegisterPageRoutes(r, src, cfg, clock)
	return &site{router: r, flaky: flaky, src: src, clock: clock}
}

func (s *site) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := s.src.Players.Save(ctx, "csk", []player.Player{
		{Name: "Ruturaj Gaikwad", Role: player.RoleBatsman, IsCaptain: true, Nationality: "Indian"},
		{Name: "MS Dhoni", Role: player.RoleWicketKeeper, Nationality: "Indian"},
		{Name: "Matheesha Pathirana", Role: player.RoleBowler, Nationality: "Sri Lankan", IsViceCaptain: true},
		{Name: "Shivam Dube", Role: player.RoleBatsman, Nationality: "Indian"},
	}, true)
	require.NoError(t, err)

	_, err = s.src.Fixtures.ReplaceAll(ctx, []fixture.Fixture{
		{Date: "2025-04-12", Time: "19:30", Team1: "MI", Team2: "CSK", Venue: "Wankhede Stadium"},
		{Date: "2025-04-14", Time: "19:30", Team1: "RCB", Team2: "KKR", Venue: "Chinnaswamy"},
		{Date: "2025-04-13", Time: "15:30", Team1: "GT", Team2: "RR", Venue: "Narendra Modi Stadium"},
	})
	require.NoError(t, err)

	_, err = s.src.Points.Replace(ctx, []points.Entry{
		{Team: "GT", Matches: 5, Won: 4, Lost: 1, Points: 8, NRR: 0.42, Form: []string{"W", "W", "L"}},
		{Team: "MI", Matches: 5, Won: 3, Lost: 2, Points: 6, NRR: -0.1},
		{Team: "CSK", Matches: 5, Won: 3, Lost: 2, Points: 6},
		{Team: "RR", Matches: 5, Won: 2, Lost: 3, Points: 4},
		{Team: "KKR", Matches: 5, Won: 1, Lost: 4, Points: 2},
	})
	require.NoError(t, err)
}

func (s *site) get(t *testing.T, path string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestHomePage(t *testing.T) {
	s := newSite(t)
	s.seed(t)

	w, doc := s.get(t, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, doc.Find(".team-card").Length())
	assert.Equal(t, "4 players", doc.Find(`.team-card[data-code="CSK"] .squad-size`).Text())
	assert.Equal(t, "4", doc.Find(".player-count").Text())
	assert.Equal(t, "3", doc.Find(".fixture-count").Text())
	assert.Equal(t, "Gujarat Titans", doc.Find(".next-match .team1").Text())
	assert.Equal(t, 0, doc.Find(".placeholder").Length())
}

func TestTeamPage(t *testing.T) {
	s := newSite(t)
	s.seed(t)

	w, doc := s.get(t, "/teams/csk")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chennai Super Kings | IPL Cricket Hub", doc.Find("title").Text())

	var roles []string
	doc.Find(".role-group").Each(func(_ int, sel *goquery.Selection) {
		role, _ := sel.Attr("data-role")
		roles = append(roles, role)
	})
	assert.Equal(t, []string{player.RoleBatsman, player.RoleWicketKeeper, player.RoleBowler}, roles)

	batsmen := doc.Find(`.role-group[data-role="Batsman"] .player .name`)
	assert.Equal(t, "Ruturaj Gaikwad", batsmen.First().Text())
	assert.Equal(t, 1, doc.Find(".badge.captain").Length())
	assert.Equal(t, 1, doc.Find(".badge.vice-captain").Length())
	assert.Equal(t, 1, doc.Find(".badge.overseas").Length())

	w, doc = s.get(t, "/teams/xyz")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, doc.Find(".placeholder").Text(), "could not find")

	_, doc = s.get(t, "/teams/LSG")
	assert.Equal(t, "No players added yet.", doc.Find(".placeholder").Text())
}

func TestFixturesPageFilters(t *testing.T) {
	s := newSite(t)
	s.seed(t)

	_, doc := s.get(t, "/fixtures")
	assert.Equal(t, 3, doc.Find(".fixture-card").Length())

	_, doc = s.get(t, "/fixtures?status=live")
	cards := doc.Find(".fixture-card")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "live", cards.Find(".status-badge").Text())
	assert.Equal(t, "Mumbai Indians", cards.Find(".team1").Text())
	assert.Equal(t, "live", doc.Find(".status-filter a.active").Text())

	_, doc = s.get(t, "/fixtures?status=cancelled")
	assert.Equal(t, "No fixtures to show.", doc.Find(".placeholder").Text())
}

func TestPointsPage(t *testing.T) {
	s := newSite(t)

	_, doc := s.get(t, "/points")
	assert.Equal(t, "The points table has not been published yet.", doc.Find(".placeholder").Text())

	s.seed(t)
	_, doc = s.get(t, "/points")
	rows := doc.Find(".points-table tbody tr")
	require.Equal(t, 5, rows.Length())
	assert.Equal(t, 4, doc.Find("tr.qualified").Length())
	assert.Equal(t, "+0.420", rows.First().Find(".nrr").Text())
	assert.Equal(t, "-0.100", rows.Eq(1).Find(".nrr").Text())
	assert.Equal(t, 3, rows.First().Find(".form span").Length())
}

func TestLivePage(t *testing.T) {
	s := newSite(t)
	s.seed(t)
	ctx := context.Background()

	_, err := s.src.LiveMatch.AddCommentary(ctx, livematch.CommentaryRequest{Over: 17, Text: "six over long off"})
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err := s.src.LiveMatch.AddMoment(ctx, livematch.MomentRequest{Type: livematch.MomentFour, Description: "cracking drive", Over: 3})
		require.NoError(t, err)
	}
	_, err = s.src.Community.PostComment(ctx, community.CommentRequest{Name: "meera", Email: "meera@example.com", Text: "What a finish by Dhoni"})
	require.NoError(t, err)

	_, doc := s.get(t, "/live")
	assert.Equal(t, 1, doc.Find(".off-air").Length())
	assert.Equal(t, "Gujarat Titans", doc.Find(".upcoming-match .team1").Text())
	assert.Equal(t, "🔥 Death overs drama! SIX! over long off What a shot! The crowd is on their feet!",
		doc.Find(".commentary-item .commentary-text").First().Text())
	assert.Equal(t, "Just now", doc.Find(".commentary-item .commentary-time").First().Text())
	assert.Equal(t, MaxMoments, doc.Find(".moment").Length())
	assert.Equal(t, "M", doc.Find(".comment-avatar").First().Text())
	assert.Equal(t, "1", doc.Find("#commentsCount").Text())

	container := doc.Find("#commentaryContainer")
	stream, _ := container.Attr("data-stream")
	assert.Equal(t, "/live/stream", stream)
	assert.Equal(t, 1, container.Find(".commentary-list .commentary-item").Length())
	_, hidden := doc.Find("#newCommentaryNotification").Attr("hidden")
	assert.True(t, hidden)
	script := doc.Find("script#liveFeed").Text()
	assert.Contains(t, script, "new EventSource(container.dataset.stream)")
	for _, event := range []string{`"session"`, `"render"`, `"banner"`} {
		assert.Contains(t, script, "addEventListener("+event)
	}
	assert.Contains(t, script, `"/dismiss"`)

	_, err = s.src.LiveMatch.Save(ctx, livematch.LiveMatch{Team1: "MI", Team2: "CSK", IsLive: true, Score1: "182/4", Insight: "Dew is setting in"})
	require.NoError(t, err)
	_, doc = s.get(t, "/live")
	assert.Equal(t, "LIVE", doc.Find(".live-indicator").Text())
	assert.Contains(t, doc.Find(".score").First().Text(), "182/4")
	assert.Equal(t, "Dew is setting in", doc.Find(".insight").Text())
	assert.Equal(t, 0, doc.Find(".upcoming-match").Length())
}

func TestPagesSurviveStoreOutage(t *testing.T) {
	s := newSite(t)
	s.seed(t)
	s.flaky.SetDown(true)

	for _, path := range []string{"/", "/teams/CSK", "/fixtures", "/points", "/live"} {
		t.Run(path, func(t *testing.T) {
			w, doc := s.get(t, path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotZero(t, doc.Find(".placeholder").Length())
		})
	}

	_, doc := s.get(t, "/live")
	assert.Contains(t, doc.Find(".commentary .placeholder").Text(), "temporarily unavailable")
}
