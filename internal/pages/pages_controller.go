package pages

import (
	"net/http"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/community"
	"github.com/DhavalSuthar-24/crickethub/internal/fixture"
	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/internal/player"
	"github.com/DhavalSuthar-24/crickethub/internal/points"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// Sources are the repositories the pages read from.
type Sources struct {
	Players   player.PlayerRepository
	Fixtures  fixture.FixtureRepository
	Points    points.PointsRepository
	LiveMatch livematch.LiveMatchRepository
	Community community.CommunityRepository
}

// PageController renders HTML. A failed read degrades to a placeholder on
// the page; it never turns into an error status.
type PageController struct {
	src    Sources
	policy fixture.StatusPolicy
	loc    *time.Location
	clock  clockwork.Clock
}

func NewPageController(src Sources, appConfig *config.Config, clock clockwork.Clock) *PageController {
	return &PageController{
		src:    src,
		policy: fixture.PolicyFromConfig(appConfig),
		loc:    appConfig.MatchLocation(),
		clock:  clock,
	}
}

func (pc *PageController) fixtureViews(c *gin.Context) ([]fixture.View, bool) {
	fixtures, err := pc.src.Fixtures.List(c.Request.Context())
	if err != nil {
		logger.Error("pages: failed to load fixtures: %v", err)
		return nil, false
	}
	return fixture.Views(fixtures, pc.clock.Now(), pc.policy), true
}

func (pc *PageController) Home(c *gin.Context) {
	page := HomePage{Layout: Layout{Title: "IPL Teams", Active: "home"}}

	counts, err := pc.src.Players.CountAll(c.Request.Context())
	if err != nil {
		logger.Error("pages: failed to count players: %v", err)
		page.Unavailable = true
	}
	for _, t := range team.All() {
		page.Teams = append(page.Teams, TeamCard{Team: t, PlayerCount: counts[t.Code]})
		page.TotalPlayers += counts[t.Code]
	}

	views, ok := pc.fixtureViews(c)
	if !ok {
		page.Unavailable = true
	}
	page.FixtureCount = len(views)
	page.Next = fixture.Next(views)

	c.HTML(http.StatusOK, "home", page)
}

func (pc *PageController) Team(c *gin.Context) {
	t, ok := team.Lookup(c.Param("code"))
	if !ok {
		c.HTML(http.StatusNotFound, "notfound", Layout{Title: "Team not found", Active: "home"})
		return
	}
	page := TeamPage{Layout: Layout{Title: t.Name, Active: "home"}, Team: t}

	players, err := pc.src.Players.List(c.Request.Context(), t.Code)
	if err != nil {
		logger.Error("pages: failed to load %s squad: %v", t.Code, err)
		page.Unavailable = true
	}
	page.Groups = groupByRole(players)

	c.HTML(http.StatusOK, "team", page)
}

func (pc *PageController) Fixtures(c *gin.Context) {
	status := strings.ToLower(c.Query("status"))
	page := FixturesPage{
		Layout: Layout{Title: "Fixtures", Active: "fixtures"},
		Status: status,
		Statuses: []string{
			fixture.StatusUpcoming, fixture.StatusLive, fixture.StatusCompleted,
			fixture.StatusCancelled, fixture.StatusPostponed,
		},
	}
	views, ok := pc.fixtureViews(c)
	page.Unavailable = !ok
	page.Fixtures = fixture.Filter(views, status)

	c.HTML(http.StatusOK, "fixtures", page)
}

func (pc *PageController) Points(c *gin.Context) {
	page := PointsPage{Layout: Layout{Title: "Points Table", Active: "points"}}
	rows, err := pc.src.Points.List(c.Request.Context())
	if err != nil {
		logger.Error("pages: failed to load points table: %v", err)
		page.Unavailable = true
	}
	page.Rows = rows

	c.HTML(http.StatusOK, "points", page)
}

func (pc *PageController) Live(c *gin.Context) {
	ctx := c.Request.Context()
	now := pc.clock.Now()
	page := LivePage{Layout: Layout{Title: "Live Match Center", Active: "live"}}

	m, err := pc.src.LiveMatch.Get(ctx)
	if err != nil {
		logger.Error("pages: failed to load live match: %v", err)
	}
	if m != nil {
		page.Match = m
		page.IsLive = m.IsLive
	}
	if !page.IsLive {
		if views, ok := pc.fixtureViews(c); ok {
			page.Next = fixture.Next(views)
		}
	}

	items, err := pc.src.LiveMatch.ListCommentary(ctx)
	if err != nil {
		logger.Error("pages: failed to load commentary: %v", err)
		page.CommentaryUnavailable = true
	}
	page.Commentary = livematch.Views(items, true, now, pc.loc)

	moments, err := pc.src.LiveMatch.ListMoments(ctx)
	if err != nil {
		logger.Error("pages: failed to load key moments: %v", err)
	}
	if len(moments) > MaxMoments {
		moments = moments[:MaxMoments]
	}
	page.Moments = moments

	comments, err := pc.src.Community.ListComments(ctx, true)
	if err != nil {
		logger.Error("pages: failed to load comments: %v", err)
		page.CommentsUnavailable = true
	}
	for _, cm := range comments {
		page.Comments = append(page.Comments, CommentView{
			Author:  cm.Author,
			Initial: initial(cm.Author),
			Text:    cm.Text,
			TimeAgo: livematch.FormatTimeAgo(cm.Timestamp, now, pc.loc),
		})
	}

	c.HTML(http.StatusOK, "live", page)
}
