package pages

import (
	"strings"
	"unicode/utf8"

	"github.com/DhavalSuthar-24/crickethub/internal/fixture"
	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/player"
	"github.com/DhavalSuthar-24/crickethub/internal/points"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

// MaxMoments is how many key moments the live page shows.
const MaxMoments = 5

type Layout struct {
	Title  string
	Active string
}

type TeamCard struct {
	team.Team
	PlayerCount int
}

type HomePage struct {
	Layout
	Teams        []TeamCard
	TotalPlayers int
	FixtureCount int
	Next         *fixture.View
	Unavailable  bool
}

type RoleGroup struct {
	Role    string
	Players []player.Player
}

type TeamPage struct {
	Layout
	Team        team.Team
	Groups      []RoleGroup
	Unavailable bool
}

type FixturesPage struct {
	Layout
	Fixtures    []fixture.View
	Status      string
	Statuses    []string
	Unavailable bool
}

type PointsPage struct {
	Layout
	Rows        []points.Row
	Unavailable bool
}

type CommentView struct {
	Author  string
	Initial string
	Text    string
	TimeAgo string
}

type LivePage struct {
	Layout
	IsLive                bool
	Match                 *livematch.LiveMatch
	Next                  *fixture.View
	Commentary            []livematch.CommentaryView
	CommentaryUnavailable bool
	Moments               []livematch.KeyMoment
	Comments              []CommentView
	CommentsUnavailable   bool
}

// groupByRole buckets players in roster order. Players whose role is not
// recognised are listed last under "Player".
func groupByRole(players []player.Player) []RoleGroup {
	byRole := make(map[string][]player.Player)
	for _, p := range players {
		role := player.NormalizeRole(p.Role)
		known := false
		for _, r := range player.Roles {
			if r == role {
				known = true
				break
			}
		}
		if !known {
			role = "Player"
		}
		byRole[role] = append(byRole[role], p)
	}

	var groups []RoleGroup
	for _, r := range append(append([]string{}, player.Roles...), "Player") {
		if ps := byRole[r]; len(ps) > 0 {
			groups = append(groups, RoleGroup{Role: r, Players: captainsFirst(ps)})
		}
	}
	return groups
}

func captainsFirst(ps []player.Player) []player.Player {
	out := make([]player.Player, 0, len(ps))
	for _, p := range ps {
		if p.IsCaptain {
			out = append(out, p)
		}
	}
	for _, p := range ps {
		if !p.IsCaptain && p.IsViceCaptain {
			out = append(out, p)
		}
	}
	for _, p := range ps {
		if !p.IsCaptain && !p.IsViceCaptain {
			out = append(out, p)
		}
	}
	return out
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}
