package player

import (
	"encoding/json"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
)

const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All-rounder"
	RoleWicketKeeper = "Wicket-keeper"

	AllRounderBatting = "Batting"
	AllRounderBowling = "Bowling"
)

// Roles lists the roles in roster display order.
var Roles = []string{RoleBatsman, RoleWicketKeeper, RoleAllRounder, RoleBowler}

type Stats struct {
	Matches      models.FlexInt    `json:"matches"`
	Runs         models.FlexInt    `json:"runs"`
	Wickets      models.FlexInt    `json:"wickets"`
	Average      models.FlexFloat  `json:"average"`
	StrikeRate   models.FlexFloat  `json:"strikeRate"`
	Economy      models.FlexFloat  `json:"economy"`
	HighestScore models.FlexString `json:"highestScore,omitempty"`
	BestBowling  models.FlexString `json:"bestBowling,omitempty"`
}

func (s Stats) IsZero() bool { return s == Stats{} }

// Player is the canonical squad record stored in players:<TEAM>.
type Player struct {
	Name           string         `json:"name" binding:"required,max=80"`
	Role           string         `json:"role" binding:"omitempty,oneof=Batsman Bowler All-rounder Wicket-keeper"`
	AllRounderType string         `json:"allRounderType,omitempty" binding:"omitempty,oneof=Batting Bowling"`
	Age            models.FlexInt `json:"age,omitempty" binding:"gte=0,lte=60"`
	Nationality    string         `json:"nationality,omitempty"`
	BattingStyle   string         `json:"battingStyle,omitempty"`
	BowlingStyle   string         `json:"bowlingStyle,omitempty"`
	Image          string         `json:"image,omitempty"`
	IsCaptain      bool           `json:"isCaptain"`
	IsViceCaptain  bool           `json:"isViceCaptain"`
	IsForeign      bool           `json:"isForeign"`
	Stats          Stats          `json:"stats"`
}

// UnmarshalJSON accepts the field spellings older admin forms wrote
// ("batting style", "allrounder type", string ages, loose role names).
func (p *Player) UnmarshalJSON(b []byte) error {
	type canonical Player
	var aux struct {
		canonical
		LegacyBatting    string `json:"batting style"`
		LegacyBowling    string `json:"bowling style"`
		LegacyAllRounder string `json:"allrounder type"`
		LegacyCaptain    *bool  `json:"captain"`
		LegacyVice       *bool  `json:"viceCaptain"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*p = Player(aux.canonical)
	if p.BattingStyle == "" {
		p.BattingStyle = aux.LegacyBatting
	}
	if p.BowlingStyle == "" {
		p.BowlingStyle = aux.LegacyBowling
	}
	if p.AllRounderType == "" {
		p.AllRounderType = aux.LegacyAllRounder
	}
	if aux.LegacyCaptain != nil && !p.IsCaptain {
		p.IsCaptain = *aux.LegacyCaptain
	}
	if aux.LegacyVice != nil && !p.IsViceCaptain {
		p.IsViceCaptain = *aux.LegacyVice
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Role = NormalizeRole(p.Role)
	p.AllRounderType = normalizeAllRounderType(p.AllRounderType)
	return nil
}

// NormalizeRole maps spellings such as "batter", "all rounder" or "WK" to a
// canonical role. Unrecognised input is returned trimmed.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	r = strings.NewReplacer("-", "", " ", "", "_", "").Replace(r)
	switch r {
	case "batsman", "batter", "batsmen", "bat":
		return RoleBatsman
	case "bowler", "bowl":
		return RoleBowler
	case "allrounder", "ar":
		return RoleAllRounder
	case "wicketkeeper", "keeper", "wk", "wicketkeeperbatsman", "wkbatsman":
		return RoleWicketKeeper
	}
	return strings.TrimSpace(role)
}

func normalizeAllRounderType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "batting", "bat", "batting allrounder":
		return AllRounderBatting
	case "bowling", "bowl", "bowling allrounder":
		return AllRounderBowling
	}
	return strings.TrimSpace(t)
}

// identity is the merge key within a team bucket.
func identity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isForeign(nationality string) bool {
	n := strings.ToLower(strings.TrimSpace(nationality))
	return n != "" && n != "indian" && n != "india"
}

// SaveRequest is the body of POST /api/admin/players.
type SaveRequest struct {
	Team    string   `json:"team" binding:"required"`
	Players []Player `json:"players" binding:"required,dive"`
	// Replace discards players not present in the request.
	Replace bool `json:"replace"`
}
