package livematch

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
)

const (
	MomentWicket    = "wicket"
	MomentFour      = "four"
	MomentSix       = "six"
	MomentMilestone = "milestone"

	// MaxOver is the last over of a T20 innings.
	MaxOver = 20
)

// Commentary is one ball-by-ball line. Stored text is never rewritten;
// Enhance works on a copy.
type Commentary struct {
	ID        models.FlexString `json:"id"`
	Over      models.FlexFloat  `json:"over"`
	Text      string            `json:"text"`
	Timestamp int64             `json:"timestamp"`
}

type KeyMoment struct {
	ID          models.FlexString `json:"id"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Over        models.FlexFloat  `json:"over"`
	Timestamp   int64             `json:"timestamp"`
}

type CommentaryRequest struct {
	Over models.FlexFloat `json:"over" binding:"gte=0,lte=20"`
	Text string           `json:"text" binding:"required,max=500"`
}

type MomentRequest struct {
	Type        string           `json:"type" binding:"required,oneof=wicket four six milestone"`
	Description string           `json:"description" binding:"required,max=300"`
	Over        models.FlexFloat `json:"over" binding:"gte=0,lte=20"`
}

type StatusRequest struct {
	IsLive *bool `json:"isLive" binding:"required"`
}

type MatchStats struct {
	PowerplayScore models.FlexString `json:"powerplayScore,omitempty"`
	Boundaries     models.FlexString `json:"boundaries,omitempty"`
	Partnership    models.FlexString `json:"partnership,omitempty"`
	WinProbability models.FlexString `json:"winProbability,omitempty"`
}

type Batter struct {
	Name       string            `json:"name"`
	Team       string            `json:"team,omitempty"`
	Stats      models.FlexString `json:"stats,omitempty"`
	Boundaries models.FlexString `json:"boundaries,omitempty"`
}

type Partnership struct {
	Batsman1 *Batter `json:"batsman1,omitempty"`
	Batsman2 *Batter `json:"batsman2,omitempty"`
}

type Bowler struct {
	Name  string            `json:"name"`
	Team  string            `json:"team,omitempty"`
	Stats models.FlexString `json:"stats,omitempty"`
}

// Insight decodes from a plain string or the older {"text": ...} object.
type Insight string

func (i *Insight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var legacy struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(b, &legacy); err != nil {
			return err
		}
		*i = Insight(legacy.Text)
		return nil
	}
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*i = ""
		return nil
	}
	*i = Insight(*s)
	return nil
}

// LiveMatch is the scoreboard document the admin keeps current.
type LiveMatch struct {
	FixtureID   string       `json:"fixtureId,omitempty"`
	Team1       string       `json:"team1" binding:"omitempty,max=5"`
	Team2       string       `json:"team2" binding:"omitempty,max=5"`
	IsLive      bool         `json:"isLive"`
	Score1      string       `json:"score1,omitempty"`
	Score2      string       `json:"score2,omitempty"`
	Stats       MatchStats   `json:"stats"`
	Partnership *Partnership `json:"partnership,omitempty"`
	Bowler      *Bowler      `json:"bowler,omitempty"`
	Insight     Insight      `json:"insight,omitempty"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// CommentaryView is a commentary item prepared for display.
type CommentaryView struct {
	Commentary
	Enhanced string `json:"enhanced,omitempty"`
	TimeAgo  string `json:"timeAgo"`
}
