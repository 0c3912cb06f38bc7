package fixture

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusPostponed = "postponed"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Fixture is one scheduled match. Status is never stored; see DeriveStatus.
type Fixture struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Venue string `json:"venue"`
	// Override is set by an admin for matches that will not be played on schedule.
	Override string `json:"override,omitempty"`
}

// UnmarshalJSON normalises team codes and turns a legacy stored status of
// cancelled/postponed into an override. Other legacy statuses are dropped.
func (f *Fixture) UnmarshalJSON(b []byte) error {
	type canonical Fixture
	var aux struct {
		canonical
		Status string `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*f = Fixture(aux.canonical)
	f.Team1 = team.Normalize(f.Team1)
	f.Team2 = team.Normalize(f.Team2)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Override = strings.ToLower(strings.TrimSpace(f.Override))
	if f.Override == "" {
		switch s := strings.ToLower(strings.TrimSpace(aux.Status)); s {
		case StatusCancelled, StatusPostponed:
			f.Override = s
		}
	}
	return nil
}

// StatusPolicy fixes how kickoff times are read and how long a match lasts.
type StatusPolicy struct {
	Location *time.Location
	Duration time.Duration
}

// Kickoff parses date and time in the policy location.
func (p StatusPolicy) Kickoff(f Fixture) (time.Time, bool) {
	if f.Date == "" || f.Time == "" {
		return time.Time{}, false
	}
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, f.Date+" "+f.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DeriveStatus computes a fixture's status at now: upcoming before kickoff,
// live from kickoff through kickoff+Duration inclusive, completed after.
// An override wins; an unreadable date or time counts as upcoming.
func DeriveStatus(f Fixture, now time.Time, p StatusPolicy) string {
	if f.Override != "" {
		return f.Override
	}
	start, ok := p.Kickoff(f)
	if !ok {
		return StatusUpcoming
	}
	end := start.Add(p.Duration)
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusCompleted
	default:
		return StatusLive
	}
}

// View is a fixture as pages and API readers see it.
type View struct {
	Fixture
	MatchNumber int        `json:"matchNumber"`
	Status      string     `json:"status"`
	Team1Name   string     `json:"team1Name"`
	Team2Name   string     `json:"team2Name"`
	Team1Logo   string     `json:"team1Logo"`
	Team2Logo   string     `json:"team2Logo"`
	Kickoff     *time.Time `json:"kickoff,omitempty"`
}

const fallbackLogo = "assets/ipl_logo_new.svg"

func logo(code string) string {
	if t, ok := team.Lookup(code); ok {
		return t.Logo
	}
	return fallbackLogo
}

// Views decorates fixtures in stored order, numbering matches from 1.
func Views(fixtures []Fixture, now time.Time, p StatusPolicy) []View {
	views := make([]View, 0, len(fixtures))
	for i, f := range fixtures {
		v := View{
			Fixture:     f,
			MatchNumber: i + 1,
			Status:      DeriveStatus(f, now, p),
			Team1Name:   team.Name(f.Team1),
			Team2Name:   team.Name(f.Team2),
			Team1Logo:   logo(f.Team1),
			Team2Logo:   logo(f.Team2),
		}
		if k, ok := p.Kickoff(f); ok {
			v.Kickoff = &k
		}
		views = append(views, v)
	}
	return views
}

// Filter keeps views with the given status; an empty status keeps all.
func Filter(views []View, status string) []View {
	if status == "" || status == "all" {
		return views
	}
	out := make([]View, 0, len(views))
	for _, v := range views {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out
}

// Next returns the upcoming fixture with the earliest kickoff. Upcoming
// fixtures without a readable kickoff sort last.
func Next(views []View) *View {
	var upcoming []View
	for _, v := range views {
		if v.Status == StatusUpcoming {
			upcoming = append(upcoming, v)
		}
	}
	if len(upcoming) == 0 {
		return nil
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].Kickoff, upcoming[j].Kickoff
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return &upcoming[0]
}

// Validate returns field errors for f, keyed with prefix.
func Validate(f Fixture, prefix string) map[string]string {
	errs := make(map[string]string)
	if !team.IsKnown(f.Team1) {
		errs[prefix+"team1"] = fmt.Sprintf("unknown team %q", f.Team1)
	}
	if !team.IsKnown(f.Team2) {
		errs[prefix+"team2"] = fmt.Sprintf("unknown team %q", f.Team2)
	}
	if f.Team1 != "" && f.Team1 == f.Team2 {
		errs[prefix+"team2"] = "a team cannot play itself"
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		errs[prefix+"date"] = "date must be YYYY-MM-DD"
	}
	if _, err := time.Parse(TimeLayout, f.Time); err != nil {
		errs[prefix+"time"] = "time must be HH:MM (24h)"
	}
	switch f.Override {
	case "", StatusCancelled, StatusPostponed:
	default:
		errs[prefix+"override"] = "override must be cancelled or postponed"
	}
	return errs
}
