package points

import (
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

// QualifyingSpots is how many teams at the top of the table qualify.
const QualifyingSpots = 4

// Entry is one admin-entered table row, in table order.
type Entry struct {
	Team    string           `json:"team" binding:"required"`
	Matches models.FlexInt   `json:"matches" binding:"gte=0"`
	Won     models.FlexInt   `json:"won" binding:"gte=0"`
	Lost    models.FlexInt   `json:"lost" binding:"gte=0"`
	Points  models.FlexInt   `json:"points" binding:"gte=0"`
	NRR     models.FlexFloat `json:"nrr"`
	Form    []string         `json:"form,omitempty" binding:"max=5"`
}

// Row is a stored points-table row.
type Row struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Qualified bool   `json:"qualified"`
	Entry
}

type ReplaceRequest struct {
	Points []Entry `json:"points" binding:"required,dive"`
}

// Build ranks entries by position, fills names and logos from the team
// list, and marks the top QualifyingSpots qualified.
func Build(entries []Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		e.Team = team.Normalize(e.Team)
		e.Form = normalizeForm(e.Form)
		r := Row{Rank: i + 1, Name: team.Name(e.Team), Qualified: i < QualifyingSpots, Entry: e}
		if t, ok := team.Lookup(e.Team); ok {
			r.Logo = t.Logo
		}
		rows = append(rows, r)
	}
	return rows
}

func normalizeForm(form []string) []string {
	if len(form) == 0 {
		return nil
	}
	out := make([]string, 0, len(form))
	for _, f := range form {
		out = append(out, strings.ToUpper(strings.TrimSpace(f)))
	}
	return out
}

// Validate checks team codes, duplicates and won/lost against matches.
func Validate(entries []Entry) map[string]string {
	errs := make(map[string]string)
	seen := make(map[string]int)
	for i, e := range entries {
		prefix := fmt.Sprintf("points[%d].", i)
		code := team.Normalize(e.Team)
		if !team.IsKnown(code) {
			errs[prefix+"team"] = fmt.Sprintf("unknown team %q", e.Team)
		} else if j, dup := seen[code]; dup {
			errs[prefix+"team"] = fmt.Sprintf("%s already listed at row %d", code, j+1)
		}
		seen[code] = i
		if e.Won+e.Lost > e.Matches {
			errs[prefix+"matches"] = "won plus lost cannot exceed matches"
		}
		for _, f := range normalizeForm(e.Form) {
			switch f {
			case "W", "L", "N":
			default:
				errs[prefix+"form"] = "form entries must be W, L or N"
			}
		}
	}
	return errs
}
