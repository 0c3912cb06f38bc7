package team

import "strings"

// Team is one of the ten franchises. The list is fixed and never written.
type Team struct {
	ID      int      `json:"id"`
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Color   string   `json:"color"`
	Logo    string   `json:"logo"`
	Aliases []string `json:"-"`
}

var teams = []Team{
	{ID: 1, Code: "CSK", Name: "Chennai Super Kings", City: "Chennai", Color: "#FDB913", Logo: "assets/csk_logo_new.svg", Aliases: []string{"chennai"}},
	{ID: 2, Code: "MI", Name: "Mumbai Indians", City: "Mumbai", Color: "#004BA0", Logo: "assets/mi_logo_new.svg", Aliases: []string{"mumbai"}},
	{ID: 3, Code: "RCB", Name: "Royal Challengers Bangalore", City: "Bangalore", Color: "#EC1C24", Logo: "assets/rcb_logo_new.svg", Aliases: []string{"bangalore", "bengaluru"}},
	{ID: 4, Code: "KKR", Name: "Kolkata Knight Riders", City: "Kolkata", Color: "#3A225D", Logo: "assets/kkr_logo_new.svg", Aliases: []string{"kolkata"}},
	{ID: 5, Code: "DC", Name: "Delhi Capitals", City: "Delhi", Color: "#004C93", Logo: "assets/dc_logo_new.svg", Aliases: []string{"delhi"}},
	{ID: 6, Code: "SRH", Name: "Sunrisers Hyderabad", City: "Hyderabad", Color: "#FF822A", Logo: "assets/srh_logo_new.svg", Aliases: []string{"hyderabad"}},
	{ID: 7, Code: "RR", Name: "Rajasthan Royals", City: "Jaipur", Color: "#254AA5", Logo: "assets/rr_logo_new.svg", Aliases: []string{"rajasthan", "jaipur"}},
	{ID: 8, Code: "PBKS", Name: "Punjab Kings", City: "Mohali", Color: "#DD1F2D", Logo: "assets/kxip_logo_new.svg", Aliases: []string{"punjab", "mohali"}},
	{ID: 9, Code: "GT", Name: "Gujarat Titans", City: "Ahmedabad", Color: "#1C2F52", Logo: "assets/gt_logo_new.svg", Aliases: []string{"gujarat", "ahmedabad"}},
	{ID: 10, Code: "LSG", Name: "Lucknow Super Giants", City: "Lucknow", Color: "#0093D2", Logo: "assets/lsg_logo_new.svg", Aliases: []string{"lucknow"}},
}

// legacy spellings still found in stored documents
var codeAliases = map[string]string{
	"PBSK": "PBKS",
	"KXIP": "PBKS",
}

// All returns a copy of the team list in display order.
func All() []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

// Normalize upper-cases a team code and resolves legacy aliases.
// Unknown codes are returned upper-cased.
func Normalize(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := codeAliases[c]; ok {
		return alias
	}
	return c
}

func Lookup(code string) (Team, bool) {
	c := Normalize(code)
	for _, t := range teams {
		if t.Code == c {
			return t, true
		}
	}
	return Team{}, false
}

func IsKnown(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Name returns the full name for code, or the code itself when unknown.
func Name(code string) string {
	if t, ok := Lookup(code); ok {
		return t.Name
	}
	return Normalize(code)
}

// Mentioned lists the teams referred to in free text by code or city, in list order.
func Mentioned(text string) []Team {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	var found []Team
	for _, t := range teams {
		hit := wordSet[strings.ToLower(t.Code)]
		for _, a := range t.Aliases {
			if strings.Contains(lower, a) {
				hit = true
			}
		}
		if hit {
			found = append(found, t)
		}
	}
	return found
}
