package community

import (
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

// matched as substrings of the lower-cased text
var matchKeywords = []string{
	"match", "cricket", "ipl", "player", "team", "run", "wicket", "ball", "over",
	"bat", "bowl", "catch", "six", "four", "out", "score", "win", "lose",
	"rohit", "virat", "dhoni", "bumrah", "kohli", "sharma", "yadav",
	"powerplay", "death", "innings", "toss", "chase", "target", "captain", "fielding",
}

// IsMatchRelated reports whether text mentions cricket, a player, a team code
// or a team city. Short team codes must stand alone as words.
func IsMatchRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range matchKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	if len(team.Mentioned(text)) > 0 {
		return true
	}
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool { return r < 'a' || r > 'z' }) {
		if w == "pbsk" || w == "kxip" {
			return true
		}
	}
	return false
}
