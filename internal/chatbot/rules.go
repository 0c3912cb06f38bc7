package chatbot

import (
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

const (
	fixturesReply = "📅 View all IPL fixtures here: [View Fixtures](/fixtures)\n\nYou can see upcoming matches, dates, venues, and times!"
	pointsReply   = "🏆 Check the IPL Points Table: [View Points Table](/points)\n\nSee team rankings, matches played, wins, losses, and net run rate!"
	liveReply     = "📊 Live Scores & Updates: [Live Match Updates](/live)\n\nGet real-time match scores, commentary, and key moments!"

	rulesReply  = "🏏 Cricket Basics:\n\n• Two teams of 11 players each\n• One team bats, other bowls\n• IPL matches are 20 overs per side\n• Goal: Score more runs than opponent\n• 6 balls = 1 over\n• Wickets: 10 ways to get out\n\nWant to know more? Ask about specific rules!"
	iplReply    = "🏆 Indian Premier League (IPL):\n\n• World's most popular T20 league\n• Started in 2008\n• 10 franchise teams\n• Played annually (March-May)\n• Features top international players\n• Entertainment + Cricket fusion\n\nCheck fixtures and live scores on our website!"
	playerReply = "👤 Player Information:\n\nI can help you find player stats! Try asking:\n• \"Tell me about [player name]\"\n• \"Who is the top scorer?\"\n• \"Best bowlers in IPL\"\n\nOr visit our team pages for detailed player profiles!"
	watchReply  = "📺 Watch IPL:\n\n• TV: Star Sports channels\n• Online: Disney+ Hotstar\n• Stadium: Check official IPL website for tickets\n• Live Updates: Right here on IPL Cricket Hub!\n\nOur website provides real-time scores and commentary!"
	helpReply   = "I'm here to help with IPL and cricket! Try asking me about:\n\n• 📅 Match fixtures and schedules\n• 🏆 Points table and team standings\n• 📊 Live scores and updates\n• 👥 Team information\n• 🏏 Cricket rules and insights\n• 📺 How to watch matches\n\nWhat would you like to know?"
)

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// contextReply answers questions about the site itself. Checked before anything else.
func contextReply(msg string) (string, bool) {
	switch {
	case containsAny(msg, "fixture", "schedule", "match"):
		return fixturesReply, true
	case containsAny(msg, "point", "standing", "table"):
		return pointsReply, true
	case containsAny(msg, "live", "score"):
		return liveReply, true
	case strings.Contains(msg, "team"):
		return teamsReply(), true
	}
	return "", false
}

func teamsReply() string {
	var b strings.Builder
	teams := team.All()
	fmt.Fprintf(&b, "👥 All IPL Teams: [View Teams](/)\n\n🏏 %d IPL Teams:", len(teams))
	for _, t := range teams {
		fmt.Fprintf(&b, "\n• %s (%s)", t.Name, t.Code)
	}
	return b.String()
}

// knowledgeReply is the last resort and always answers.
func knowledgeReply(msg string) string {
	switch {
	case containsAny(msg, "rule", "how to play"):
		return rulesReply
	case strings.Contains(msg, "ipl") && strings.Contains(msg, "what"):
		return iplReply
	case containsAny(msg, "player", "virat", "dhoni"):
		return playerReply
	case containsAny(msg, "ticket", "watch", "how to see"):
		return watchReply
	default:
		return helpReply
	}
}
