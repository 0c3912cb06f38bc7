package livematch

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type substitution struct {
	pattern *regexp.Regexp
	repl    string
}

// applied in order
var substitutions = []substitution{
	{regexp.MustCompile(`(?i)\bfour\b`), "FOUR!"},
	{regexp.MustCompile(`(?i)\bsix\b`), "SIX!"},
	{regexp.MustCompile(`(?i)\bwicket\b`), "WICKET!"},
	{regexp.MustCompile(`(?i)\bout\b`), "OUT!"},
	{regexp.MustCompile(`(?i)\bfifty\b`), "FIFTY!"},
	{regexp.MustCompile(`(?i)\bcentury\b`), "CENTURY!"},
	{regexp.MustCompile(`(?i)\bhundred\b`), "CENTURY!"},
}

const (
	prefixPowerplay = "⚡ Powerplay action! "
	prefixDeath     = "🔥 Death overs drama! "
	prefixHalfway   = "📊 Halfway mark! "

	suffixShot      = " What a shot! The crowd is on their feet!"
	suffixWicket    = " Crucial breakthrough for the bowling side!"
	suffixMilestone = " Magnificent innings! The player raises the bat to acknowledge the crowd!"
)

// Enhance dresses up raw commentary for display. It is pure: the same input
// always gives the same output.
func Enhance(raw string, over float64) string {
	text := strings.TrimSpace(raw)
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllLiteralString(text, s.repl)
	}

	var prefix string
	switch {
	case over <= 6:
		prefix = prefixPowerplay
	case over >= 16:
		prefix = prefixDeath
	case over == 10:
		prefix = prefixHalfway
	}

	var suffix string
	switch {
	case strings.Contains(text, "SIX!") || strings.Contains(text, "FOUR!"):
		suffix = suffixShot
	case strings.Contains(text, "WICKET!") || strings.Contains(text, "OUT!"):
		suffix = suffixWicket
	case strings.Contains(text, "FIFTY!") || strings.Contains(text, "CENTURY!"):
		suffix = suffixMilestone
	}
	return prefix + text + suffix
}

// FormatTimeAgo renders a millisecond timestamp relative to now: "Just now"
// under a minute, "N mins ago" under an hour, else the wall-clock time in loc.
func FormatTimeAgo(ts int64, now time.Time, loc *time.Location) string {
	at := time.UnixMilli(ts)
	diff := now.Sub(at)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		mins := int(diff / time.Minute)
		if mins == 1 {
			return "1 min ago"
		}
		return fmt.Sprintf("%d mins ago", mins)
	default:
		if loc == nil {
			loc = time.UTC
		}
		return at.In(loc).Format("03:04 PM")
	}
}

// Views prepares commentary for display, keeping the given order.
func Views(items []Commentary, enhanced bool, now time.Time, loc *time.Location) []CommentaryView {
	out := make([]CommentaryView, 0, len(items))
	for _, item := range items {
		v := CommentaryView{Commentary: item, TimeAgo: FormatTimeAgo(item.Timestamp, now, loc)}
		if enhanced {
			v.Enhanced = Enhance(item.Text, float64(item.Over))
		}
		out = append(out, v)
	}
	return out
}
