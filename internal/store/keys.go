package store

import "strings"

const (
	FixturesKey    = "fixtures"
	PointsTableKey = "points-table"
	LiveMatchKey   = "live-match"
	CommentaryKey  = "live-match:commentary"
	KeyMomentsKey  = "live-match:moments"
	UsersListKey   = "users-list"
	CommentsKey    = "comments"
	BlockedKey     = "blocked-users"

	playersPrefix = "players:"
	userPrefix    = "user:"
)

// PlayersKey is the bucket holding one team's squad. Team codes are upper-cased
// so "csk" and "CSK" address the same document.
func PlayersKey(team string) string {
	return playersPrefix + strings.ToUpper(strings.TrimSpace(team))
}

func UserKey(id string) string {
	return userPrefix + id
}
