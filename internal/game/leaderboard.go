package game

import "sort"

// HighScore is one leaderboard row.
type HighScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Date   string `json:"date"`
	IsUser bool   `json:"isUser,omitempty"`
}

// LeaderboardSize caps the merged leaderboard.
const LeaderboardSize = 10

// MergeLeaderboard folds the player's persisted best (may be nil when
// nothing has been saved yet) into the fixed reference entries and returns
// the top rows, score descending. Ties keep insertion order, so reference
// entries rank ahead of an equal personal best.
func MergeLeaderboard(refs []HighScore, personal *HighScore) []HighScore {
	merged := make([]HighScore, 0, len(refs)+1)
	merged = append(merged, refs...)
	if personal != nil {
		merged = append(merged, *personal)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > LeaderboardSize {
		merged = merged[:LeaderboardSize]
	}
	return merged
}
