package counting

import (
	"sort"
	"sync"

	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

// UserReport son las estadísticas derivadas de un usuario
type UserReport struct {
	Correct  int
	Failed   int
	Accuracy float64
}

// LeaderboardEntry is one row of the per-guild leaderboard
type LeaderboardEntry struct {
	UserID  string
	Correct int
	Failed  int
}

// UserStats returns the derived report for one user.
// The second return is false when the guild has no game set up.
func (g *Game) UserStats(guildID, userID string) (UserReport, bool) {
	doc, err := g.store.Load()
	if err != nil {
		return UserReport{}, false
	}

	state, ok := doc[guildID]
	if !ok {
		return UserReport{}, false
	}

	report := UserReport{}
	if stats, ok := state.UserStats[userID]; ok {
		report.Correct = stats.Correct
		report.Failed = stats.Failed
	}
	if total := report.Correct + report.Failed; total > 0 {
		report.Accuracy = float64(report.Correct) / float64(total) * 100
	}
	return report, true
}

// GuildStats returns a copy of the guild's full game state.
// The second return is false when the guild has no game set up.
func (g *Game) GuildStats(guildID string) (*models.CountingState, bool) {
	doc, err := g.store.Load()
	if err != nil {
		return nil, false
	}
	state, ok := doc[guildID]
	if !ok {
		return nil, false
	}
	return state, true
}

// Leaderboard returns up to limit entries sorted by correct count
// descending. Ties keep their collection order.
func (g *Game) Leaderboard(guildID string, limit int) []LeaderboardEntry {
	state, ok := g.GuildStats(guildID)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(state.UserStats))
	for id := range state.UserStats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]LeaderboardEntry, 0, len(ids))
	for _, id := range ids {
		stats := state.UserStats[id]
		entries = append(entries, LeaderboardEntry{UserID: id, Correct: stats.Correct, Failed: stats.Failed})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Correct > entries[j].Correct
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// singleton instance wired at startup
var (
	game *Game
	once sync.Once
)

// Init initializes the global counting game
func Init(store *storage.CountingStore) {
	once.Do(func() {
		game = NewGame(store)
	})
}

// GetGame returns the global counting game
func GetGame() *Game {
	return game
}
