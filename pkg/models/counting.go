package models

// UserCountStats acumula los aciertos y fallos de un usuario en el
// juego de contar.
type UserCountStats struct {
	Correct int `json:"correct"`
	Failed  int `json:"failed"`
}

// CountingState representa el estado del juego de contar de un servidor.
// Invariante: CurrentNumber <= HighScore después de cada acierto.
type CountingState struct {
	ChannelID     string                     `json:"channel_id"`
	CurrentNumber int                        `json:"current_number"`
	LastUserID    string                     `json:"last_user_id"`
	HighScore     int                        `json:"high_score"`
	TotalCounts   int                        `json:"total_counts"`
	UserStats     map[string]*UserCountStats `json:"user_stats"`
}

// NewCountingState creates an empty state bound to no channel
func NewCountingState() *CountingState {
	return &CountingState{
		UserStats: make(map[string]*UserCountStats),
	}
}

// StatsFor returns the stats entry for a user, creating it if needed
func (c *CountingState) StatsFor(userID string) *UserCountStats {
	if c.UserStats == nil {
		c.UserStats = make(map[string]*UserCountStats)
	}
	stats, ok := c.UserStats[userID]
	if !ok {
		stats = &UserCountStats{}
		c.UserStats[userID] = stats
	}
	return stats
}
