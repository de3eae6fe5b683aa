package moderation

import (
	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

// Guard mantiene la configuración de cuarentena por servidor y el
// contador de baneos automáticos.
type Guard struct {
	store *storage.QuarantineStore
}

// NewGuard creates a guard backed by the given store
func NewGuard(store *storage.QuarantineStore) *Guard {
	return &Guard{store: store}
}

func (g *Guard) config(guildID string) *models.QuarantineConfig {
	doc, err := g.store.Load()
	if err != nil {
		return nil
	}
	return doc[guildID]
}

// IsQuarantineChannel reports whether the channel is flagged for the guild
func (g *Guard) IsQuarantineChannel(guildID, channelID string) bool {
	cfg := g.config(guildID)
	return cfg != nil && cfg.HasChannel(channelID)
}

// AddChannel flags a channel as quarantine for the guild.
// Returns false when the channel was already flagged.
func (g *Guard) AddChannel(guildID, channelID string) (bool, error) {
	added := false
	err := g.store.Update(func(doc map[string]*models.QuarantineConfig) (bool, error) {
		cfg, ok := doc[guildID]
		if !ok {
			cfg = &models.QuarantineConfig{}
			doc[guildID] = cfg
		}
		added = cfg.AddChannel(channelID)
		return added, nil
	})
	return added, err
}

// SetLogChannel sets the audit log channel for the guild
func (g *Guard) SetLogChannel(guildID, channelID string) error {
	return g.store.Update(func(doc map[string]*models.QuarantineConfig) (bool, error) {
		cfg, ok := doc[guildID]
		if !ok {
			cfg = &models.QuarantineConfig{}
			doc[guildID] = cfg
		}
		cfg.LogChannelID = channelID
		return true, nil
	})
}

// LogChannel returns the configured log channel, or "" when unset
func (g *Guard) LogChannel(guildID string) string {
	cfg := g.config(guildID)
	if cfg == nil {
		return ""
	}
	return cfg.LogChannelID
}

// RecordAutoBan increments and persists the guild's ban counter,
// returning the new value
func (g *Guard) RecordAutoBan(guildID string) (int, error) {
	count := 0
	err := g.store.Update(func(doc map[string]*models.QuarantineConfig) (bool, error) {
		cfg, ok := doc[guildID]
		if !ok {
			cfg = &models.QuarantineConfig{}
			doc[guildID] = cfg
		}
		cfg.BanCount++
		count = cfg.BanCount
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// BanCount returns the guild's current auto-ban counter
func (g *Guard) BanCount(guildID string) int {
	cfg := g.config(guildID)
	if cfg == nil {
		return 0
	}
	return cfg.BanCount
}
