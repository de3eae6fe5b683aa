// Package moderation provides the warning ledger with its escalation
// policy and the quarantine auto-ban guard. Both components are pure
// state transitions over their JSON stores; applying punishments and
// sending messages is left to the command and event handlers.
package moderation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

// Ledger acumula advertencias por usuario y deriva la acción de
// escalado del conteo resultante.
type Ledger struct {
	store *storage.WarnStore
}

// NewLedger creates a ledger backed by the given store
func NewLedger(store *storage.WarnStore) *Ledger {
	return &Ledger{store: store}
}

// AddWarning appends a new record to the user's sequence and returns the
// resulting total count. The write happens before any punishment is
// applied and is never rolled back.
func (l *Ledger) AddWarning(userID, moderatorID, reason, guildID string) (int, error) {
	record := models.WarningRecord{
		ID:          uuid.New().String(),
		ModeratorID: moderatorID,
		Reason:      reason,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		GuildID:     guildID,
	}

	count := 0
	err := l.store.Update(func(doc map[string][]models.WarningRecord) (bool, error) {
		doc[userID] = append(doc[userID], record)
		count = len(doc[userID])
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// RemoveWarnings removes the min(amount, n) most recent records and
// returns (removed, remaining). A user with no records yields (0, 0)
// without touching the file. Amount must already be validated positive
// at the command boundary.
func (l *Ledger) RemoveWarnings(userID string, amount int) (removed, remaining int, err error) {
	err = l.store.Update(func(doc map[string][]models.WarningRecord) (bool, error) {
		records := doc[userID]
		if len(records) == 0 {
			return false, nil
		}

		removed = amount
		if removed > len(records) {
			removed = len(records)
		}

		doc[userID] = records[:len(records)-removed]
		remaining = len(doc[userID])
		return true, nil
	})
	if err != nil {
		return 0, 0, err
	}
	return removed, remaining, nil
}

// ClearWarnings empties the user's sequence and returns the prior
// length. The key persists with an empty sequence; a user that never
// had warnings yields 0.
func (l *Ledger) ClearWarnings(userID string) (int, error) {
	oldCount := 0
	err := l.store.Update(func(doc map[string][]models.WarningRecord) (bool, error) {
		records, ok := doc[userID]
		if !ok || len(records) == 0 {
			return false, nil
		}
		oldCount = len(records)
		doc[userID] = []models.WarningRecord{}
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return oldCount, nil
}

// Warnings returns the user's records in insertion order
func (l *Ledger) Warnings(userID string) ([]models.WarningRecord, error) {
	doc, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return doc[userID], nil
}

// singleton instances wired at startup
var (
	ledger *Ledger
	guard  *Guard
	once   sync.Once
)

// Init initializes the global moderation components
func Init(warnStore *storage.WarnStore, quarantineStore *storage.QuarantineStore) {
	once.Do(func() {
		ledger = NewLedger(warnStore)
		guard = NewGuard(quarantineStore)
	})
}

// GetLedger returns the global warning ledger
func GetLedger() *Ledger {
	return ledger
}

// GetGuard returns the global quarantine guard
func GetGuard() *Guard {
	return guard
}
