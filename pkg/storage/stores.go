package storage

import (
	"path/filepath"

	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
)

// File names inside the data directory, fixed by the persisted format
const (
	warningsFile   = "warnings.json"
	countingFile   = "counting_channels.json"
	quarantineFile = "quarantine_channels.json"
)

// WarnStore maps userId -> ordered warning records
type WarnStore = JSONStore[[]models.WarningRecord]

// CountingStore maps guildId -> counting game state
type CountingStore = JSONStore[*models.CountingState]

// QuarantineStore maps guildId -> quarantine configuration
type QuarantineStore = JSONStore[*models.QuarantineConfig]

// NewWarnStore creates the warnings store under dataDir
func NewWarnStore(dataDir string) *WarnStore {
	return NewJSONStore[[]models.WarningRecord](filepath.Join(dataDir, warningsFile), false)
}

// NewCountingStore creates the counting store under dataDir
func NewCountingStore(dataDir string) *CountingStore {
	return NewJSONStore[*models.CountingState](filepath.Join(dataDir, countingFile), false)
}

// NewQuarantineStore creates the quarantine store under dataDir.
// This one repairs a corrupt file by rewriting it empty.
func NewQuarantineStore(dataDir string) *QuarantineStore {
	return NewJSONStore[*models.QuarantineConfig](filepath.Join(dataDir, quarantineFile), true)
}

// global stores for shared documents
var (
	GlobalWarnStore       *WarnStore
	GlobalCountingStore   *CountingStore
	GlobalQuarantineStore *QuarantineStore
)

// InitGlobalStores initializes the shared store instances
func InitGlobalStores(dataDir string) {
	GlobalWarnStore = NewWarnStore(dataDir)
	GlobalCountingStore = NewCountingStore(dataDir)
	GlobalQuarantineStore = NewQuarantineStore(dataDir)
}
