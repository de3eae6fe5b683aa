package moderation

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(storage.NewWarnStore(t.TempDir()))
}

func TestAddWarningCounts(t *testing.T) {
	ledger := newTestLedger(t)

	for k := 1; k <= 5; k++ {
		count, err := ledger.AddWarning("user1", "mod1", fmt.Sprintf("razon %d", k), "guild1")
		if err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
		if count != k {
			t.Errorf("AddWarning() #%d count = %d, want %d", k, count, k)
		}
	}

	records, err := ledger.Warnings("user1")
	if err != nil {
		t.Fatalf("Warnings() returned error: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Warnings() returned %d records, want 5", len(records))
	}

	// Records keep call order and carry the full metadata
	for i, record := range records {
		if record.Reason != fmt.Sprintf("razon %d", i+1) {
			t.Errorf("record %d reason = %q, want %q", i, record.Reason, fmt.Sprintf("razon %d", i+1))
		}
		if record.ModeratorID != "mod1" {
			t.Errorf("record %d moderator = %q, want mod1", i, record.ModeratorID)
		}
		if record.ID == "" {
			t.Errorf("record %d has no ID", i)
		}
		if _, err := time.Parse(time.RFC3339, record.Timestamp); err != nil {
			t.Errorf("record %d timestamp %q is not RFC3339: %v", i, record.Timestamp, err)
		}
	}
}

func TestRemoveWarnings(t *testing.T) {
	ledger := newTestLedger(t)

	for i := 0; i < 3; i++ {
		if _, err := ledger.AddWarning("user1", "mod1", "razon", "guild1"); err != nil {
			t.Fatal(err)
		}
	}

	removed, remaining, err := ledger.RemoveWarnings("user1", 2)
	if err != nil {
		t.Fatalf("RemoveWarnings() returned error: %v", err)
	}
	if removed != 2 || remaining != 1 {
		t.Errorf("RemoveWarnings(2) = (%d, %d), want (2, 1)", removed, remaining)
	}

	// Amount beyond the record count is capped
	removed, remaining, err = ledger.RemoveWarnings("user1", 10)
	if err != nil {
		t.Fatalf("RemoveWarnings() returned error: %v", err)
	}
	if removed != 1 || remaining != 0 {
		t.Errorf("RemoveWarnings(10) = (%d, %d), want (1, 0)", removed, remaining)
	}
}

func TestRemoveWarningsNoRecords(t *testing.T) {
	store := storage.NewWarnStore(t.TempDir())
	ledger := NewLedger(store)

	removed, remaining, err := ledger.RemoveWarnings("ghost", 3)
	if err != nil {
		t.Fatalf("RemoveWarnings() returned error: %v", err)
	}
	if removed != 0 || remaining != 0 {
		t.Errorf("RemoveWarnings() on empty user = (%d, %d), want (0, 0)", removed, remaining)
	}

	// The no-op must not create or touch the backing file
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("RemoveWarnings() on empty user wrote the store")
	}
}

func TestClearWarnings(t *testing.T) {
	ledger := newTestLedger(t)

	for i := 0; i < 4; i++ {
		if _, err := ledger.AddWarning("user1", "mod1", "razon", "guild1"); err != nil {
			t.Fatal(err)
		}
	}

	cleared, err := ledger.ClearWarnings("user1")
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if cleared != 4 {
		t.Errorf("ClearWarnings() = %d, want 4", cleared)
	}

	records, err := ledger.Warnings("user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("Warnings() after clear = %d records, want 0", len(records))
	}

	// Clearing a clean user is benign
	cleared, err = ledger.ClearWarnings("user1")
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if cleared != 0 {
		t.Errorf("second ClearWarnings() = %d, want 0", cleared)
	}
}

func TestEscalationTable(t *testing.T) {
	tests := []struct {
		count    int
		action   EscalationAction
		duration time.Duration
	}{
		{1, ActionNone, 0},
		{2, ActionTimeout, 30 * time.Minute},
		{3, ActionTimeout, 3 * time.Hour},
		{4, ActionTimeout, 7 * 24 * time.Hour},
		{5, ActionKick, 0},
		{6, ActionKick, 0},
		{100, ActionKick, 0},
	}

	for _, tt := range tests {
		got := EscalationFor(tt.count)
		if got.Action != tt.action {
			t.Errorf("EscalationFor(%d).Action = %v, want %v", tt.count, got.Action, tt.action)
		}
		if got.Duration != tt.duration {
			t.Errorf("EscalationFor(%d).Duration = %v, want %v", tt.count, got.Duration, tt.duration)
		}
	}
}

func TestEscalationSequenceFiresOncePerTier(t *testing.T) {
	ledger := newTestLedger(t)

	want := []EscalationAction{ActionNone, ActionTimeout, ActionTimeout, ActionTimeout, ActionKick}
	for i, expected := range want {
		count, err := ledger.AddWarning("user1", "mod1", "razon", "guild1")
		if err != nil {
			t.Fatal(err)
		}
		if got := EscalationFor(count).Action; got != expected {
			t.Errorf("warning #%d action = %v, want %v", i+1, got, expected)
		}
	}
}
