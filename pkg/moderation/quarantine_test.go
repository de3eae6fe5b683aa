package moderation

import (
	"testing"

	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

func TestAddChannelAndLookup(t *testing.T) {
	guard := NewGuard(storage.NewQuarantineStore(t.TempDir()))

	added, err := guard.AddChannel("guild1", "chan1")
	if err != nil {
		t.Fatalf("AddChannel() returned error: %v", err)
	}
	if !added {
		t.Error("AddChannel() = false on first add, want true")
	}

	// Duplicate adds are rejected
	added, err = guard.AddChannel("guild1", "chan1")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("AddChannel() = true on duplicate, want false")
	}

	if !guard.IsQuarantineChannel("guild1", "chan1") {
		t.Error("IsQuarantineChannel() = false for flagged channel")
	}
	if guard.IsQuarantineChannel("guild1", "chan2") {
		t.Error("IsQuarantineChannel() = true for unflagged channel")
	}
	if guard.IsQuarantineChannel("guild2", "chan1") {
		t.Error("IsQuarantineChannel() = true for other guild")
	}
}

func TestLogChannel(t *testing.T) {
	guard := NewGuard(storage.NewQuarantineStore(t.TempDir()))

	if got := guard.LogChannel("guild1"); got != "" {
		t.Errorf("LogChannel() before setup = %q, want empty", got)
	}

	if err := guard.SetLogChannel("guild1", "logs"); err != nil {
		t.Fatalf("SetLogChannel() returned error: %v", err)
	}
	if got := guard.LogChannel("guild1"); got != "logs" {
		t.Errorf("LogChannel() = %q, want logs", got)
	}
}

func TestRecordAutoBanDurable(t *testing.T) {
	dir := t.TempDir()
	guard := NewGuard(storage.NewQuarantineStore(dir))

	for want := 1; want <= 3; want++ {
		count, err := guard.RecordAutoBan("guild1")
		if err != nil {
			t.Fatalf("RecordAutoBan() returned error: %v", err)
		}
		if count != want {
			t.Errorf("RecordAutoBan() = %d, want %d", count, want)
		}
	}

	// A fresh guard over the same file sees the persisted counter
	reloaded := NewGuard(storage.NewQuarantineStore(dir))
	if got := reloaded.BanCount("guild1"); got != 3 {
		t.Errorf("BanCount() after reload = %d, want 3", got)
	}
}
