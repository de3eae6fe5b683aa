package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewJSONStore[int](filepath.Join(t.TempDir(), "missing.json"), false)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("Load() on missing file = %v, want empty map", doc)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore[int](path, false)
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("Load() on corrupt file = %v, want empty map", doc)
	}

	// Without repair the corrupt file stays untouched
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("corrupt file was rewritten without repair flag: %q", data)
	}
}

func TestLoadCorruptFileRepairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore[int](path, true)
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// The repaired file must be a valid empty document
	repaired := NewJSONStore[int](path, false)
	doc, err := repaired.Load()
	if err != nil {
		t.Fatalf("Load() after repair returned error: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("repaired document = %v, want empty map", doc)
	}

	data, _ := os.ReadFile(path)
	if string(data) == "{not json" {
		t.Error("corrupt file was not repaired")
	}
}

func TestUpdatePersistsOnlyWhenDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	store := NewJSONStore[string](path, false)

	err := store.Update(func(doc map[string]string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("clean Update() created the backing file")
	}

	err = store.Update(func(doc map[string]string) (bool, error) {
		doc["key"] = "value"
		return true, nil
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if doc["key"] != "value" {
		t.Errorf("doc[key] = %q, want %q", doc["key"], "value")
	}
}

func TestQuarantineLegacyShapeUpgrade(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, quarantineFile)
	legacy := `{"guild1": ["chan1", "chan2"]}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewQuarantineStore(dir)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	cfg := doc["guild1"]
	if cfg == nil {
		t.Fatal("legacy guild entry was not read")
	}
	if len(cfg.Channels) != 2 || cfg.Channels[0] != "chan1" || cfg.Channels[1] != "chan2" {
		t.Errorf("Channels = %v, want [chan1 chan2]", cfg.Channels)
	}
	if cfg.BanCount != 0 {
		t.Errorf("BanCount = %d, want 0", cfg.BanCount)
	}

	// Any write persists the upgraded shape without losing channel IDs
	err = store.Update(func(doc map[string]*models.QuarantineConfig) (bool, error) {
		doc["guild1"].BanCount++
		return true, nil
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	upgraded := reloaded["guild1"]
	if len(upgraded.Channels) != 2 {
		t.Errorf("Channels after upgrade = %v, want both legacy IDs", upgraded.Channels)
	}
	if upgraded.BanCount != 1 {
		t.Errorf("BanCount after upgrade = %d, want 1", upgraded.BanCount)
	}
}
