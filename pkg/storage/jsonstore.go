// Package storage provides the JSON-file persistence layer for the bot.
// Each concern (warnings, counting, quarantine) owns one JSON document on
// disk, loaded and saved as a whole keyed map.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
)

// JSONStore manages one JSON document mapping string keys (guild or user
// IDs) to values of type T. The whole document is read and rewritten on
// every update; a per-store mutex serializes handler goroutines that
// target the same file.
type JSONStore[T any] struct {
	path          string
	repairCorrupt bool
	mu            sync.Mutex
}

// NewJSONStore creates a store backed by the given file path.
// When repairCorrupt is set, an unparsable file is overwritten with an
// empty valid document on load.
func NewJSONStore[T any](path string, repairCorrupt bool) *JSONStore[T] {
	return &JSONStore[T]{path: path, repairCorrupt: repairCorrupt}
}

// Path returns the backing file path
func (s *JSONStore[T]) Path() string {
	return s.path
}

// Load reads the whole document. A missing file yields an empty map.
// A corrupt file yields an empty map too, and is rewritten with {} when
// the store was created with repairCorrupt.
func (s *JSONStore[T]) Load() (map[string]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore[T]) load() (map[string]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]T), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	doc := make(map[string]T)
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn(fmt.Sprintf("Documento corrupto en %s, se sustituye por uno vacío: %v", s.path, err), "Storage")
		if s.repairCorrupt {
			if repairErr := s.write(make(map[string]T)); repairErr != nil {
				logger.Error(fmt.Sprintf("No se pudo reparar %s: %v", s.path, repairErr), "Storage")
			}
		}
		return make(map[string]T), nil
	}

	return doc, nil
}

// Save rewrites the whole document
func (s *JSONStore[T]) Save(doc map[string]T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

func (s *JSONStore[T]) write(doc map[string]T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Update runs a read-modify-write cycle under the store mutex. The
// document is persisted only when fn returns true.
func (s *JSONStore[T]) Update(fn func(doc map[string]T) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	dirty, err := fn(doc)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}

	return s.write(doc)
}
