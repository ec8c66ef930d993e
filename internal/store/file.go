package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// SnapshotKey is the single logical key the advisory snapshot lives under.
const SnapshotKey = "dailySuggestions"

// FileStore keeps the snapshot as a JSON file in a directory shared by the
// writer process and every reader process on the same device.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path is the file readers open.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, SnapshotKey+".json")
}

// Save writes the snapshot to a temp file in the same directory and renames it
// over the previous one, so readers never observe a partial write.
// Failures are logged and dropped.
func (s *FileStore) Save(_ context.Context, snapshot weather.DailySuggestions) {
	if err := s.save(snapshot); err != nil {
		log.Printf("WARN: file store: save snapshot to %s: %v", s.Path(), err)
	}
}

func (s *FileStore) save(snapshot weather.DailySuggestions) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+SnapshotKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Load reads the snapshot. A missing directory, missing file or corrupt
// payload all mean "nothing stored".
func (s *FileStore) Load(_ context.Context) (weather.DailySuggestions, bool) {
	payload, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: file store: read %s: %v", s.Path(), err)
		}
		return weather.DailySuggestions{}, false
	}
	return decodeSnapshot(payload)
}

func decodeSnapshot(payload []byte) (weather.DailySuggestions, bool) {
	var snapshot weather.DailySuggestions
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		log.Printf("WARN: decode stored snapshot: %v", err)
		return weather.DailySuggestions{}, false
	}
	return snapshot, true
}
