package confirm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"skill-tracking-assistant/internal/model"
)

// FileStore persists pending confirmations to a JSON file keyed by session
// ID, so an in-flight confirmation survives a restart. Safe for concurrent
// use within one process.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore creates a file-backed store at path. The file is created on
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

func (s *FileStore) Get(ctx context.Context, sessionID string) (*model.PendingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.load()
	if err != nil {
		return nil, err
	}

	p, ok := pending[sessionID]
	if !ok {
		return nil, nil
	}
	if s.now().Sub(p.CreatedAt) >= TTL {
		delete(pending, sessionID)
		if err := s.save(pending); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &p, nil
}

func (s *FileStore) Set(ctx context.Context, p model.PendingConfirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.load()
	if err != nil {
		return err
	}
	pending[p.SessionID] = p
	return s.save(pending)
}

func (s *FileStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := pending[sessionID]; !ok {
		return nil
	}
	delete(pending, sessionID)
	return s.save(pending)
}

func (s *FileStore) load() (map[string]model.PendingConfirmation, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]model.PendingConfirmation), nil
	}
	if err != nil {
		return nil, fmt.Errorf("confirm: read %s: %w", s.path, err)
	}

	pending := make(map[string]model.PendingConfirmation)
	if len(data) == 0 {
		return pending, nil
	}
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, fmt.Errorf("confirm: parse %s: %w", s.path, err)
	}
	return pending, nil
}

// save writes via a temp file and rename so a crash mid-write cannot leave
// a truncated store behind.
func (s *FileStore) save(pending map[string]model.PendingConfirmation) error {
	data, err := json.MarshalIndent(pending, "", "  ")
	if err != nil {
		return fmt.Errorf("confirm: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("confirm: mkdir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("confirm: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("confirm: rename %s: %w", tmp, err)
	}
	return nil
}
