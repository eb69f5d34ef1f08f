package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/skill"
	"skill-tracking-assistant/internal/skill/repository"
)

// Store is a JSON-file-backed skill repository. The whole dataset is read
// and rewritten under a mutex on every mutation, which is fine for a
// single-user assistant.
type Store struct {
	mu   sync.Mutex
	path string
}

type fileData struct {
	Skills  []model.Skill `json:"skills"`
	Entries []model.Entry `json:"entries"`
}

// New creates a store at path. The file is created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) ListSkills(ctx context.Context) ([]model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Skills, nil
}

func (s *Store) GetSkill(ctx context.Context, id string) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return model.Skill{}, err
	}
	for _, sk := range data.Skills {
		if sk.ID == id {
			return sk, nil
		}
	}
	return model.Skill{}, skill.ErrSkillNotFound
}

func (s *Store) CreateSkill(ctx context.Context, sk model.Skill) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return model.Skill{}, err
	}
	for _, existing := range data.Skills {
		if existing.ID == sk.ID {
			return model.Skill{}, skill.ErrSkillExists
		}
	}

	data.Skills = append(data.Skills, sk)
	if err := s.save(data); err != nil {
		return model.Skill{}, err
	}
	return sk, nil
}

func (s *Store) AddEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return model.Entry{}, err
	}

	found := false
	for i := range data.Skills {
		if data.Skills[i].ID == e.SkillID {
			data.Skills[i].UsageCount++
			found = true
			break
		}
	}
	if !found {
		return model.Entry{}, skill.ErrSkillNotFound
	}

	data.Entries = append(data.Entries, e)
	if err := s.save(data); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []model.Entry
	for _, e := range data.Entries {
		if opt.SkillID != "" && e.SkillID != opt.SkillID {
			continue
		}
		if !opt.From.IsZero() || !opt.To.IsZero() {
			ts, err := time.Parse(time.RFC3339, e.CreatedAt)
			if err != nil {
				continue
			}
			if !opt.From.IsZero() && ts.Before(opt.From) {
				continue
			}
			if !opt.To.IsZero() && !ts.Before(opt.To) {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) load() (fileData, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return fileData{}, nil
	}
	if err != nil {
		return fileData{}, fmt.Errorf("skill store: read %s: %w", s.path, err)
	}

	var data fileData
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fileData{}, fmt.Errorf("skill store: parse %s: %w", s.path, err)
	}
	return data, nil
}

func (s *Store) save(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("skill store: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("skill store: mkdir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("skill store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("skill store: rename %s: %w", tmp, err)
	}
	return nil
}
