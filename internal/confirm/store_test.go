package confirm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"skill-tracking-assistant/internal/model"
)

func newPending(sessionID string, createdAt time.Time) model.PendingConfirmation {
	return model.PendingConfirmation{
		SessionID: sessionID,
		Kind:      model.ConfirmationKindCreateSkill,
		ProposedSkill: model.ProposedSkill{
			Name: "Meditation",
			Type: "duration",
			Unit: "minutes",
		},
		OriginalInput: "track my meditation",
		CreatedAt:     createdAt,
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		s := NewMemoryStore()
		if err := s.Set(ctx, newPending("s1", time.Now())); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.ProposedSkill.Name != "Meditation" {
			t.Errorf("unexpected pending: %+v", got)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		s := NewMemoryStore()
		got, err := s.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("expired entry is removed on read", func(t *testing.T) {
		s := NewMemoryStore()
		base := time.Now()
		s.now = func() time.Time { return base.Add(TTL + time.Second) }

		if err := s.Set(ctx, newPending("s1", base)); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected expired entry to read as nil, got %+v", got)
		}

		// Second read behaves the same after the lazy delete.
		got, err = s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil on repeat read, got %+v", got)
		}
	})

	t.Run("entry just under TTL is still valid", func(t *testing.T) {
		s := NewMemoryStore()
		base := time.Now()
		s.now = func() time.Time { return base.Add(TTL - time.Second) }

		if err := s.Set(ctx, newPending("s1", base)); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil {
			t.Error("entry younger than TTL should still be returned")
		}
	})

	t.Run("entry at exactly TTL has expired", func(t *testing.T) {
		s := NewMemoryStore()
		base := time.Now()
		s.now = func() time.Time { return base.Add(TTL) }

		if err := s.Set(ctx, newPending("s1", base)); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("entry aged exactly TTL should read as nil, got %+v", got)
		}
	})

	t.Run("set replaces previous", func(t *testing.T) {
		s := NewMemoryStore()
		first := newPending("s1", time.Now())
		second := newPending("s1", time.Now())
		second.ProposedSkill.Name = "Reading"

		if err := s.Set(ctx, first); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := s.Set(ctx, second); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.ProposedSkill.Name != "Reading" {
			t.Errorf("expected replacement, got %+v", got)
		}
	})

	t.Run("clear", func(t *testing.T) {
		s := NewMemoryStore()
		if err := s.Set(ctx, newPending("s1", time.Now())); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := s.Clear(ctx, "s1"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after clear, got %+v", got)
		}

		// Clearing again is a no-op.
		if err := s.Clear(ctx, "s1"); err != nil {
			t.Fatalf("second clear: %v", err)
		}
	})

	t.Run("sessions are independent", func(t *testing.T) {
		s := NewMemoryStore()
		if err := s.Set(ctx, newPending("s1", time.Now())); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "s2")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("session s2 should be empty, got %+v", got)
		}
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pending.json")
		s := NewFileStore(path)

		if err := s.Set(ctx, newPending("s1", time.Now())); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.ProposedSkill.Name != "Meditation" {
			t.Errorf("unexpected pending: %+v", got)
		}
	})

	t.Run("survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pending.json")
		if err := NewFileStore(path).Set(ctx, newPending("s1", time.Now())); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := NewFileStore(path).Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got == nil || got.OriginalInput != "track my meditation" {
			t.Errorf("unexpected pending after reopen: %+v", got)
		}
	})

	t.Run("missing file reads as empty", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("expired entry is removed from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pending.json")
		s := NewFileStore(path)
		base := time.Now()

		if err := s.Set(ctx, newPending("s1", base)); err != nil {
			t.Fatalf("set: %v", err)
		}

		s.now = func() time.Time { return base.Add(TTL + time.Minute) }
		got, err := s.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expected expired entry to read as nil, got %+v", got)
		}

		// A fresh store on the same file must not see it either.
		fresh := NewFileStore(path)
		got, err = fresh.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != nil {
			t.Errorf("expired entry persisted, got %+v", got)
		}
	})
}
