package confirm

import (
	"context"
	"time"

	"skill-tracking-assistant/internal/model"
)

// TTL is how long a pending confirmation stays answerable. Expiry is
// enforced lazily on read.
const TTL = 5 * time.Minute

// Store keeps at most one pending confirmation per session.
type Store interface {
	// Get returns the pending confirmation for the session, or nil when
	// none exists. An entry is answerable strictly less than TTL after it
	// was stored; at or past TTL it is deleted and reported as nil.
	Get(ctx context.Context, sessionID string) (*model.PendingConfirmation, error)

	// Set stores the confirmation, replacing any previous one for the
	// same session.
	Set(ctx context.Context, pending model.PendingConfirmation) error

	// Clear removes the session's pending confirmation. Clearing a
	// session with no entry is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
