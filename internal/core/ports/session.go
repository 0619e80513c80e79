package ports

import (
	"context"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// SessionStore persists session attributes between turns for hosts that do
// not keep them themselves. Load returns an empty bag for unknown users.
type SessionStore interface {
	Load(ctx context.Context, userID string) (domain.SessionAttributes, error)
	Save(ctx context.Context, userID string, attrs domain.SessionAttributes) error
}
