package interfaces

import (
	"context"
	"time"

	"hoa_stickers/internal/domain/entities"
)

// ISessionStore keeps browser sessions server side, keyed by the cookie value.
// Get returns a zero-value session for unknown or expired ids.
type ISessionStore interface {
	Save(ctx context.Context, id string, s entities.AuthSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (entities.AuthSession, error)
	Delete(ctx context.Context, id string) error
}

// SessionListener receives session changes. session is nil on sign out.
type SessionListener func(event entities.AuthEvent, session *entities.AuthSession)

// ISessionEvents fans session changes out to subscribers.
type ISessionEvents interface {
	Publish(event entities.AuthEvent, session *entities.AuthSession)
	Subscribe(listener SessionListener) (unsubscribe func())
}
