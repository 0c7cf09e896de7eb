package session

import (
	"context"
	"time"
)

// Repo defines persistence operations for builder sessions.
type Repo interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
