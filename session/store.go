// Package session holds the durable per-browser session record (token, userType,
// user_id) and the Manager every request goes through to read or change it.
package session

import (
	"context"
	"errors"

	"ngoconnect-web/models"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrDetached = errors.New("session record unavailable")
)

// Store persists session records. Implementations are safe for concurrent use;
// concurrent saves of the same id are last-write-wins.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
}

func key(id string) string {
	return "session:" + id
}
