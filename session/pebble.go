package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ngoconnect-web/models"

	"github.com/cockroachdb/pebble"
)

// PebbleStore keeps sessions in an embedded on-disk KV for single node setups.
// Expiry is checked on read.
type PebbleStore struct {
	db *pebble.DB
}

func OpenPebbleStore(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble store: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func (p *PebbleStore) Get(ctx context.Context, id string) (*models.Session, error) {
	value, closer, err := p.db.Get([]byte(key(id)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer closer.Close()

	var s models.Session
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.Expired(time.Now()) {
		_ = p.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return &s, nil
}

func (p *PebbleStore) Save(ctx context.Context, s *models.Session) error {
	byt, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := p.db.Set([]byte(key(s.ID)), byt, pebble.Sync); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (p *PebbleStore) Delete(ctx context.Context, id string) error {
	if err := p.db.Delete([]byte(key(id)), pebble.Sync); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (p *PebbleStore) Close() error {
	return p.db.Close()
}
