package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"ngoconnect-web/models"

	"github.com/google/uuid"
)

// ChangeKind enum
type ChangeKind string

const (
	ChangeLogin    ChangeKind = "login"
	ChangeLogout   ChangeKind = "logout"
	ChangeIdentity ChangeKind = "identity"
)

// Change describes a mutation of a session's token or identity.
type Change struct {
	SessionID string
	Kind      ChangeKind
	Identity  models.Identity
}

// Manager is the single owner of session records. Handlers never mutate the
// token or the derived identity fields directly.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	newID func() string

	mu          sync.RWMutex
	subscribers []func(context.Context, Change)
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// OnChange registers fn to be called after every login, logout or identity change.
func (m *Manager) OnChange(fn func(context.Context, Change)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Manager) notify(ctx context.Context, c Change) {
	m.mu.RLock()
	subs := slices.Clone(m.subscribers)
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx, c)
	}
}

// Now is the manager's clock.
func (m *Manager) Now() time.Time { return m.now() }

// New returns an anonymous session that is not yet persisted.
func (m *Manager) New() *models.Session {
	return &models.Session{
		ID:        m.newID(),
		ExpiresAt: m.now().Add(m.ttl),
	}
}

// Load returns the session stored under id, or a fresh anonymous one when the
// record is missing or expired. On a store failure the returned session keeps
// id but is detached, so the caller's cookie survives the outage.
func (m *Manager) Load(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return m.New(), nil
	}

	s, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return m.New(), nil
		}
		return &models.Session{ID: id, Detached: true}, fmt.Errorf("load session: %w", err)
	}
	if s.Expired(m.now()) {
		return m.New(), nil
	}
	s.Stored = true
	return s, nil
}

// Save persists s and slides its expiry forward.
func (m *Manager) Save(ctx context.Context, s *models.Session) error {
	if s.Detached {
		return ErrDetached
	}
	s.ExpiresAt = m.now().Add(m.ttl)
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}
	s.Stored = true
	return nil
}

// Login stores a freshly issued token. The identity is reset and must be
// resolved again; hint only decides which endpoint is asked first.
func (m *Manager) Login(ctx context.Context, s *models.Session, token string, hint models.Role) error {
	if token == "" {
		return errors.New("login: empty token")
	}

	// The pre-login id is never reused.
	if s.Stored || s.Detached {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}
	s.ID = m.newID()
	s.Stored = false
	s.Detached = false

	s.Clear()
	s.Token = token
	s.LoginHint = hint

	if err := m.Save(ctx, s); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	m.notify(ctx, Change{SessionID: s.ID, Kind: ChangeLogin, Identity: models.Unknown})
	return nil
}

// Logout clears the token, role and subject id and removes the durable record.
func (m *Manager) Logout(ctx context.Context, s *models.Session) error {
	s.Clear()
	s.Flashes = nil

	if err := m.store.Delete(ctx, s.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.Stored = false

	m.notify(ctx, Change{SessionID: s.ID, Kind: ChangeLogout, Identity: models.Anonymous})
	return nil
}

// SetIdentity records the outcome of an identity resolution for the current token.
func (m *Manager) SetIdentity(ctx context.Context, s *models.Session, id models.Identity) error {
	if !s.HasToken() {
		return errors.New("set identity: session holds no token")
	}

	s.UserType = id.Role()
	s.UserID = id.SubjectID
	s.ResolvedAt = time.Time{}
	if id.Authenticated() {
		s.ResolvedAt = m.now()
	}

	if err := m.Save(ctx, s); err != nil {
		return fmt.Errorf("set identity: %w", err)
	}

	m.notify(ctx, Change{SessionID: s.ID, Kind: ChangeIdentity, Identity: id})
	return nil
}

// Flash queues a one-shot message for the next rendered page.
func (m *Manager) Flash(ctx context.Context, s *models.Session, kind models.FlashKind, message string) error {
	s.Flashes = append(s.Flashes, models.Flash{Kind: kind, Message: message})
	return m.Save(ctx, s)
}

// TakeFlashes returns and removes the queued messages.
func (m *Manager) TakeFlashes(ctx context.Context, s *models.Session) ([]models.Flash, error) {
	if len(s.Flashes) == 0 {
		return nil, nil
	}

	flashes := s.Flashes
	s.Flashes = nil

	if !s.HasToken() {
		// Anonymous sessions only exist to carry flashes.
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return flashes, err
		}
		s.Stored = false
		return flashes, nil
	}
	return flashes, m.Save(ctx, s)
}
