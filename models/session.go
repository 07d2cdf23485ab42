package models

import "time"

// Session is the durable per-browser record. Token, UserType and UserID keep the
// storage keys the front-end has always used.
type Session struct {
	ID         string    `bson:"_id" json:"id"`
	Token      string    `bson:"token,omitempty" json:"token,omitempty"`
	UserType   Role      `bson:"userType,omitempty" json:"userType,omitempty"`
	UserID     string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	LoginHint  Role      `bson:"loginHint,omitempty" json:"loginHint,omitempty"`
	ResolvedAt time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	Flashes    []Flash   `bson:"flashes,omitempty" json:"flashes,omitempty"`
	ExpiresAt  time.Time `bson:"expiresAt" json:"expiresAt"`

	// Stored is set once the record exists in the store under ID.
	Stored bool `bson:"-" json:"-"`
	// Detached marks a session whose record could not be read. It keeps the
	// caller's id but is never written back.
	Detached bool `bson:"-" json:"-"`
}

// FlashKind enum
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    FlashKind `bson:"kind" json:"kind"`
	Message string    `bson:"message" json:"message"`
}

// HasToken reports whether a bearer token is held.
func (s *Session) HasToken() bool { return s != nil && s.Token != "" }

// Identity returns the cached identity. It is a UI convenience only and must be
// revalidated against the backend before it is trusted.
func (s *Session) Identity() Identity {
	if !s.HasToken() {
		return Anonymous
	}
	if s.UserType == "" || s.UserID == "" || s.ResolvedAt.IsZero() {
		return Unknown
	}
	return IdentityFor(s.UserType, s.UserID)
}

// Stale reports whether the cached identity must be re-resolved.
func (s *Session) Stale(now time.Time, ttl time.Duration) bool {
	if !s.HasToken() {
		return false
	}
	if !s.Identity().Authenticated() {
		return true
	}
	return now.Sub(s.ResolvedAt) >= ttl
}

// Clear drops the token and every field derived from it.
func (s *Session) Clear() {
	s.Token = ""
	s.UserType = ""
	s.UserID = ""
	s.LoginHint = ""
	s.ResolvedAt = time.Time{}
}

// Expired reports whether the record outlived its TTL.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
