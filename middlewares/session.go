package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/backend"
	"ngoconnect-web/models"
	"ngoconnect-web/session"
	"ngoconnect-web/utils"
)

const (
	sessionKey  = "session"
	identityKey = "identity"
)

const sessionExpiredMessage = "Your session has expired, please log in again."

type IdentityResolver interface {
	Resolve(ctx context.Context, token string, hint models.Role) (models.Identity, error)
}

type SessionConfig struct {
	CookieName  string
	CookieTTL   time.Duration
	IdentityTTL time.Duration
	Secure      bool
}

// Session loads the caller's session record, revalidates its cached identity
// and publishes both in the gin context. A token the backend rejects is
// logged out; a backend that cannot be reached leaves the identity Unknown.
func Session(m *session.Manager, resolver IdentityResolver, cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sid, _ := c.Cookie(cfg.CookieName)
		s, err := m.Load(ctx, sid)
		c.Writer = &cookieWriter{ResponseWriter: c.Writer, cfg: cfg, sent: sid, session: s}
		c.Set(sessionKey, s)

		if err != nil {
			slog.ErrorContext(ctx, "session store unavailable", "error", err)
			c.Set(identityKey, models.Unknown)
			c.Next()
			return
		}

		id := s.Identity()
		now := m.Now()
		switch {
		case !s.HasToken():
			id = models.Anonymous

		case utils.TokenExpired(s.Token, now):
			forceLogout(c, m, s, "token expired")
			id = models.Anonymous

		case s.Stale(now, cfg.IdentityTTL):
			resolved, err := resolver.Resolve(ctx, s.Token, resolutionHint(s))
			switch {
			case err == nil:
				if err := m.SetIdentity(ctx, s, resolved); err != nil {
					slog.ErrorContext(ctx, "failed to cache identity", "error", err)
				}
				id = resolved
			case errors.Is(err, backend.ErrUnauthorized):
				forceLogout(c, m, s, "token rejected")
				id = models.Anonymous
			default:
				slog.WarnContext(ctx, "identity resolution failed", "error", err, "path", c.Request.URL.Path)
				id = models.Unknown
			}
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// cookieWriter issues the HttpOnly session cookie right before the response
// header is written, and only when the session was persisted under an id the
// browser does not hold yet.
type cookieWriter struct {
	gin.ResponseWriter
	cfg     SessionConfig
	sent    string
	session *models.Session
	done    bool
}

func (w *cookieWriter) issue() {
	if w.done || !w.session.Stored || w.session.ID == w.sent {
		return
	}
	w.done = true
	http.SetCookie(w.ResponseWriter, &http.Cookie{
		Name:     w.cfg.CookieName,
		Value:    w.session.ID,
		Path:     "/",
		MaxAge:   int(w.cfg.CookieTTL.Seconds()),
		Secure:   w.cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (w *cookieWriter) WriteHeader(code int) {
	w.issue()
	w.ResponseWriter.WriteHeader(code)
}

func (w *cookieWriter) WriteHeaderNow() {
	w.issue()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.issue()
	return w.ResponseWriter.Write(b)
}

func (w *cookieWriter) WriteString(s string) (int, error) {
	w.issue()
	return w.ResponseWriter.WriteString(s)
}

func resolutionHint(s *models.Session) models.Role {
	if s.UserType != "" {
		return s.UserType
	}
	return s.LoginHint
}

func forceLogout(c *gin.Context, m *session.Manager, s *models.Session, reason string) {
	ctx := c.Request.Context()
	slog.InfoContext(ctx, "forced logout", "reason", reason, "user_id", s.UserID)

	if err := m.Logout(ctx, s); err != nil {
		slog.ErrorContext(ctx, "failed to clear session", "error", err)
	}
	if err := m.Flash(ctx, s, models.FlashError, sessionExpiredMessage); err != nil {
		slog.ErrorContext(ctx, "failed to store flash", "error", err)
	}
}

// CurrentSession returns the session published by Session.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return &models.Session{}
}

// CurrentIdentity returns the identity published by Session, Unknown when
// none was.
func CurrentIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Unknown
}

// SetIdentity replaces the identity for the rest of the request, e.g. after logout.
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}
