// Package identity resolves a bearer token into the caller's role and id by
// asking the backend which account the token belongs to.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ngoconnect-web/backend"
	"ngoconnect-web/models"
)

// ErrUnresolved is returned when the backend answered without an account id.
var ErrUnresolved = errors.New("identity could not be resolved")

var resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ngoconnect_identity_resolutions_total",
	Help: "Identity resolutions by outcome.",
}, []string{"outcome"})

// Resolver asks the role-specific "current" endpoints who owns a token.
type Resolver struct {
	api backend.API
}

func NewResolver(api backend.API) *Resolver {
	return &Resolver{api: api}
}

// Resolve returns Anonymous for an empty token, otherwise the NGO or User the
// token belongs to. The hint only decides which endpoint is asked first.
func (r *Resolver) Resolve(ctx context.Context, token string, hint models.Role) (models.Identity, error) {
	if token == "" {
		resolutions.WithLabelValues("anonymous").Inc()
		return models.Anonymous, nil
	}

	acc, role, err := r.Account(ctx, token, hint)
	switch {
	case err == nil:
		resolutions.WithLabelValues(string(role)).Inc()
		return models.IdentityFor(role, acc.ID), nil
	case errors.Is(err, backend.ErrUnauthorized):
		resolutions.WithLabelValues("unauthorized").Inc()
	default:
		resolutions.WithLabelValues("error").Inc()
	}
	return models.Unknown, err
}

// Account fetches the account behind token together with its role.
func (r *Resolver) Account(ctx context.Context, token string, hint models.Role) (models.Account, models.Role, error) {
	if token == "" {
		return models.Account{}, "", backend.ErrUnauthorized
	}

	order := []models.Role{models.RoleNGO, models.RoleUser}
	if hint == models.RoleUser {
		order = []models.Role{models.RoleUser, models.RoleNGO}
	}

	var firstErr error
	for _, role := range order {
		acc, resolved, err := r.current(ctx, token, role)
		if err == nil {
			return acc, resolved, nil
		}
		if !rejected(err) {
			return models.Account{}, "", err
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if errors.Is(firstErr, backend.ErrUnauthorized) {
		return models.Account{}, "", firstErr
	}
	return models.Account{}, "", fmt.Errorf("resolve identity: %w", backend.ErrUnauthorized)
}

func (r *Resolver) current(ctx context.Context, token string, role models.Role) (models.Account, models.Role, error) {
	var (
		acc models.Account
		err error
	)
	if role == models.RoleNGO {
		acc, err = r.api.CurrentNGO(ctx, token)
	} else {
		acc, err = r.api.CurrentUser(ctx, token)
	}
	if err != nil {
		return models.Account{}, "", err
	}
	if acc.ID == "" {
		return models.Account{}, "", fmt.Errorf("%s account: %w", role, ErrUnresolved)
	}

	// The NGO endpoint reports the role; the users endpoint only serves users.
	resolved := models.RoleUser
	if role == models.RoleNGO && models.ParseRole(acc.Role) == models.RoleNGO {
		resolved = models.RoleNGO
	}
	return acc, resolved, nil
}

// rejected reports whether the endpoint refused the token, so the other role
// is worth asking.
func rejected(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized) || errors.Is(err, backend.ErrNotFound)
}
