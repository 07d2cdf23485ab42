package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"ngoconnect-web/backend"
	"ngoconnect-web/config"
	"ngoconnect-web/forms"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
	"ngoconnect-web/session"
)

type AccountResolver interface {
	Account(ctx context.Context, token string, hint models.Role) (models.Account, models.Role, error)
}

type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Controller serves every page. Handlers read the caller's session and
// identity from the context published by middlewares.Session.
type Controller struct {
	API        backend.API
	Sessions   *session.Manager
	Accounts   AccountResolver
	Categories *config.Categories
	Geocoder   Geocoder
	MaxUpload  int64
}

// render adds the layout data (identity, flashes, CSRF field) and writes the page.
func (ctl *Controller) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	flashes, err := ctl.Sessions.TakeFlashes(c.Request.Context(), middlewares.CurrentSession(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to consume flashes", "error", err)
	}

	data["Identity"] = middlewares.CurrentIdentity(c)
	data["Flashes"] = flashes
	data["CSRFField"] = csrf.TemplateField(c.Request)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = forms.FieldErrors(nil)
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = ""
	}

	c.HTML(code, name, data)
}

func (ctl *Controller) placeholder(c *gin.Context, code int, kind, message string) {
	ctl.render(c, code, "placeholder.html", gin.H{"Kind": kind, "Message": message})
}

// Denied renders the placeholder for an identity that may not see a page.
// An identity that is still Unknown never gets an authorized affordance.
func (ctl *Controller) Denied(c *gin.Context) {
	id := middlewares.CurrentIdentity(c)
	switch {
	case !id.Resolved():
		c.Header("Retry-After", "5")
		ctl.placeholder(c, http.StatusServiceUnavailable, "unknown", "")
	case !id.Authenticated():
		ctl.placeholder(c, http.StatusUnauthorized, "unauthorized", "")
	default:
		ctl.placeholder(c, http.StatusForbidden, "forbidden", "")
	}
}

// NotFound renders the 404 page.
func (ctl *Controller) NotFound(c *gin.Context) {
	ctl.placeholder(c, http.StatusNotFound, "notfound", "")
}

func (ctl *Controller) flash(c *gin.Context, kind models.FlashKind, message string) {
	if message == "" {
		return
	}
	if err := ctl.Sessions.Flash(c.Request.Context(), middlewares.CurrentSession(c), kind, message); err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to store flash", "error", err)
	}
}

func (ctl *Controller) redirect(c *gin.Context, kind models.FlashKind, message, location string) {
	ctl.flash(c, kind, message)
	c.Redirect(http.StatusSeeOther, location)
}

// failure is the single place deciding how a backend error reaches the user.
// A rejected token logs the session out and redirects to the login page, in
// which case ok is false and the response is already written. Otherwise the
// message to show inline is returned.
func (ctl *Controller) failure(c *gin.Context, err error) (message string, ok bool) {
	ctx := c.Request.Context()
	_ = c.Error(err)

	if errors.Is(err, backend.ErrUnauthorized) {
		id := middlewares.CurrentIdentity(c)
		s := middlewares.CurrentSession(c)
		slog.InfoContext(ctx, "backend rejected session token", "path", c.Request.URL.Path, "user_id", id.SubjectID)

		if err := ctl.Sessions.Logout(ctx, s); err != nil {
			slog.ErrorContext(ctx, "failed to clear session", "error", err)
		}
		middlewares.SetIdentity(c, models.Anonymous)
		ctl.redirect(c, models.FlashError, "Your session has expired, please log in again.", loginPath(id.Role()))
		return "", false
	}

	slog.ErrorContext(ctx, "backend request failed", "path", c.Request.URL.Path, "error", err)
	return backend.Message(err), true
}

// formStatus maps a failed submission to the status of the re-rendered form.
func formStatus(out forms.Outcome) int {
	if out.State == forms.Editing {
		return http.StatusBadRequest
	}
	var apiErr *backend.APIError
	if errors.As(out.Err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func loginPath(role models.Role) string {
	if role == models.RoleNGO {
		return "/login-ngo"
	}
	return "/login-user"
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
