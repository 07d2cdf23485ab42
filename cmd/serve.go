package cmd

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"ngoconnect-web/backend"
	"ngoconnect-web/config"
	"ngoconnect-web/controllers"
	"ngoconnect-web/forms"
	"ngoconnect-web/geocode"
	"ngoconnect-web/identity"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/routes"
	"ngoconnect-web/session"
	"ngoconnect-web/telemetry"
	"ngoconnect-web/views"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var sessionChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ngoconnect_session_changes_total",
	Help: "Session logins, logouts and identity changes.",
}, []string{"kind"})

func serve(parent context.Context) error {
	cfg := config.Load()
	slog.SetDefault(telemetry.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat))
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, "ngoconnect-web", cfg.OTLPEndpoint)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("tracer shutdown", "error", err)
		}
	}()

	cats, err := config.LoadCategories()
	if err != nil {
		return err
	}
	forms.RegisterCategories(cats.Valid)

	store, counter, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	tmpl, err := views.Load(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	api := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, backend.WithUserRegisterPath(cfg.UserRegisterPath))
	resolver := identity.NewResolver(api)

	manager := session.NewManager(store, cfg.SessionTTL)
	manager.OnChange(func(ctx context.Context, c session.Change) {
		sessionChanges.WithLabelValues(string(c.Kind)).Inc()
		slog.DebugContext(ctx, "session changed", "kind", c.Kind, "state", c.Identity.State, "id", c.Identity.SubjectID)
	})

	ctl := &controllers.Controller{
		API:        api,
		Sessions:   manager,
		Accounts:   resolver,
		Categories: cats,
		Geocoder:   geocode.NewNominatim(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.BackendTimeout),
		MaxUpload:  cfg.MaxUploadBytes,
	}

	router := routes.NewRouter(routes.Options{
		Controller: ctl,
		Sessions:   manager,
		Resolver:   resolver,
		Session: middlewares.SessionConfig{
			CookieName:  cfg.SessionCookie,
			CookieTTL:   cfg.SessionTTL,
			IdentityTTL: cfg.IdentityTTL,
			Secure:      cfg.Production(),
		},
		Counter:     counter,
		ReportLimit: cfg.ReportDailyLimit,
		CORSOrigins: cfg.CORSOrigins,
		Templates:   tmpl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(protect(cfg, router), "ngoconnect-web"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "backend", cfg.BackendURL, "sessions", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores picks the session store named by SESSION_STORE and the counter
// backing the report limiter.
func openStores(ctx context.Context, cfg config.Config) (session.Store, middlewares.Counter, func(), error) {
	noop := func() {}

	switch cfg.SessionStore {
	case "memory":
		return session.NewMemoryStore(), middlewares.NewMemoryCounter(), noop, nil

	case "redis":
		client, err := config.ConnectRedis(cfg)
		if err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() { _ = client.Close() }
		return session.NewRedisStore(client), middlewares.NewRedisCounter(client, "report_limit"), closeFn, nil

	case "mongo":
		db, err := config.ConnectDB(cfg)
		if err != nil {
			return nil, nil, noop, err
		}
		coll := db.Collection("sessions")
		if err := session.EnsureSessionIndex(ctx, coll); err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() { _ = db.Client().Disconnect(context.Background()) }
		return session.NewMongoStore(coll), middlewares.NewMemoryCounter(), closeFn, nil

	case "pebble":
		store, err := session.OpenPebbleStore(cfg.PebblePath)
		if err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() { _ = store.Close() }
		return store, middlewares.NewMemoryCounter(), closeFn, nil
	}

	return nil, nil, noop, fmt.Errorf("unknown SESSION_STORE %q (memory, redis, mongo, pebble)", cfg.SessionStore)
}

// protect enables CSRF checks on form posts when CSRF_KEY is set.
func protect(cfg config.Config, h http.Handler) http.Handler {
	if cfg.CSRFKey == "" {
		slog.Warn("CSRF_KEY not set, form posts are not CSRF protected")
		return h
	}

	key := sha256.Sum256([]byte(cfg.CSRFKey))
	mw := csrf.Protect(key[:],
		csrf.Secure(cfg.Production()),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName("csrf_token"),
	)
	protected := mw(h)
	if cfg.Production() {
		return protected
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protected.ServeHTTP(w, r)
	})
}
