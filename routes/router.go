package routes

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ngoconnect-web/controllers"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/session"
	"ngoconnect-web/views"
)

type Options struct {
	Controller  *controllers.Controller
	Sessions    *session.Manager
	Resolver    middlewares.IdentityResolver
	Session     middlewares.SessionConfig
	Counter     middlewares.Counter
	ReportLimit int
	CORSOrigins []string
	Templates   *template.Template
}

// NewRouter wires middlewares, templates and every route.
func NewRouter(o Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.GET("/ping", controllers.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFS("/static", http.FS(views.Static()))

	r.SetHTMLTemplate(o.Templates)
	r.Use(middlewares.Session(o.Sessions, o.Resolver, o.Session))

	ctl := o.Controller
	limiter := middlewares.ReportRateLimiter(o.Counter, o.ReportLimit, ctl.ReportLimited)

	AuthRoutes(r, ctl)
	IssueRoutes(r, ctl, limiter)
	PostRoutes(r, ctl)
	UserRoutes(r, ctl, o.CORSOrigins)

	r.NoRoute(ctl.NotFound)
	return r
}
