package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passmeter/internal/handler/form"
	"github.com/jwalitptl/passmeter/internal/handler/prometheus"
	"github.com/jwalitptl/passmeter/internal/middleware"
	"github.com/jwalitptl/passmeter/pkg/errors"
	"github.com/jwalitptl/passmeter/pkg/httputil"
)

const (
	SurfaceAPI  = "api"
	SurfaceForm = "form"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// StrengthHandler is additionally mounted at the root for clients of the
// unversioned endpoint.
type StrengthHandler interface {
	Handler
	CheckPassword(*gin.Context)
}

type Router struct {
	engine *gin.Engine
}

type RouterConfig struct {
	CORSConfig   middleware.CORSConfig
	MaxBodyBytes int64
	// MetricsPath is where the API engine serves the registry. Empty
	// disables exposition.
	MetricsPath string
}

// newRouter builds the middleware chain shared by both surfaces. reject
// renders declared oversize bodies in the surface's own format.
func newRouter(surface string, metrics *prometheus.Handler, config RouterConfig, reject func(*gin.Context, error)) *Router {
	engine := gin.New() // Use New() instead of Default() for more control

	r := &Router{engine: engine}

	// Recovery sits inside Logger so that recovered panics are logged as 500s.
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	if metrics != nil {
		engine.Use(metrics.Middleware(surface))
	}

	sizeLimit := middleware.DefaultSizeLimitConfig()
	sizeLimit.Reject = reject
	if config.MaxBodyBytes > 0 {
		sizeLimit.MaxBodySize = config.MaxBodyBytes
	}
	engine.Use(
		middleware.ErrorHandler(),
		middleware.SizeLimit(sizeLimit),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.Cache(middleware.DefaultCacheConfig()),
	)

	return r
}

// NewAPIRouter builds the JSON surface: the unversioned check endpoint, the
// /api/v1 group and, when configured, metrics exposition.
func NewAPIRouter(strengthH StrengthHandler, healthH Handler, metrics *prometheus.Handler, config RouterConfig) *Router {
	r := newRouter(SurfaceAPI, metrics, config, httputil.RespondWithError)

	r.engine.Use(
		middleware.CORS(config.CORSConfig),
		middleware.Validation(middleware.DefaultValidationConfig()),
	)

	r.engine.POST("/check-password", strengthH.CheckPassword)

	api := r.engine.Group("/api/v1")

	api.Use(middleware.Version(middleware.DefaultVersionConfig()))

	healthH.RegisterRoutes(api)
	strengthH.RegisterRoutes(api)

	if metrics != nil && config.MetricsPath != "" {
		r.engine.GET(config.MetricsPath, metrics.Handler())
	}

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithError(c, errors.NotFound("route", nil))
	})

	return r
}

// NewFormRouter builds the HTML surface.
func NewFormRouter(formH Handler, metrics *prometheus.Handler, config RouterConfig) *Router {
	r := newRouter(SurfaceForm, metrics, config, form.RenderError)

	r.engine.SetHTMLTemplate(form.Templates())
	formH.RegisterRoutes(&r.engine.RouterGroup)

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
