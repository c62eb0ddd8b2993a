package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/campuslink/wpsgate/internal/gateway/metrics"
	"github.com/campuslink/wpsgate/internal/gateway/service"
	"github.com/campuslink/wpsgate/internal/gateway/store"
	"github.com/campuslink/wpsgate/pkg/httpx"
	"github.com/campuslink/wpsgate/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	registry *prometheus.Registry

	Platform        PlatformAuthenticator
	IdentityService *service.IdentityService
	JSAPIService    *service.JSAPIService
	SessionService  *service.SessionService
	Metrics         *metrics.Collector
}

func NewRouter(
	buildVersion string,
	st store.Store,
	registry *prometheus.Registry,
	collector *metrics.Collector,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		registry:     registry,
		Metrics:      collector,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		statusMetricsMiddleware(collector),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLogin()
	r.registerJSAPI()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerLogin() {
	loginHandler := &LoginHandler{
		Platform: r.Platform,
		Identity: r.IdentityService,
		Sessions: r.SessionService,
		Metrics:  r.Metrics,
	}

	// GET /v1/login/callback - strict rate limit (each hit triggers two
	// platform round trips)
	r.Mux.Handle("GET /v1/login/callback",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerJSAPI() {
	jsapiHandler := &JSAPIConfigHandler{
		JSAPI:   r.JSAPIService,
		Metrics: r.Metrics,
	}

	// GET /v1/jsapi/config - moderate rate limit (signed platform calls)
	r.Mux.Handle("GET /v1/jsapi/config",
		httpx.Chain(jsapiHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", metrics.Handler(r.registry))
}

// statusMetricsMiddleware counts responses by status code.
func statusMetricsMiddleware(collector *metrics.Collector) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			collector.RecordHTTPStatus(rw.status)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
