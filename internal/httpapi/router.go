package httpapi

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/crandicha/acncheck/pkg/httpserver"
	"github.com/crandicha/acncheck/pkg/logger"
	"github.com/crandicha/acncheck/pkg/ruleset"
	"github.com/crandicha/acncheck/pkg/validator"
)

// DefaultMaxBodySize bounds POST /validate request bodies.
const DefaultMaxBodySize int64 = 1 << 20

// Option configures the API.
type Option func(*api)

// WithRules sets the pipeline and its success message. An empty message
// falls back to validator.DefaultSuccessMessage.
// Without this option the ACN rule set is used.
func WithRules(name string, rules []validator.Rule, successMessage string) Option {
	return func(a *api) {
		a.name = name
		a.rules = slices.Clone(rules)
		a.successMessage = successMessage
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *api) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithWidthFolding toggles folding of full-width characters to their ASCII
// forms before validation.
func WithWidthFolding(enabled bool) Option {
	return func(a *api) { a.foldWidth = enabled }
}

// WithMaxBodySize sets the POST body limit in bytes.
func WithMaxBodySize(n int64) Option {
	return func(a *api) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

type api struct {
	name           string
	rules          []validator.Rule
	successMessage string
	foldWidth      bool
	maxBodySize    int64
	logger         *slog.Logger
}

// New returns the API router.
func New(opts ...Option) http.Handler {
	a := &api{
		name:           "acn",
		rules:          ruleset.ACN(),
		successMessage: ruleset.ACNSuccessMessage,
		maxBodySize:    DefaultMaxBodySize,
		logger:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.successMessage == "" {
		a.successMessage = validator.DefaultSuccessMessage
	}
	a.logger = a.logger.With(logger.Component("httpapi"))

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.fail(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(a.logger))
	r.Get("/rules", a.listRules)
	r.Get("/validate", a.validateQuery)
	r.Post("/validate", a.validateBody)

	return r
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
