// internal/router/router.go
//
// Root chi router.
//
// Middleware order
// ----------------
//   1. RequestID, RealIP            – chi built-ins
//   2. AccessLog                    – zap line + status counter
//   3. Recoverer                    – panics become 500s
//   4. ForceHTTPS                   – only when http.force_https is set
//   5. Security                     – response headers
//   6. redirectparam.Middleware     – one read-once Reader per request
//
// Routes
// ------
//   GET /          – locale redirect
//   GET /healthz   – liveness
//   GET /metrics   – Prometheus
//   everything else comes from registered components.

package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/component"
	"github.com/yanizio/frontdoor/internal/config"
	"github.com/yanizio/frontdoor/internal/locale"
	"github.com/yanizio/frontdoor/internal/middleware"
	"github.com/yanizio/frontdoor/internal/redirectparam"
)

// New builds the application handler from cfg and every registered
// component.  A component Init error aborts the build.
func New(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID, chimw.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	r.Use(middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS))
	r.Use(middleware.Security)
	r.Use(redirectparam.Middleware)

	r.Method(http.MethodGet, "/", locale.New(
		locale.WithKey(cfg.Locale.CookieName),
		locale.WithFallback(cfg.Locale.Default),
	))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, c := range component.All() {
		if in, ok := c.(component.Initializer); ok {
			if err := in.Init(cfg); err != nil {
				return nil, fmt.Errorf("component %s init: %w", c.Name(), err)
			}
		}
		c.Routes(r)
		zap.L().Debug("component mounted", zap.String("component", c.Name()))
	}

	return r, nil
}
