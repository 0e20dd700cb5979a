// internal/locale/redirect.go
//
// Root-route locale redirect.
//
// Context
// -------
// GET / has no page of its own.  The handler reads the saved locale
// preference (cookie `NEXT_LOCALE` by default), falls back to a fixed
// token when none is stored, and redirects to `/<locale>`.  Nothing else
// is rendered for the root route.
//
// Notes
// -----
// • The stored value is used as-is; no matching against a supported list.
// • A Source error is a fault: it is logged and answered with a 500.
// • Oxford commas, two spaces after periods.

package locale

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/metrics"
)

// Defaults used when no Option overrides them.
const (
	DefaultKey      = "NEXT_LOCALE"
	DefaultFallback = "en"
	DefaultStatus   = http.StatusTemporaryRedirect
)

// Redirector is an http.Handler for the root route.  It is immutable after
// New returns and safe for concurrent use.
type Redirector struct {
	source   Source
	key      string
	fallback string
	status   int
}

// Option customises a Redirector.
type Option func(*Redirector)

// WithSource replaces the default CookieSource.
func WithSource(s Source) Option { return func(rd *Redirector) { rd.source = s } }

// WithKey sets the preference key (cookie name).
func WithKey(k string) Option { return func(rd *Redirector) { rd.key = k } }

// WithFallback sets the locale used when no preference is stored.
func WithFallback(l string) Option { return func(rd *Redirector) { rd.fallback = l } }

// WithStatus sets the redirect status code.
func WithStatus(code int) Option { return func(rd *Redirector) { rd.status = code } }

// New returns a Redirector reading cookie NEXT_LOCALE with fallback "en".
func New(opts ...Option) *Redirector {
	rd := &Redirector{
		source:   CookieSource{},
		key:      DefaultKey,
		fallback: DefaultFallback,
		status:   DefaultStatus,
	}
	for _, o := range opts {
		o(rd)
	}
	return rd
}

// Resolve returns the stored locale, or the fallback when none is stored.
func (rd *Redirector) Resolve(ctx context.Context, r *http.Request) (string, error) {
	l, ok, err := rd.source.Lookup(ctx, r, rd.key)
	if err != nil {
		return "", err
	}
	if !ok {
		metrics.LocaleRedirectsTotal.WithLabelValues(metrics.SourceFallback).Inc()
		return rd.fallback, nil
	}
	metrics.LocaleRedirectsTotal.WithLabelValues(metrics.SourcePreference).Inc()
	return l, nil
}

// Target returns the redirect path for locale l.
func Target(l string) string { return "/" + l }

// ServeHTTP resolves the locale and redirects to /<locale>.
func (rd *Redirector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l, err := rd.Resolve(r.Context(), r)
	if err != nil {
		metrics.LocaleLookupErrorsTotal.Inc()
		zap.L().Error("locale lookup failed",
			zap.String("key", rd.key),
			zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}

	target := Target(l)
	zap.L().Debug("locale redirect",
		zap.String("locale", l),
		zap.String("to", target))
	http.Redirect(w, r, target, rd.status)
}
