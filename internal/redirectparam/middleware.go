// internal/redirectparam/middleware.go
//
// HTTP middleware that gives each request its own *Reader.
//
// Handlers and templates downstream call FromContext(r.Context()) and then
// Value().  Nothing is parsed until the first Value call, so requests that
// never look at the parameter pay only for one small allocation.

package redirectparam

import (
	"context"
	"net/http"
)

type ctxKey struct{} // unexported, collision-proof

// Middleware attaches a fresh, Unset *Reader to every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKey{}, NewReader(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the Reader stored by Middleware, or nil if the
// middleware has not run.
func FromContext(ctx context.Context) *Reader {
	rd, _ := ctx.Value(ctxKey{}).(*Reader)
	return rd
}
