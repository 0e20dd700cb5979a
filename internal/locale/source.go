// internal/locale/source.go
//
// Preference sources for the locale redirect.
//
// A Source is the key/value store the saved locale lives in.  In the
// browser that is a cookie; tests and other hosts can inject their own.
// Lookup returns ok == false when the key is missing, which is the normal
// "use the default" path and never an error.

package locale

import (
	"context"
	"errors"
	"net/http"
)

// Source looks up a stored preference by key.  Implementations that block
// must honour ctx.
type Source interface {
	Lookup(ctx context.Context, r *http.Request, key string) (value string, ok bool, err error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, r *http.Request, key string) (string, bool, error)

func (f SourceFunc) Lookup(ctx context.Context, r *http.Request, key string) (string, bool, error) {
	return f(ctx, r, key)
}

// CookieSource reads preferences from request cookies.
type CookieSource struct{}

// Lookup returns the cookie value.  ok == false when the cookie is missing
// or empty.
func (CookieSource) Lookup(ctx context.Context, r *http.Request, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	c, err := r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return c.Value, true, nil
}
