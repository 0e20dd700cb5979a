// internal/locale/redirect_test.go
//
// Unit-tests for the root-route locale redirect.
//
//   • stored preference             → 307 to /<locale>
//   • missing or empty preference   → 307 to /en
//   • failing source                → 500, no Location header
//   • options override key, fallback, and status

package locale

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRedirector_StoredPreference(t *testing.T) {
	for _, l := range []string{"fr", "de", "pt-BR", "zh-Hant"} {
		t.Run(l, func(t *testing.T) {
			rr := serve(t, New(), &http.Cookie{Name: "NEXT_LOCALE", Value: l})
			assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
			assert.Equal(t, "/"+l, rr.Header().Get("Location"))
		})
	}
}

func TestRedirector_Fallback(t *testing.T) {
	rr := serve(t, New())
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/en", rr.Header().Get("Location"))
}

func TestRedirector_EmptyCookieFallsBack(t *testing.T) {
	rr := serve(t, New(), &http.Cookie{Name: "NEXT_LOCALE", Value: ""})
	assert.Equal(t, "/en", rr.Header().Get("Location"))
}

func TestRedirector_OtherCookiesIgnored(t *testing.T) {
	rr := serve(t, New(), &http.Cookie{Name: "session", Value: "abc"})
	assert.Equal(t, "/en", rr.Header().Get("Location"))
}

func TestRedirector_Options(t *testing.T) {
	h := New(
		WithKey("pref_locale"),
		WithFallback("es"),
		WithStatus(http.StatusFound),
	)

	rr := serve(t, h)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/es", rr.Header().Get("Location"))

	rr = serve(t, h, &http.Cookie{Name: "pref_locale", Value: "it"})
	assert.Equal(t, "/it", rr.Header().Get("Location"))

	// The default cookie name no longer applies.
	rr = serve(t, h, &http.Cookie{Name: "NEXT_LOCALE", Value: "fr"})
	assert.Equal(t, "/es", rr.Header().Get("Location"))
}

func TestRedirector_SourceError(t *testing.T) {
	failing := SourceFunc(func(context.Context, *http.Request, string) (string, bool, error) {
		return "", false, errors.New("store unavailable")
	})

	rr := serve(t, New(WithSource(failing)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Location"))
}

func TestRedirector_InjectedSource(t *testing.T) {
	var gotKey string
	src := SourceFunc(func(_ context.Context, _ *http.Request, key string) (string, bool, error) {
		gotKey = key
		return "ja", true, nil
	})

	l, err := New(WithSource(src)).Resolve(context.Background(),
		httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "ja", l)
	assert.Equal(t, DefaultKey, gotKey)
}

func TestCookieSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "NEXT_LOCALE", Value: "fr"})

	_, _, err := CookieSource{}.Lookup(ctx, req, "NEXT_LOCALE")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "/en", Target("en"))
}
