package redirectparam

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Present(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/en/page?redirect=/dashboard", nil)
	rd := NewReader(r)

	assert.Equal(t, Unset, rd.State())

	v, ok := rd.Value()
	assert.True(t, ok)
	assert.Equal(t, "/dashboard", v)
	assert.Equal(t, Set, rd.State())
}

func TestReader_Absent(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/en/page?other=1", nil)
	rd := NewReader(r)

	v, ok := rd.Value()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, Set, rd.State())
}

func TestReader_PresentButEmpty(t *testing.T) {
	rd := NewReader(httptest.NewRequest(http.MethodGet, "/p?redirect=", nil))

	v, ok := rd.Value()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestReader_FirstValueWins(t *testing.T) {
	rd := NewReader(httptest.NewRequest(http.MethodGet, "/p?redirect=/a&redirect=/b", nil))

	v, _ := rd.Value()
	assert.Equal(t, "/a", v)
}

func TestReader_ReadsOnce(t *testing.T) {
	u, err := url.Parse("/p?redirect=/first")
	require.NoError(t, err)

	calls := 0
	rd := New(func() *url.URL { calls++; return u })

	v1, _ := rd.Value()
	u.RawQuery = "redirect=/second"
	v2, _ := rd.Value()

	assert.Equal(t, "/first", v1)
	assert.Equal(t, "/first", v2, "later URL changes must not be observed")
	assert.Equal(t, 1, calls)
}

func TestReader_LazyUntilFirstValue(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/p", nil)
	rd := NewReader(r)

	// Changes made before the first read are visible.
	r.URL.RawQuery = "redirect=/late"
	v, ok := rd.Value()
	assert.True(t, ok)
	assert.Equal(t, "/late", v)
}

func TestReader_NilURL(t *testing.T) {
	rd := New(func() *url.URL { return nil })
	_, ok := rd.Value()
	assert.False(t, ok)
	assert.Equal(t, Set, rd.State())
}

func TestReader_ConcurrentValue(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	u, _ := url.Parse("/p?redirect=/x")
	rd := New(func() *url.URL {
		mu.Lock()
		calls++
		mu.Unlock()
		return u
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := rd.Value()
			assert.Equal(t, "/x", v)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "set", Set.String())
}

func TestMiddleware_FreshReaderPerRequest(t *testing.T) {
	var seen []*Reader
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd := FromContext(r.Context())
		require.NotNil(t, rd)
		assert.Equal(t, Unset, rd.State(), "each mount starts unset")
		v, _ := rd.Value()
		_, _ = w.Write([]byte(v))
		seen = append(seen, rd)
	}))

	for _, target := range []string{"/a?redirect=/one", "/a?redirect=/two"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	v, _ := seen[1].Value()
	assert.Equal(t, "/two", v)
}

func TestFromContext_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, FromContext(r.Context()))
}
