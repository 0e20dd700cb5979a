//
//  internal/redirectparam/reader.go
//
//  Read-once accessor for the `redirect` query parameter.
//
//  A Reader belongs to one view instance (one request).  The first call to
//  Value inspects the URL exactly once and caches the result; later calls
//  return the cached value even if the URL has since changed.  A new
//  request gets a new Reader, which starts Unset again.
//
//      Unset ──(first Value)──▶ Set(value | absent)
//

package redirectparam

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/metrics"
)

// Key is the query-string parameter a Reader consumes.
const Key = "redirect"

// State reports whether a Reader has performed its single read.
type State int

const (
	Unset State = iota
	Set
)

func (s State) String() string {
	if s == Set {
		return "set"
	}
	return "unset"
}

// Reader caches the redirect parameter after its first read.  Zero value
// is unusable; construct with New or NewReader.
type Reader struct {
	src  func() *url.URL
	once sync.Once
	set  atomic.Bool

	val     string
	present bool
}

// New returns an Unset Reader that will consult src on first use.
func New(src func() *url.URL) *Reader {
	return &Reader{src: src}
}

// NewReader binds a Reader to r.URL.  The URL is dereferenced lazily, on
// the first Value call, not here.
func NewReader(r *http.Request) *Reader {
	return New(func() *url.URL { return r.URL })
}

// Value returns the redirect parameter and whether it was present.  A
// present but empty parameter (`?redirect=`) returns ("", true).
func (rd *Reader) Value() (string, bool) {
	rd.once.Do(rd.load)
	return rd.val, rd.present
}

// State returns Unset until Value has run once, then Set.
func (rd *Reader) State() State {
	if rd.set.Load() {
		return Set
	}
	return Unset
}

func (rd *Reader) load() {
	if u := rd.src(); u != nil {
		if vals, ok := u.Query()[Key]; ok && len(vals) > 0 {
			rd.val, rd.present = vals[0], true
		}
	}
	rd.set.Store(true)

	metrics.RedirectParamReadsTotal.WithLabelValues(strconv.FormatBool(rd.present)).Inc()
	zap.L().Debug("redirect param read",
		zap.Bool("present", rd.present),
		zap.String("value", rd.val))
}
