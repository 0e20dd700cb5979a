// components/text/text.go
//
// JSON endpoints over the slug and truncate helpers, used by the editor
// to preview permalinks and card summaries as the author types.
//
//	GET /api/slug?title=Hello+World          → {"title":…,"slug":"hello-world"}
//	GET /api/truncate?text=Hello+World&max=5 → {"text":…,"max":5,"result":"Hello..."}
//
// A missing or non-numeric `max` counts as 0, which Truncate treats as
// "no limit".

package text

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/component"
	"github.com/yanizio/frontdoor/internal/routing"
	"github.com/yanizio/frontdoor/internal/viewhelpers"
)

var _ component.Component = (*Comp)(nil)

// Comp implements component.Component; no state needed.
type Comp struct{}

func (c *Comp) Name() string { return "text" }

func (c *Comp) Routes(r chi.Router) {
	r.Route("/api", func(api chi.Router) {
		api.Get("/slug", getSlug)
		api.Get("/truncate", getTruncate)
	})
}

func init() { component.Register(&Comp{}) }

type slugResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type truncateResponse struct {
	Text   string `json:"text"`
	Max    int    `json:"max"`
	Result string `json:"result"`
}

func getSlug(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	writeJSON(w, slugResponse{Title: title, Slug: routing.MakeSlug(title)})
}

func getTruncate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("text")
	max, _ := strconv.Atoi(q.Get("max"))
	writeJSON(w, truncateResponse{
		Text:   text,
		Max:    max,
		Result: viewhelpers.Truncate(text, max),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("json encode failed", zap.Error(err))
	}
}
