// components/auth/auth.go
//
// Login view.  The page echoes the `redirect` query parameter into a
// hidden field so the eventual form POST can send the user back where they
// came from.  The parameter is read once per request through the
// redirectparam reader attached by the router.
//
//------------------------------------------------------------------------------

package auth

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/component"
	"github.com/yanizio/frontdoor/internal/config"
	"github.com/yanizio/frontdoor/internal/redirectparam"
	"github.com/yanizio/frontdoor/internal/viewhelpers"
)

// Compile-time assertions.
var (
	_ component.Component   = (*Component)(nil)
	_ component.Initializer = (*Component)(nil)
)

const loginHTML = `<!doctype html>
<html lang="{{ .Locale }}">
<head><meta charset="utf-8"><title>Sign in</title></head>
<body>
  <form method="post" action="/{{ .Locale }}/login">
    {{- with redirectParam .Redirect }}
    <input type="hidden" name="redirect" value="{{ . }}">
    {{- end }}
    <label>Email <input type="email" name="email"></label>
    <label>Password <input type="password" name="password"></label>
    <button type="submit">Sign in</button>
  </form>
</body>
</html>
`

// Component serves the login page.
type Component struct {
	tpl *template.Template
}

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return "auth" }

// Init parses the login template with the shared view helpers.
func (c *Component) Init(*config.Config) error {
	tpl, err := template.New("login").Funcs(viewhelpers.FuncMap()).Parse(loginHTML)
	if err != nil {
		return err
	}
	c.tpl = tpl
	return nil
}

// Routes adds GET /{locale}/login.
func (c *Component) Routes(r chi.Router) {
	r.Get("/{locale}/login", c.handleLoginGET)
}

// Register component at program start.
func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handleLoginGET(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Locale":   chi.URLParam(r, "locale"),
		"Redirect": redirectparam.FromContext(r.Context()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.tpl.Execute(w, data); err != nil {
		zap.L().Error("login render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
	}
}
