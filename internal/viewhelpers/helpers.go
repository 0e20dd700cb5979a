// internal/viewhelpers/helpers.go
//
// Template helpers shared by every page.  Handlers attach them with
//
//	tpl := template.New("page").Funcs(viewhelpers.FuncMap())
//
// so templates can call:
//
//	<a href="/posts/{{ slug .Title }}">{{ truncate .Summary 80 }}</a>
//	<input type="hidden" name="redirect" value="{{ redirectParam .Redirect }}">
//
// The limit passed to truncate is optional; {{ truncate .Body }} returns
// the body unchanged.
package viewhelpers

import (
	"html/template"

	"github.com/yanizio/frontdoor/internal/redirectparam"
	"github.com/yanizio/frontdoor/internal/routing"
)

// FuncMap returns the slug, truncate, and redirectParam helpers.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"slug":          routing.MakeSlug,
		"truncate":      truncateOpt,
		"redirectParam": redirectParam,
	}
}

// truncateOpt lets templates omit the limit.  Extra arguments are ignored.
func truncateOpt(text string, maxLength ...int) string {
	if len(maxLength) == 0 {
		return Truncate(text, 0)
	}
	return Truncate(text, maxLength[0])
}

// redirectParam returns the captured value, or "" when absent or when the
// view has no reader.
func redirectParam(rd *redirectparam.Reader) string {
	if rd == nil {
		return ""
	}
	v, _ := rd.Value()
	return v
}
