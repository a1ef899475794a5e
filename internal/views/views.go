// Package views holds the server rendered pages. Templates are embedded so
// the binary can be deployed without the source tree.
package views

import (
	"embed"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts partials home account user recipe admin errors
var FS embed.FS

// AddFuncs registers the helpers the templates call.
func AddFuncs(engine *html.Engine) {
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	engine.AddFunc("date", FormatDate)
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("initial", Initial)
	engine.AddFunc("hasID", HasID)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}

// Initial is the avatar placeholder letter for a name.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

func HasID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
