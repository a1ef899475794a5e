package presenters

import (
	"RecipeHub/internal/session"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MainLayout = "layouts/main"

// Render renders a page inside the main layout. The current user and any
// pending flash messages are added to the template data.
func Render(c *fiber.Ctx, view string, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	user, loggedIn := session.CurrentUser(c)
	success, failure := session.PopFlash(c)

	data["Title"] = title
	data["LoggedIn"] = loggedIn
	data["CurrentUser"] = user
	data["IsAdmin"] = loggedIn && user.IsAdmin()
	data["FlashSuccess"] = success
	data["FlashError"] = failure

	return c.Render(view, data, MainLayout)
}

// RedirectWithFlash stores a success message and redirects.
func RedirectWithFlash(c *fiber.Ctx, location string, message string) error {
	session.FlashSuccess(c, message)
	return c.Redirect(location, fiber.StatusSeeOther)
}

// RedirectWithError stores an error message and redirects.
func RedirectWithError(c *fiber.Ctx, location string, message string) error {
	session.FlashError(c, message)
	return c.Redirect(location, fiber.StatusSeeOther)
}

// RedirectBack returns the user to the referring page, or fallback when the
// referer is missing or points to another host.
func RedirectBack(c *fiber.Ctx, fallback string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return fallback
	}
	base := c.BaseURL()
	if strings.HasPrefix(ref, base) {
		if path := strings.TrimPrefix(ref, base); isLocalPath(path) {
			return path
		}
	}
	return fallback
}

// isLocalPath reports whether path stays on this host. Browsers read "//x"
// and "/\x" as another host and drop tabs and newlines before doing so.
func isLocalPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.ContainsFunc(path, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return false
	}
	if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
		return false
	}
	return true
}

// WantsJSON reports whether the caller expects a JSON envelope instead of a page.
func WantsJSON(c *fiber.Ctx) bool {
	if c.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return true
	}
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}
