package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/middleware"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultPageSize = 20

func parseID(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(key), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

func pageParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return page, limit
}

// viewerPtr returns the current user for services that accept anonymous
// callers.
func viewerPtr(c *fiber.Ctx) *domain.SessionUser {
	if user, ok := middleware.Viewer(c); ok {
		return &user
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrAdminRequired),
		errors.Is(err, domain.ErrUserBanned):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

// fail answers a failed action with a JSON envelope for API callers and with
// a flash error plus redirect otherwise.
func fail(c *fiber.Ctx, location string, message string, err error) error {
	zap.L().Warn(message, zap.Error(err), zap.String("path", c.Path()))
	if presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}
	return presenters.RedirectWithError(c, location, capitalize(message)+": "+presenters.ErrorText(err))
}

func succeed(c *fiber.Ctx, location string, message string, data any) error {
	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, data, fiber.StatusOK, message)
	}
	return presenters.RedirectWithFlash(c, location, capitalize(message))
}

// renderForm re-renders a form page with the error inline.
func renderForm(c *fiber.Ctx, view string, title string, data fiber.Map, message string, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}
	if data == nil {
		data = fiber.Map{}
	}
	data["Error"] = presenters.ErrorText(err)
	c.Status(statusFor(err))
	return presenters.Render(c, view, title, data)
}

// notFound sends anonymous or unknown targets back home.
func notFound(c *fiber.Ctx, message string, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}
	return presenters.RedirectWithError(c, middleware.HomePath, capitalize(message)+": "+presenters.ErrorText(err))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitLines turns a textarea into trimmed non-empty lines. Values already
// sent as separate fields are kept as they are.
func splitLines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, line := range strings.Split(v, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

// ErrorHandler answers errors that escape the handler chain, including
// unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := domain.MessageFailedProcessRequest
	if code == fiber.StatusNotFound {
		message = domain.MessageNotFound
	}
	if code >= fiber.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))
	}

	if presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, code, message, err)
	}
	c.Status(code)
	if rerr := presenters.Render(c, "errors/error", "Error", fiber.Map{"Code": code, "Message": capitalize(message)}); rerr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
