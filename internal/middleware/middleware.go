package middleware

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/session"
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

const (
	LocalsUser   = "user"
	LocalsUserID = "user_id"
	LocalsRole   = "role"

	LoginPath = "/Account/Login"
	HomePath  = "/"
)

type (
	// BanChecker reports whether an account has been banned since it logged in.
	BanChecker interface {
		IsBanned(ctx context.Context, userID uint) (bool, error)
	}

	Middleware interface {
		CORSMiddleware() fiber.Handler
		Identify() fiber.Handler
		AuthRequired() fiber.Handler
		AdminRequired() fiber.Handler
	}

	middleware struct {
		banChecker BanChecker
	}
)

func NewMiddleware(banChecker BanChecker) Middleware {
	return &middleware{banChecker: banChecker}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Requested-With",
		AllowCredentials: false,
	})
}

// Identify copies the session identity into the request locals when present.
// It never rejects a request.
func (m *middleware) Identify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, ok := session.CurrentUser(c); ok {
			setLocals(c, user)
		}
		return c.Next()
	}
}

// AuthRequired redirects anonymous page requests to the login page and
// answers 401 to JSON callers. Banned accounts are logged out.
func (m *middleware) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := session.CurrentUser(c)
		if !ok {
			return loginRequired(c)
		}

		if m.banChecker != nil {
			banned, err := m.banChecker.IsBanned(c.Context(), user.ID)
			if err != nil {
				zap.L().Error("check ban status failed", zap.Error(err), zap.Uint("user_id", user.ID))
			} else if banned {
				if err := session.Logout(c); err != nil {
					zap.L().Warn("destroy session failed", zap.Error(err))
				}
				if presenters.WantsJSON(c) {
					return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserBanned)
				}
				return c.Redirect(LoginPath, fiber.StatusSeeOther)
			}
		}

		setLocals(c, user)
		return c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func (m *middleware) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(LocalsUser).(domain.SessionUser)
		if !ok {
			return loginRequired(c)
		}
		if !user.IsAdmin() {
			zap.L().Warn("admin route denied",
				zap.Uint("user_id", user.ID),
				zap.String("path", c.Path()))
			if presenters.WantsJSON(c) {
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAdminRequired, domain.ErrAdminRequired)
			}
			return presenters.RedirectWithError(c, HomePath, domain.MessageAdminRequired)
		}
		return c.Next()
	}
}

func setLocals(c *fiber.Ctx, user domain.SessionUser) {
	c.Locals(LocalsUser, user)
	c.Locals(LocalsUserID, user.ID)
	c.Locals(LocalsRole, user.Role)
}

func loginRequired(c *fiber.Ctx) error {
	if presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageLoginRequired, domain.ErrLoginRequired)
	}
	return presenters.RedirectWithError(c, LoginPath, domain.MessageLoginRequired)
}

// Viewer returns the user attached by Identify or AuthRequired.
func Viewer(c *fiber.Ctx) (domain.SessionUser, bool) {
	user, ok := c.Locals(LocalsUser).(domain.SessionUser)
	return user, ok
}
