package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/middleware"
	"RecipeHub/internal/session"
	"RecipeHub/pkg/user"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	AccountHandler interface {
		RegisterPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		VerifyEmail(c *fiber.Ctx) error
		ResendVerification(c *fiber.Ctx) error
		ForgotPasswordPage(c *fiber.Ctx) error
		ForgotPassword(c *fiber.Ctx) error
		ResetPasswordPage(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
		ChangePassword(c *fiber.Ctx) error
	}

	accountHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewAccountHandler(userService user.UserService, validator *validator.Validate) AccountHandler {
	return &accountHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *accountHandler) RegisterPage(c *fiber.Ctx) error {
	return presenters.Render(c, "account/register", "Register", nil)
}

func (h *accountHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	form := fiber.Map{"Form": req}

	if err := c.BodyParser(req); err != nil {
		return renderForm(c, "account/register", "Register", form, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "account/register", "Register", form, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return renderForm(c, "account/register", "Register", form, domain.MessageFailedRegister, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
	}
	return presenters.RedirectWithFlash(c, middleware.LoginPath, capitalize(domain.MessageSuccessRegister))
}

func (h *accountHandler) LoginPage(c *fiber.Ctx) error {
	if _, ok := session.CurrentUser(c); ok {
		return c.Redirect(middleware.HomePath, fiber.StatusSeeOther)
	}
	return presenters.Render(c, "account/login", "Log in", nil)
}

func (h *accountHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	form := fiber.Map{"Identifier": ""}

	if err := c.BodyParser(req); err != nil {
		return renderForm(c, "account/login", "Log in", form, domain.MessageFailedBodyRequest, err)
	}
	form["Identifier"] = req.Identifier

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "account/login", "Log in", form, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		form["Unverified"] = errors.Is(err, domain.ErrEmailNotVerified)
		return renderForm(c, "account/login", "Log in", form, domain.MessageFailedLogin, err)
	}

	if err := session.Login(c, res); err != nil {
		return renderForm(c, "account/login", "Log in", form, domain.MessageFailedLogin, err)
	}
	zap.L().Info("user logged in", zap.Uint("user_id", res.ID))

	return succeed(c, middleware.HomePath, domain.MessageSuccessLogin, res)
}

func (h *accountHandler) Logout(c *fiber.Ctx) error {
	if err := session.Logout(c); err != nil {
		zap.L().Warn("destroy session failed", zap.Error(err))
	}
	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
	}
	return c.Redirect(middleware.LoginPath, fiber.StatusSeeOther)
}

func (h *accountHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fail(c, middleware.LoginPath, domain.MessageFailedVerifyEmail, domain.ErrTokenNotFound)
	}

	if err := h.userService.VerifyEmail(c.Context(), token); err != nil {
		return fail(c, middleware.LoginPath, domain.MessageFailedVerifyEmail, err)
	}

	return succeed(c, middleware.LoginPath, domain.MessageSuccessVerifyEmail, nil)
}

func (h *accountHandler) ResendVerification(c *fiber.Ctx) error {
	req := new(domain.ResendVerificationRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, middleware.LoginPath, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return fail(c, middleware.LoginPath, domain.MessageFailedSendVerification, err)
	}

	if err := h.userService.ResendVerification(c.Context(), *req); err != nil {
		return fail(c, middleware.LoginPath, domain.MessageFailedSendVerification, err)
	}

	return succeed(c, middleware.LoginPath, domain.MessageSuccessSendVerification, nil)
}

func (h *accountHandler) ForgotPasswordPage(c *fiber.Ctx) error {
	return presenters.Render(c, "account/forgot_password", "Forgot password", nil)
}

func (h *accountHandler) ForgotPassword(c *fiber.Ctx) error {
	req := new(domain.ForgotPasswordRequest)
	form := fiber.Map{"Form": req}

	if err := c.BodyParser(req); err != nil {
		return renderForm(c, "account/forgot_password", "Forgot password", form, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "account/forgot_password", "Forgot password", form, domain.MessageFailedForgotPassword, err)
	}

	if err := h.userService.ForgotPassword(c.Context(), *req); err != nil {
		return renderForm(c, "account/forgot_password", "Forgot password", form, domain.MessageFailedForgotPassword, err)
	}

	return succeed(c, middleware.LoginPath, domain.MessageSuccessForgotPassword, nil)
}

func (h *accountHandler) ResetPasswordPage(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return presenters.RedirectWithError(c, "/Account/ForgotPassword", capitalize(domain.ErrTokenNotFound.Error()))
	}
	return presenters.Render(c, "account/reset_password", "Reset password", fiber.Map{"Token": token})
}

func (h *accountHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	form := fiber.Map{}

	if err := c.BodyParser(req); err != nil {
		return renderForm(c, "account/reset_password", "Reset password", form, domain.MessageFailedBodyRequest, err)
	}
	form["Token"] = req.Token

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "account/reset_password", "Reset password", form, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), *req); err != nil {
		return renderForm(c, "account/reset_password", "Reset password", form, domain.MessageFailedResetPassword, err)
	}

	return succeed(c, middleware.LoginPath, domain.MessageSuccessResetPassword, nil)
}

func (h *accountHandler) ChangePassword(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.ChangePasswordRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedChangePassword, err)
	}

	if err := h.userService.ChangePassword(c.Context(), viewer.ID, *req); err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedChangePassword, err)
	}

	return succeed(c, "/User/Edit", domain.MessageSuccessChangePassword, nil)
}
