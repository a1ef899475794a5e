package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/middleware"
	"RecipeHub/internal/session"
	"RecipeHub/pkg/moderation"
	"RecipeHub/pkg/user"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Profile(c *fiber.Ctx) error
		EditPage(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		ToggleFollow(c *fiber.Ctx) error
		Followers(c *fiber.Ctx) error
		Following(c *fiber.Ctx) error
		Report(c *fiber.Ctx) error
	}

	userHandler struct {
		userService       user.UserService
		moderationService moderation.ModerationService
		validator         *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, moderationService moderation.ModerationService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:       userService,
		moderationService: moderationService,
		validator:         validator,
	}
}

func profilePath(id uint) string {
	return fmt.Sprintf("/User/Profile/%d", id)
}

func (h *userHandler) Profile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedGetProfile, err)
	}

	res, err := h.userService.GetProfile(c.Context(), id, viewerPtr(c))
	if err != nil {
		return notFound(c, domain.MessageFailedGetProfile, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
	}
	return presenters.Render(c, "user/profile", res.User.Username, fiber.Map{"Profile": res})
}

func (h *userHandler) EditPage(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)

	res, err := h.userService.GetProfile(c.Context(), viewer.ID, &viewer)
	if err != nil {
		return notFound(c, domain.MessageFailedGetProfile, err)
	}
	return presenters.Render(c, "user/edit", "Edit profile", fiber.Map{"Profile": res})
}

func (h *userHandler) Edit(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.UpdateProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("avatar"); err == nil {
		req.Avatar = file
	}

	if err := h.validator.Struct(req); err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedUpdateProfile, err)
	}

	res, err := h.userService.UpdateProfile(c.Context(), viewer.ID, *req)
	if err != nil {
		return fail(c, "/User/Edit", domain.MessageFailedUpdateProfile, err)
	}
	session.SetDisplay(c, res)

	return succeed(c, profilePath(viewer.ID), domain.MessageSuccessUpdateProfile, res)
}

func (h *userHandler) ToggleFollow(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.ToggleFollowRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
	}

	res, err := h.userService.ToggleFollow(c.Context(), viewer.ID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleFollow, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleFollow)
}

func (h *userHandler) Followers(c *fiber.Ctx) error {
	return h.followList(c, "Followers", h.userService.GetFollowers, domain.MessageSuccessGetFollowers)
}

func (h *userHandler) Following(c *fiber.Ctx) error {
	return h.followList(c, "Following", h.userService.GetFollowing, domain.MessageSuccessGetFollowing)
}

type followLister func(ctx context.Context, userID uint, page, limit int) ([]domain.UserSummary, int64, error)

func (h *userHandler) followList(c *fiber.Ctx, title string, list followLister, message string) error {
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedGetFollowers, err)
	}
	page, limit := pageParams(c)

	users, total, err := list(c.Context(), id, page, limit)
	if err != nil {
		return notFound(c, domain.MessageFailedGetFollowers, err)
	}

	data := fiber.Map{
		"users":      users,
		"pagination": domain.NewPagination(page, limit, total),
	}
	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, data, fiber.StatusOK, message)
	}
	return presenters.Render(c, "user/follows", title, fiber.Map{
		"ProfileID":  id,
		"Users":      users,
		"Pagination": data["pagination"],
	})
}

func (h *userHandler) Report(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.ReportUserRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, presenters.RedirectBack(c, middleware.HomePath), domain.MessageFailedBodyRequest, err)
	}
	back := presenters.RedirectBack(c, profilePath(req.UserID))

	if err := h.validator.Struct(req); err != nil {
		return fail(c, back, domain.MessageFailedReport, err)
	}

	if err := h.moderationService.ReportUser(c.Context(), viewer.ID, *req); err != nil {
		return fail(c, back, domain.MessageFailedReport, err)
	}

	return succeed(c, back, domain.MessageSuccessReport, nil)
}
