package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/middleware"
	"RecipeHub/pkg/moderation"
	"RecipeHub/pkg/recipe"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	adminIndexPath       = "/Admin/Index"
	adminModerationPath  = "/Admin/Moderation"
	adminUserReportsPath = "/Admin/UserReports"
	adminUsersPath       = "/Admin/Users"
)

type (
	AdminHandler interface {
		Index(c *fiber.Ctx) error
		Moderation(c *fiber.Ctx) error
		RecipeReports(c *fiber.Ctx) error

		ApproveRecipe(c *fiber.Ctx) error
		BanRecipe(c *fiber.Ctx) error
		UnbanRecipe(c *fiber.Ctx) error
		FlagRecipe(c *fiber.Ctx) error
		UnflagRecipe(c *fiber.Ctx) error
		ResolveReport(c *fiber.Ctx) error
		RejectReport(c *fiber.Ctx) error

		UserReports(c *fiber.Ctx) error
		ResolveUserReport(c *fiber.Ctx) error
		RejectUserReport(c *fiber.Ctx) error

		Users(c *fiber.Ctx) error
		BanUser(c *fiber.Ctx) error
		UnbanUser(c *fiber.Ctx) error

		AddIngredient(c *fiber.Ctx) error
		AddCategory(c *fiber.Ctx) error
	}

	adminHandler struct {
		moderationService moderation.ModerationService
		recipeService     recipe.RecipeService
		validator         *validator.Validate
	}

	recipeAction func(ctx context.Context, admin domain.SessionUser, recipeID uint) error
	idAction     func(ctx context.Context, id uint) error
)

func NewAdminHandler(moderationService moderation.ModerationService, recipeService recipe.RecipeService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		moderationService: moderationService,
		recipeService:     recipeService,
		validator:         validator,
	}
}

func (h *adminHandler) Index(c *fiber.Ctx) error {
	stats, err := h.moderationService.GetDashboard(c.Context())
	if err != nil {
		return fail(c, middleware.HomePath, domain.MessageFailedGetDashboard, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
	}
	return presenters.Render(c, "admin/index", "Dashboard", fiber.Map{"Stats": stats})
}

func (h *adminHandler) Moderation(c *fiber.Ctx) error {
	admin, _ := middleware.Viewer(c)

	worklist, err := h.moderationService.GetWorklist(c.Context(), admin)
	if err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedGetWorklist, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, worklist, fiber.StatusOK, domain.MessageSuccessGetWorklist)
	}
	return presenters.Render(c, "admin/moderation", "Moderation", fiber.Map{"Worklist": worklist})
}

func (h *adminHandler) RecipeReports(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, adminModerationPath, domain.MessageFailedGetReports, err)
	}

	reports, err := h.moderationService.GetRecipeReports(c.Context(), id)
	if err != nil {
		return fail(c, adminModerationPath, domain.MessageFailedGetReports, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, reports, fiber.StatusOK, domain.MessageSuccessGetReports)
	}
	return presenters.Render(c, "admin/reports", "Reports", fiber.Map{
		"RecipeID": id,
		"Reports":  reports,
	})
}

// applyRecipe runs one recipe moderation action and returns to the page the
// admin came from.
func (h *adminHandler) applyRecipe(c *fiber.Ctx, name string, action recipeAction) error {
	admin, _ := middleware.Viewer(c)
	back := presenters.RedirectBack(c, adminModerationPath)

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, back, domain.MessageFailedModerationAction, err)
	}

	if err := action(c.Context(), admin, id); err != nil {
		return fail(c, back, domain.MessageFailedModerationAction, err)
	}
	zap.L().Info("recipe moderated",
		zap.String("action", name),
		zap.Uint("recipe_id", id),
		zap.Uint("admin_id", admin.ID))

	return succeed(c, back, domain.MessageSuccessModerationAction, nil)
}

func (h *adminHandler) apply(c *fiber.Ctx, fallback string, name string, action idAction) error {
	admin, _ := middleware.Viewer(c)
	back := presenters.RedirectBack(c, fallback)

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, back, domain.MessageFailedModerationAction, err)
	}

	if err := action(c.Context(), id); err != nil {
		return fail(c, back, domain.MessageFailedModerationAction, err)
	}
	zap.L().Info("moderation action",
		zap.String("action", name),
		zap.Uint("target_id", id),
		zap.Uint("admin_id", admin.ID))

	return succeed(c, back, domain.MessageSuccessModerationAction, nil)
}

func (h *adminHandler) ApproveRecipe(c *fiber.Ctx) error {
	return h.applyRecipe(c, moderation.ActionApprove, h.moderationService.ApproveRecipe)
}

func (h *adminHandler) BanRecipe(c *fiber.Ctx) error {
	return h.applyRecipe(c, moderation.ActionBan, h.moderationService.BanRecipe)
}

func (h *adminHandler) UnbanRecipe(c *fiber.Ctx) error {
	return h.applyRecipe(c, moderation.ActionUnban, h.moderationService.UnbanRecipe)
}

func (h *adminHandler) FlagRecipe(c *fiber.Ctx) error {
	return h.applyRecipe(c, moderation.ActionFlag, h.moderationService.FlagRecipe)
}

func (h *adminHandler) UnflagRecipe(c *fiber.Ctx) error {
	return h.applyRecipe(c, moderation.ActionUnflag, h.moderationService.UnflagRecipe)
}

func (h *adminHandler) ResolveReport(c *fiber.Ctx) error {
	return h.apply(c, adminModerationPath, "resolve_report", h.moderationService.ResolveReport)
}

func (h *adminHandler) RejectReport(c *fiber.Ctx) error {
	return h.apply(c, adminModerationPath, "reject_report", h.moderationService.RejectReport)
}

func (h *adminHandler) UserReports(c *fiber.Ctx) error {
	reports, err := h.moderationService.GetUserReports(c.Context())
	if err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedGetReports, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, reports, fiber.StatusOK, domain.MessageSuccessGetReports)
	}
	return presenters.Render(c, "admin/user_reports", "User reports", fiber.Map{"Reports": reports})
}

func (h *adminHandler) ResolveUserReport(c *fiber.Ctx) error {
	return h.apply(c, adminUserReportsPath, "resolve_user_report", h.moderationService.ResolveUserReport)
}

func (h *adminHandler) RejectUserReport(c *fiber.Ctx) error {
	return h.apply(c, adminUserReportsPath, "reject_user_report", h.moderationService.RejectUserReport)
}

func (h *adminHandler) Users(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	users, pagination, err := h.moderationService.ListUsers(c.Context(), page, limit)
	if err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedGetUsers, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, fiber.Map{
			"users":      users,
			"pagination": pagination,
		}, fiber.StatusOK, domain.MessageSuccessGetUsers)
	}
	return presenters.Render(c, "admin/users", "Users", fiber.Map{
		"Users":      users,
		"Pagination": pagination,
	})
}

func (h *adminHandler) BanUser(c *fiber.Ctx) error {
	return h.apply(c, adminUsersPath, "ban_user", h.moderationService.BanUser)
}

func (h *adminHandler) UnbanUser(c *fiber.Ctx) error {
	return h.apply(c, adminUsersPath, "unban_user", h.moderationService.UnbanUser)
}

func (h *adminHandler) addCatalogEntry(c *fiber.Ctx, add func(context.Context, domain.AddCatalogEntryRequest) error) error {
	req := new(domain.AddCatalogEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedAddCatalogEntry, err)
	}

	if err := add(c.Context(), *req); err != nil {
		return fail(c, adminIndexPath, domain.MessageFailedAddCatalogEntry, err)
	}

	return succeed(c, adminIndexPath, domain.MessageSuccessAddCatalogEntry, nil)
}

func (h *adminHandler) AddIngredient(c *fiber.Ctx) error {
	return h.addCatalogEntry(c, h.recipeService.AddIngredient)
}

func (h *adminHandler) AddCategory(c *fiber.Ctx) error {
	return h.addCatalogEntry(c, h.recipeService.AddCategory)
}
