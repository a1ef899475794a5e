package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	HomeHandler interface {
		Index(c *fiber.Ctx) error
	}

	homeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewHomeHandler(recipeService recipe.RecipeService) HomeHandler {
	return &homeHandler{recipeService: recipeService}
}

// Index shows the latest recipes and, for logged in users, the recipes of
// the people they follow.
func (h *homeHandler) Index(c *fiber.Ctx) error {
	feed, err := h.recipeService.GetFeed(c.Context(), viewerPtr(c))
	if err != nil {
		zap.L().Error("load feed failed", zap.Error(err))
		if presenters.WantsJSON(c) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
		}
		return presenters.Render(c, "home/index", "RecipeHub", fiber.Map{
			"Feed":  domain.FeedResponse{},
			"Error": capitalize(domain.MessageFailedGetRecipes),
		})
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, feed, fiber.StatusOK, domain.MessageSuccessGetRecipes)
	}
	return presenters.Render(c, "home/index", "RecipeHub", fiber.Map{"Feed": feed})
}
