package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		Ingredients(c *fiber.Ctx) error
		Categories(c *fiber.Ctx) error
	}

	catalogHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewCatalogHandler(recipeService recipe.RecipeService) CatalogHandler {
	return &catalogHandler{recipeService: recipeService}
}

// Ingredients serves autocomplete for the ingredient facet.
func (h *catalogHandler) Ingredients(c *fiber.Ctx) error {
	names, err := h.recipeService.GetIngredientCatalog(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogResponse{Ingredients: names}, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.recipeService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogResponse{Categories: categories}, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}
