package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/middleware"
	"RecipeHub/pkg/interaction"
	"RecipeHub/pkg/moderation"
	"RecipeHub/pkg/recipe"
	"RecipeHub/pkg/search"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const stepMediaField = "step_media_"

type (
	RecipeHandler interface {
		Detail(c *fiber.Ctx) error
		CreatePage(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		EditPage(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		ToggleSave(c *fiber.Ctx) error
		Comment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		Report(c *fiber.Ctx) error
		Notebook(c *fiber.Ctx) error
		Search(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService      recipe.RecipeService
		interactionService interaction.InteractionService
		searchService      search.SearchService
		moderationService  moderation.ModerationService
		validator          *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	interactionService interaction.InteractionService,
	searchService search.SearchService,
	moderationService moderation.ModerationService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:      recipeService,
		interactionService: interactionService,
		searchService:      searchService,
		moderationService:  moderationService,
		validator:          validator,
	}
}

func detailPath(id uint) string {
	return fmt.Sprintf("/Recipe/Detail/%d", id)
}

func (h *recipeHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), id, viewerPtr(c))
	if err != nil {
		return notFound(c, domain.MessageFailedGetRecipeDetail, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
	}
	return presenters.Render(c, "recipe/detail", res.Name, fiber.Map{"Recipe": res})
}

// parseRecipeForm fills req from a form post. Ingredients may come as one
// textarea; steps come as repeated fields with their files under
// step_media_<index>.
func parseRecipeForm(c *fiber.Ctx, req *domain.CreateRecipeRequest) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	req.Ingredients = splitLines(req.Ingredients)

	// blank steps are dropped, so remember where each kept one sat in the form
	steps := make([]string, 0, len(req.Steps))
	ids := make([]uint, 0, len(req.Steps))
	position := make(map[int]int, len(req.Steps))
	for i, s := range req.Steps {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		position[i] = len(steps)
		steps = append(steps, s)
		if i < len(req.StepIDs) {
			ids = append(ids, req.StepIDs[i])
		} else {
			ids = append(ids, 0)
		}
	}
	req.Steps = steps
	req.StepIDs = ids

	form, err := c.MultipartForm()
	if err != nil {
		// url-encoded and JSON posts carry no files
		return nil
	}
	if files := form.File["thumbnail"]; len(files) > 0 {
		req.Thumbnail = files[0]
	}
	for field, files := range form.File {
		if !strings.HasPrefix(field, stepMediaField) || len(files) == 0 {
			continue
		}
		raw, err := strconv.Atoi(strings.TrimPrefix(field, stepMediaField))
		if err != nil {
			continue
		}
		index, ok := position[raw]
		if !ok {
			continue
		}
		if req.StepMedia == nil {
			req.StepMedia = make(map[int][]*multipart.FileHeader)
		}
		req.StepMedia[index] = files
	}
	return nil
}

func (h *recipeHandler) formData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	categories, err := h.recipeService.GetCategories(c.Context())
	if err != nil {
		categories = []domain.CategoryDetail{}
	}
	data["Categories"] = categories
	return data
}

func (h *recipeHandler) CreatePage(c *fiber.Ctx) error {
	return presenters.Render(c, "recipe/form", "New recipe", h.formData(c, fiber.Map{}))
}

func (h *recipeHandler) Create(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.CreateRecipeRequest)
	data := fiber.Map{"Form": req}

	if err := parseRecipeForm(c, req); err != nil {
		return renderForm(c, "recipe/form", "New recipe", h.formData(c, data), domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "recipe/form", "New recipe", h.formData(c, data), domain.MessageFailedCreateRecipe, err)
	}

	id, err := h.recipeService.CreateRecipe(c.Context(), viewer.ID, *req)
	if err != nil {
		return renderForm(c, "recipe/form", "New recipe", h.formData(c, data), domain.MessageFailedCreateRecipe, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
	}
	return presenters.RedirectWithFlash(c, detailPath(id), capitalize(domain.MessageSuccessCreateRecipe))
}

func (h *recipeHandler) EditPage(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), id, &viewer)
	if err != nil {
		return notFound(c, domain.MessageFailedGetRecipeDetail, err)
	}
	if res.Author.ID != viewer.ID {
		return presenters.RedirectWithError(c, detailPath(id), capitalize(domain.ErrUnauthorizedRecipeAccess.Error()))
	}

	return presenters.Render(c, "recipe/form", "Edit recipe", h.formData(c, fiber.Map{"Recipe": res}))
}

func (h *recipeHandler) Edit(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedUpdateRecipe, err)
	}

	req := domain.UpdateRecipeRequest{RecipeID: id}
	editPath := fmt.Sprintf("/Recipe/Edit/%d", id)

	if err := parseRecipeForm(c, &req.CreateRecipeRequest); err != nil {
		return fail(c, editPath, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return fail(c, editPath, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), viewer, req); err != nil {
		return fail(c, editPath, domain.MessageFailedUpdateRecipe, err)
	}

	return succeed(c, detailPath(id), domain.MessageSuccessUpdateRecipe, nil)
}

func (h *recipeHandler) Delete(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	id, err := parseID(c, "id")
	if err != nil {
		return notFound(c, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), viewer, id); err != nil {
		return fail(c, detailPath(id), domain.MessageFailedDeleteRecipe, err)
	}

	return succeed(c, profilePath(viewer.ID), domain.MessageSuccessDeleteRecipe, nil)
}

func (h *recipeHandler) ToggleLike(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.RecipeTargetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	res, err := h.interactionService.ToggleLike(c.Context(), viewer.ID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *recipeHandler) ToggleSave(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.RecipeTargetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	res, err := h.interactionService.ToggleSave(c.Context(), viewer.ID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleSave, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleSave)
}

func (h *recipeHandler) Comment(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.interactionService.AddComment(c.Context(), viewer.ID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *recipeHandler) DeleteComment(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.DeleteCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteComment, err)
	}

	if err := h.interactionService.DeleteComment(c.Context(), viewer, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *recipeHandler) Report(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	req := new(domain.ReportRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, presenters.RedirectBack(c, middleware.HomePath), domain.MessageFailedBodyRequest, err)
	}
	back := presenters.RedirectBack(c, detailPath(req.RecipeID))

	if err := h.validator.Struct(req); err != nil {
		return fail(c, back, domain.MessageFailedReport, err)
	}

	if err := h.moderationService.ReportRecipe(c.Context(), viewer.ID, *req); err != nil {
		return fail(c, back, domain.MessageFailedReport, err)
	}

	return succeed(c, back, domain.MessageSuccessReport, nil)
}

func (h *recipeHandler) Notebook(c *fiber.Ctx) error {
	viewer, _ := middleware.Viewer(c)
	page, limit := pageParams(c)

	recipes, total, err := h.recipeService.GetNotebook(c.Context(), viewer.ID, page, limit)
	if err != nil {
		return fail(c, middleware.HomePath, domain.MessageFailedGetNotebook, err)
	}

	pagination := domain.NewPagination(page, limit, total)
	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, fiber.Map{
			"recipes":    recipes,
			"pagination": pagination,
		}, fiber.StatusOK, domain.MessageSuccessGetNotebook)
	}
	return presenters.Render(c, "recipe/notebook", "My notebook", fiber.Map{
		"Recipes":    recipes,
		"Pagination": pagination,
	})
}

func (h *recipeHandler) Search(c *fiber.Ctx) error {
	req := new(domain.SearchRequest)

	if err := c.QueryParser(req); err != nil {
		return renderForm(c, "recipe/search", "Search", h.formData(c, fiber.Map{}), domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return renderForm(c, "recipe/search", "Search", h.formData(c, fiber.Map{"Query": req}), domain.MessageFailedSearch, err)
	}

	res, err := h.searchService.Search(c.Context(), *req)
	if err != nil {
		return renderForm(c, "recipe/search", "Search", h.formData(c, fiber.Map{"Query": req}), domain.MessageFailedSearch, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
	}
	return presenters.Render(c, "recipe/search", "Search", h.formData(c, fiber.Map{
		"Query":   res.Query,
		"Results": res.Results,
		"Total":   res.Total,
	}))
}
