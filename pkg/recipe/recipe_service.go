package recipe

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/metrics"
	"RecipeHub/internal/utils/storage"
	"RecipeHub/pkg/interaction"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	FeedSize          = 12
	IngredientSuggest = 20
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, userID uint, req domain.CreateRecipeRequest) (uint, error)
		UpdateRecipe(ctx context.Context, viewer domain.SessionUser, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, viewer domain.SessionUser, recipeID uint) error
		GetRecipeDetail(ctx context.Context, recipeID uint, viewer *domain.SessionUser) (domain.RecipeDetail, error)
		GetFeed(ctx context.Context, viewer *domain.SessionUser) (domain.FeedResponse, error)
		GetNotebook(ctx context.Context, userID uint, page, limit int) ([]domain.RecipeSummary, int64, error)
		GetUserRecipes(ctx context.Context, userID uint, includeHidden bool) ([]domain.RecipeSummary, error)

		GetIngredientCatalog(ctx context.Context, prefix string) ([]string, error)
		GetCategories(ctx context.Context) ([]domain.CategoryDetail, error)
		AddIngredient(ctx context.Context, req domain.AddCatalogEntryRequest) error
		AddCategory(ctx context.Context, req domain.AddCatalogEntryRequest) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		interactionService interaction.InteractionService
		s3                 storage.AwsS3
	}

	// uploads tracks the objects stored for one request so they can be
	// removed again when the database write fails.
	uploads struct {
		s3   storage.AwsS3
		keys []string
	}
)

func NewRecipeService(recipeRepository RecipeRepository, interactionService interaction.InteractionService, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		interactionService: interactionService,
		s3:                 s3,
	}
}

func (u *uploads) put(ctx context.Context, file *multipart.FileHeader, folder string, allowed ...string) (storage.UploadedObject, error) {
	obj, err := u.s3.UploadFile(ctx, file, folder, allowed...)
	if err != nil {
		return storage.UploadedObject{}, err
	}
	u.keys = append(u.keys, obj.Key)
	return obj, nil
}

func (u *uploads) rollback(ctx context.Context) {
	for _, key := range u.keys {
		if err := u.s3.DeleteFile(ctx, key); err != nil {
			zap.L().Warn("remove uploaded object failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// removeURLs deletes stored objects that are no longer referenced.
func (s *recipeService) removeURLs(ctx context.Context, urls ...string) {
	for _, url := range urls {
		key := s.s3.GetObjectKeyFromLink(url)
		if key == "" {
			continue
		}
		if err := s.s3.DeleteFile(ctx, key); err != nil {
			zap.L().Warn("remove stored object failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// draft is a validated recipe form ready to be written.
type draft struct {
	ingredients []string
	steps       []string
	stepIndex   []int
	stepIDs     []uint
	categoryIDs []uint
}

func (s *recipeService) validate(ctx context.Context, req domain.CreateRecipeRequest) (draft, error) {
	var d draft
	for _, line := range req.Ingredients {
		if line = strings.TrimSpace(line); line != "" {
			d.ingredients = append(d.ingredients, line)
		}
	}
	if len(d.ingredients) == 0 {
		return draft{}, domain.ErrNoIngredients
	}

	for i, step := range req.Steps {
		if step = strings.TrimSpace(step); step != "" {
			d.steps = append(d.steps, step)
			d.stepIndex = append(d.stepIndex, i)
			var id uint
			if i < len(req.StepIDs) {
				id = req.StepIDs[i]
			}
			d.stepIDs = append(d.stepIDs, id)
		}
	}
	if len(d.steps) == 0 {
		return draft{}, domain.ErrNoSteps
	}

	seen := make(map[uint]bool)
	for _, id := range req.CategoryIDs {
		if !seen[id] {
			seen[id] = true
			d.categoryIDs = append(d.categoryIDs, id)
		}
	}
	if len(d.categoryIDs) > 0 {
		count, err := s.recipeRepository.CountCategories(ctx, d.categoryIDs)
		if err != nil {
			return draft{}, err
		}
		if count != int64(len(d.categoryIDs)) {
			return draft{}, domain.ErrUnknownCategory
		}
	}
	return d, nil
}

// linkIngredients resolves each free text line against the master catalog.
// A line matches a catalog entry with the same name, or failing that an entry
// named like the last word of the line ("2 ripe tomato" -> "tomato").
func (s *recipeService) linkIngredients(ctx context.Context, lines []string) ([]*entities.RecipeIngredient, error) {
	candidates := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		candidates = append(candidates, line)
		if last := lastWord(line); last != "" {
			candidates = append(candidates, last)
		}
	}

	catalog, err := s.recipeRepository.FindIngredientsByNames(ctx, candidates)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(catalog))
	for _, ing := range catalog {
		byName[strings.ToLower(ing.Name)] = ing.ID
	}

	res := make([]*entities.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		ingredient := &entities.RecipeIngredient{Text: line}
		if id, ok := byName[strings.ToLower(line)]; ok {
			ingredient.IngredientID = &id
		} else if id, ok := byName[strings.ToLower(lastWord(line))]; ok {
			ingredient.IngredientID = &id
		}
		res = append(res, ingredient)
	}
	return res, nil
}

func lastWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return strings.Trim(fields[len(fields)-1], ".,;:")
}

// buildSteps uploads the media attached to each step. existing supplies the
// media kept from a previous version of the recipe, keyed by step ID.
func (s *recipeService) buildSteps(ctx context.Context, d draft, files map[int][]*multipart.FileHeader, existing map[uint][]*entities.StepMedia, up *uploads) ([]*entities.RecipeStep, error) {
	steps := make([]*entities.RecipeStep, 0, len(d.steps))
	for i, content := range d.steps {
		step := &entities.RecipeStep{Content: content}
		formIndex := d.stepIndex[i]

		if parts := files[formIndex]; len(parts) > 0 {
			for _, part := range parts {
				obj, err := up.put(ctx, part, "steps", storage.AllowMedia...)
				if err != nil {
					return nil, err
				}
				step.Media = append(step.Media, &entities.StepMedia{
					Media: &entities.Media{URL: obj.URL, Kind: obj.Kind},
				})
			}
		} else {
			for _, old := range existing[d.stepIDs[i]] {
				if old.Media == nil {
					continue
				}
				step.Media = append(step.Media, &entities.StepMedia{
					MediaID: old.MediaID,
					Media:   old.Media,
				})
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID uint, req domain.CreateRecipeRequest) (uint, error) {
	d, err := s.validate(ctx, req)
	if err != nil {
		return 0, err
	}

	ingredients, err := s.linkIngredients(ctx, d.ingredients)
	if err != nil {
		return 0, err
	}

	up := &uploads{s3: s.s3}
	recipe := &entities.Recipe{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Difficulty:      req.Difficulty,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Status:          domain.RecipeStatusActive,
		Ingredients:     ingredients,
	}

	if req.Thumbnail != nil {
		obj, err := up.put(ctx, req.Thumbnail, "thumbnails", storage.AllowImage...)
		if err != nil {
			up.rollback(ctx)
			return 0, err
		}
		recipe.ThumbnailURL = obj.URL
	}

	recipe.Steps, err = s.buildSteps(ctx, d, req.StepMedia, nil, up)
	if err != nil {
		up.rollback(ctx)
		return 0, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, d.categoryIDs); err != nil {
		up.rollback(ctx)
		return 0, fmt.Errorf("create recipe: %w", err)
	}

	metrics.RecipesCreated.Inc()
	return recipe.ID, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, viewer domain.SessionUser, req domain.UpdateRecipeRequest) error {
	current, err := s.recipeRepository.GetRecipeDetail(ctx, req.RecipeID)
	if err != nil {
		return err
	}
	if current.UserID != viewer.ID {
		return domain.ErrUnauthorizedRecipeAccess
	}
	if current.Status == domain.RecipeStatusDeleted {
		return domain.ErrRecipeNotFound
	}

	d, err := s.validate(ctx, req.CreateRecipeRequest)
	if err != nil {
		return err
	}

	ingredients, err := s.linkIngredients(ctx, d.ingredients)
	if err != nil {
		return err
	}

	existing := make(map[uint][]*entities.StepMedia, len(current.Steps))
	for _, step := range current.Steps {
		existing[step.ID] = step.Media
	}

	up := &uploads{s3: s.s3}
	recipe := &entities.Recipe{
		ID:              current.ID,
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		ThumbnailURL:    current.ThumbnailURL,
		Difficulty:      req.Difficulty,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Ingredients:     ingredients,
	}

	var replacedThumbnail string
	if req.Thumbnail != nil {
		obj, err := up.put(ctx, req.Thumbnail, "thumbnails", storage.AllowImage...)
		if err != nil {
			up.rollback(ctx)
			return err
		}
		replacedThumbnail = current.ThumbnailURL
		recipe.ThumbnailURL = obj.URL
	}

	recipe.Steps, err = s.buildSteps(ctx, d, req.StepMedia, existing, up)
	if err != nil {
		up.rollback(ctx)
		return err
	}

	removed, err := s.recipeRepository.UpdateRecipe(ctx, recipe, d.categoryIDs)
	if err != nil {
		up.rollback(ctx)
		return fmt.Errorf("update recipe: %w", err)
	}

	if replacedThumbnail != "" {
		removed = append(removed, replacedThumbnail)
	}
	s.removeURLs(ctx, removed...)
	return nil
}

// DeleteRecipe hides the recipe by setting its status to deleted. Rows and
// stored media are kept for moderation history.
func (s *recipeService) DeleteRecipe(ctx context.Context, viewer domain.SessionUser, recipeID uint) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.Status == domain.RecipeStatusDeleted {
		return domain.ErrRecipeNotFound
	}
	if recipe.UserID != viewer.ID && !viewer.IsAdmin() {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return s.recipeRepository.UpdateRecipeStatus(ctx, recipe.ID, domain.RecipeStatusDeleted)
}

// visible reports whether viewer may open a recipe in the given status.
// Deleted recipes stay visible to administrators only; banned and pending
// ones to their owner as well.
func visible(recipe *entities.Recipe, viewer *domain.SessionUser) bool {
	if recipe.Status == domain.RecipeStatusActive {
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	return recipe.Status != domain.RecipeStatusDeleted && recipe.UserID == viewer.ID
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint, viewer *domain.SessionUser) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeDetail(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if !visible(recipe, viewer) {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}

	comments, err := s.interactionService.GetComments(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	likeCount, err := s.interactionService.CountLikes(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Description:     recipe.Description,
		ThumbnailURL:    recipe.ThumbnailURL,
		Difficulty:      recipe.Difficulty,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Status:          recipe.Status,
		Ingredients:     make([]string, 0, len(recipe.Ingredients)),
		Categories:      make([]domain.CategoryDetail, 0, len(recipe.Types)),
		Steps:           make([]domain.StepDetail, 0, len(recipe.Steps)),
		Comments:        comments,
		LikeCount:       likeCount,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.User != nil {
		detail.Author = authorSummary(recipe.User)
	}
	for _, ing := range recipe.Ingredients {
		detail.Ingredients = append(detail.Ingredients, ing.Text)
	}
	for _, t := range recipe.Types {
		detail.Categories = append(detail.Categories, domain.CategoryDetail{ID: t.ID, Name: t.Name})
	}
	for _, step := range recipe.Steps {
		sd := domain.StepDetail{
			ID:       step.ID,
			Position: step.Position,
			Content:  step.Content,
			Media:    make([]domain.MediaDetail, 0, len(step.Media)),
		}
		for _, sm := range step.Media {
			if sm.Media == nil {
				continue
			}
			kind := sm.Media.Kind
			if kind == "" {
				kind = storage.KindOf(sm.Media.URL)
			}
			sd.Media = append(sd.Media, domain.MediaDetail{ID: sm.Media.ID, URL: sm.Media.URL, Kind: kind})
		}
		detail.Steps = append(detail.Steps, sd)
	}

	if viewer != nil {
		detail.Liked, detail.Saved, err = s.interactionService.GetViewerState(ctx, viewer.ID, recipe.ID)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.CanEdit = viewer.ID == recipe.UserID
	}

	return detail, nil
}

func (s *recipeService) GetFeed(ctx context.Context, viewer *domain.SessionUser) (domain.FeedResponse, error) {
	latest, err := s.recipeRepository.GetLatestRecipes(ctx, FeedSize)
	if err != nil {
		return domain.FeedResponse{}, err
	}

	var following []*entities.Recipe
	if viewer != nil {
		following, err = s.recipeRepository.GetFollowedRecipes(ctx, viewer.ID, FeedSize)
		if err != nil {
			return domain.FeedResponse{}, err
		}
	}

	all := append(append([]*entities.Recipe{}, latest...), following...)
	likes, err := s.recipeRepository.CountLikesByRecipeIDs(ctx, recipeIDs(all))
	if err != nil {
		return domain.FeedResponse{}, err
	}

	return domain.FeedResponse{
		Latest:    toRecipeSummaries(latest, likes),
		Following: toRecipeSummaries(following, likes),
	}, nil
}

func (s *recipeService) GetNotebook(ctx context.Context, userID uint, page, limit int) ([]domain.RecipeSummary, int64, error) {
	recipes, count, err := s.recipeRepository.GetSavedRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	likes, err := s.recipeRepository.CountLikesByRecipeIDs(ctx, recipeIDs(recipes))
	if err != nil {
		return nil, 0, err
	}
	return toRecipeSummaries(recipes, likes), count, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID uint, includeHidden bool) ([]domain.RecipeSummary, error) {
	statuses := []string{domain.RecipeStatusActive}
	if includeHidden {
		statuses = append(statuses, domain.RecipeStatusPending, domain.RecipeStatusBanned)
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID, statuses)
	if err != nil {
		return nil, err
	}
	likes, err := s.recipeRepository.CountLikesByRecipeIDs(ctx, recipeIDs(recipes))
	if err != nil {
		return nil, err
	}
	return toRecipeSummaries(recipes, likes), nil
}

func (s *recipeService) GetIngredientCatalog(ctx context.Context, prefix string) ([]string, error) {
	ingredients, err := s.recipeRepository.ListIngredients(ctx, prefix, IngredientSuggest)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names, nil
}

func (s *recipeService) GetCategories(ctx context.Context) ([]domain.CategoryDetail, error) {
	categories, err := s.recipeRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.CategoryDetail, 0, len(categories))
	for _, c := range categories {
		res = append(res, domain.CategoryDetail{ID: c.ID, Name: c.Name})
	}
	return res, nil
}

func (s *recipeService) AddIngredient(ctx context.Context, req domain.AddCatalogEntryRequest) error {
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		return domain.ErrCatalogNameRequired
	}
	found, err := s.recipeRepository.FindIngredientsByNames(ctx, []string{name})
	if err != nil {
		return err
	}
	if len(found) > 0 {
		return domain.ErrCatalogEntryExists
	}
	return s.recipeRepository.CreateIngredient(ctx, &entities.Ingredient{Name: name})
}

func (s *recipeService) AddCategory(ctx context.Context, req domain.AddCatalogEntryRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ErrCatalogNameRequired
	}
	_, err := s.recipeRepository.FindCategoryByName(ctx, name)
	if err == nil {
		return domain.ErrCatalogEntryExists
	}
	if !errors.Is(err, domain.ErrUnknownCategory) {
		return err
	}
	return s.recipeRepository.CreateCategory(ctx, &entities.RecipeType{Name: name})
}

func recipeIDs(recipes []*entities.Recipe) []uint {
	seen := make(map[uint]bool, len(recipes))
	ids := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		if !seen[r.ID] {
			seen[r.ID] = true
			ids = append(ids, r.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func authorSummary(u *entities.User) domain.UserSummary {
	return domain.UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		Status:    u.Status,
	}
}

func toRecipeSummaries(recipes []*entities.Recipe, likes map[uint]int64) []domain.RecipeSummary {
	res := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summary := domain.RecipeSummary{
			ID:           r.ID,
			Name:         r.Name,
			ThumbnailURL: r.ThumbnailURL,
			Difficulty:   r.Difficulty,
			Status:       r.Status,
			AuthorID:     r.UserID,
			LikeCount:    likes[r.ID],
			CreatedAt:    r.CreatedAt,
		}
		if r.User != nil {
			summary.AuthorName = r.User.DisplayName()
			summary.AuthorAvatar = r.User.AvatarURL
		}
		res = append(res, summary)
	}
	return res
}
