package recipe

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uint) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uint) ([]string, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error)
		UpdateRecipeStatus(ctx context.Context, id uint, status string) error

		GetLatestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetFollowedRecipes(ctx context.Context, followerID uint, limit int) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint, statuses []string) ([]*entities.Recipe, error)
		GetSavedRecipes(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error)
		CountLikesByRecipeIDs(ctx context.Context, ids []uint) (map[uint]int64, error)

		ListIngredients(ctx context.Context, prefix string, limit int) ([]*entities.Ingredient, error)
		FindIngredientsByNames(ctx context.Context, names []string) ([]*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		ListCategories(ctx context.Context) ([]*entities.RecipeType, error)
		CountCategories(ctx context.Context, ids []uint) (int64, error)
		FindCategoryByName(ctx context.Context, name string) (*entities.RecipeType, error)
		CreateCategory(ctx context.Context, category *entities.RecipeType) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe writes the recipe row and all of its children in one
// transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		return writeRecipeChildren(tx, recipe, categoryIDs)
	})
}

// UpdateRecipe replaces the recipe fields, ingredient lines, category links
// and steps. Media already stored keep their rows when a step reuses them;
// the URLs of media no longer referenced are returned so the objects can be
// removed from storage.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uint) ([]string, error) {
	var removed []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"name":              recipe.Name,
				"description":       recipe.Description,
				"thumbnail_url":     recipe.ThumbnailURL,
				"difficulty":        recipe.Difficulty,
				"cook_time_minutes": recipe.CookTimeMinutes,
				"servings":          recipe.Servings,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}

		var stepIDs []uint
		if err := tx.Model(&entities.RecipeStep{}).Where("recipe_id = ?", recipe.ID).Pluck("id", &stepIDs).Error; err != nil {
			return err
		}

		var oldMediaIDs []uint
		if len(stepIDs) > 0 {
			if err := tx.Model(&entities.StepMedia{}).Where("step_id IN ?", stepIDs).Pluck("media_id", &oldMediaIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("step_id IN ?", stepIDs).Delete(&entities.StepMedia{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeTypeLink{}).Error; err != nil {
			return err
		}

		if err := writeRecipeChildren(tx, recipe, categoryIDs); err != nil {
			return err
		}

		kept := make(map[uint]bool)
		for _, step := range recipe.Steps {
			for _, sm := range step.Media {
				kept[sm.MediaID] = true
			}
		}
		var orphaned []uint
		for _, id := range oldMediaIDs {
			if !kept[id] {
				orphaned = append(orphaned, id)
			}
		}
		if len(orphaned) == 0 {
			return nil
		}

		if err := tx.Model(&entities.Media{}).Where("id IN ?", orphaned).Pluck("url", &removed).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", orphaned).Delete(&entities.Media{}).Error
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func writeRecipeChildren(tx *gorm.DB, recipe *entities.Recipe, categoryIDs []uint) error {
	for i, ingredient := range recipe.Ingredients {
		ingredient.RecipeID = recipe.ID
		ingredient.Position = i
	}
	if len(recipe.Ingredients) > 0 {
		if err := tx.Omit(clause.Associations).Create(&recipe.Ingredients).Error; err != nil {
			return err
		}
	}

	if len(categoryIDs) > 0 {
		links := make([]entities.RecipeTypeLink, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			links = append(links, entities.RecipeTypeLink{RecipeID: recipe.ID, RecipeTypeID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}

	for i, step := range recipe.Steps {
		step.ID = 0
		step.RecipeID = recipe.ID
		step.Position = i
		if err := tx.Omit(clause.Associations).Create(step).Error; err != nil {
			return err
		}

		for j, sm := range step.Media {
			if sm.Media != nil {
				if sm.Media.ID == 0 {
					if err := tx.Create(sm.Media).Error; err != nil {
						return err
					}
				}
				sm.MediaID = sm.Media.ID
			}
			sm.ID = 0
			sm.StepID = step.ID
			sm.Position = j
			if err := tx.Omit(clause.Associations).Create(sm).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (r *recipeRepository) GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ingredients", byPosition).
		Preload("Types", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("Steps", byPosition).
		Preload("Steps.Media", byPosition).
		Preload("Steps.Media.Media").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipeStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) GetLatestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", domain.RecipeStatusActive).
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetFollowedRecipes(ctx context.Context, followerID uint, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN follows ON follows.followed_id = recipes.user_id").
		Where("follows.follower_id = ? AND recipes.status = ?", followerID, domain.RecipeStatusActive).
		Order("recipes.created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint, statuses []string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND status IN ?", userID, statuses).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN notebooks ON recipes.id = notebooks.recipe_id").
		Where("notebooks.user_id = ? AND recipes.status = ?", userID, domain.RecipeStatusActive).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN notebooks ON recipes.id = notebooks.recipe_id").
		Where("notebooks.user_id = ? AND recipes.status = ?", userID, domain.RecipeStatusActive).
		Offset(offset).
		Limit(limit).
		Order("notebooks.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// CountLikesByRecipeIDs counts likes for many recipes with one grouped query.
// Recipes without likes are absent from the map.
func (r *recipeRepository) CountLikesByRecipeIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		RecipeID uint
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Select("recipe_id, COUNT(*) AS total").
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.RecipeID] = row.Total
	}
	return counts, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *recipeRepository) ListIngredients(ctx context.Context, prefix string, limit int) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	query := r.db.WithContext(ctx).Order("name asc").Limit(limit)
	if prefix = strings.ToLower(strings.TrimSpace(prefix)); prefix != "" {
		query = query.Where("LOWER(name) LIKE ?", escapeLike(prefix)+"%")
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) FindIngredientsByNames(ctx context.Context, names []string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(names) == 0 {
		return ingredients, nil
	}
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(n))
	}
	if err := r.db.WithContext(ctx).Where("LOWER(name) IN ?", lowered).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *recipeRepository) ListCategories(ctx context.Context) ([]*entities.RecipeType, error) {
	var categories []*entities.RecipeType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) CountCategories(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.RecipeType{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *recipeRepository) FindCategoryByName(ctx context.Context, name string) (*entities.RecipeType, error) {
	var category entities.RecipeType
	if err := r.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownCategory
		}
		return nil, err
	}
	return &category, nil
}

func (r *recipeRepository) CreateCategory(ctx context.Context, category *entities.RecipeType) error {
	return r.db.WithContext(ctx).Create(category).Error
}
