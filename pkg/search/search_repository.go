package search

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		GetActiveRecipes(ctx context.Context) ([]Candidate, error)
		GetAuthors(ctx context.Context, userIDs []uint) (map[uint]Author, error)
		ResolveIngredients(ctx context.Context, names []string) (map[string]uint, error)
		ResolveCategories(ctx context.Context, names []string) (map[string]uint, error)
		GetIngredientLinks(ctx context.Context, ingredientIDs []uint) (map[uint][]uint, error)
		GetCategoryLinks(ctx context.Context, categoryIDs []uint) (map[uint][]uint, error)
		CountLikes(ctx context.Context, recipeIDs []uint) (map[uint]int64, error)
	}

	searchRepository struct {
		db *gorm.DB
	}

	nameID struct {
		ID   uint
		Name string
	}

	link struct {
		RecipeID uint
		TargetID uint
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) GetActiveRecipes(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("id, user_id, name, thumbnail_url, difficulty, created_at").
		Where("status = ?", domain.RecipeStatusActive).
		Order("id asc").
		Scan(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *searchRepository) GetAuthors(ctx context.Context, userIDs []uint) (map[uint]Author, error) {
	authors := make(map[uint]Author, len(userIDs))
	if len(userIDs) == 0 {
		return authors, nil
	}

	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Select("id, username, full_name, avatar_url").
		Where("id IN ?", userIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		authors[u.ID] = Author{Username: u.Username, FullName: u.FullName, AvatarURL: u.AvatarURL}
	}
	return authors, nil
}

func (r *searchRepository) resolve(ctx context.Context, model any, names []string) (map[string]uint, error) {
	resolved := make(map[string]uint, len(names))
	if len(names) == 0 {
		return resolved, nil
	}

	var rows []nameID
	if err := r.db.WithContext(ctx).
		Model(model).
		Select("id, name").
		Where("LOWER(name) IN ?", names).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		resolved[strings.ToLower(row.Name)] = row.ID
	}
	return resolved, nil
}

func (r *searchRepository) ResolveIngredients(ctx context.Context, names []string) (map[string]uint, error) {
	return r.resolve(ctx, &entities.Ingredient{}, names)
}

func (r *searchRepository) ResolveCategories(ctx context.Context, names []string) (map[string]uint, error) {
	return r.resolve(ctx, &entities.RecipeType{}, names)
}

func (r *searchRepository) links(ctx context.Context, model any, column string, ids []uint) (map[uint][]uint, error) {
	res := make(map[uint][]uint)
	if len(ids) == 0 {
		return res, nil
	}

	var rows []link
	if err := r.db.WithContext(ctx).
		Model(model).
		Distinct().
		Select("recipe_id, "+column+" AS target_id").
		Where(column+" IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		res[row.RecipeID] = append(res[row.RecipeID], row.TargetID)
	}
	return res, nil
}

func (r *searchRepository) GetIngredientLinks(ctx context.Context, ingredientIDs []uint) (map[uint][]uint, error) {
	return r.links(ctx, &entities.RecipeIngredient{}, "ingredient_id", ingredientIDs)
}

func (r *searchRepository) GetCategoryLinks(ctx context.Context, categoryIDs []uint) (map[uint][]uint, error) {
	return r.links(ctx, &entities.RecipeTypeLink{}, "recipe_type_id", categoryIDs)
}

func (r *searchRepository) CountLikes(ctx context.Context, recipeIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RecipeID uint
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Select("recipe_id, COUNT(*) AS total").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RecipeID] = row.Total
	}
	return counts, nil
}
