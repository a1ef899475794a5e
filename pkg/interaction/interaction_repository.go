package interaction

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	InteractionRepository interface {
		GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error)

		ToggleLike(ctx context.Context, userID, recipeID uint) (bool, error)
		CountLikes(ctx context.Context, recipeID uint) (int64, error)
		HasLiked(ctx context.Context, userID, recipeID uint) (bool, error)

		ToggleSave(ctx context.Context, userID, recipeID uint) (bool, error)
		HasSaved(ctx context.Context, userID, recipeID uint) (bool, error)

		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, commentID uint) (*entities.Comment, error)
		GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error)
		DeleteComment(ctx context.Context, commentID uint) error
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ToggleLike removes the like when present and adds it otherwise. The
// unique (user, recipe) index rejects a concurrent duplicate insert.
func (r *interactionRepository) ToggleLike(ctx context.Context, userID, recipeID uint) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&entities.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		like := entities.Like{
			UserID:    userID,
			RecipeID:  recipeID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *interactionRepository) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Like{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

func (r *interactionRepository) HasLiked(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) ToggleSave(ctx context.Context, userID, recipeID uint) (bool, error) {
	saved := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&entities.Notebook{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		entry := entities.Notebook{
			UserID:    userID,
			RecipeID:  recipeID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		saved = true
		return nil
	})
	return saved, err
}

func (r *interactionRepository) HasSaved(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Notebook{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *interactionRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *interactionRepository) GetCommentByID(ctx context.Context, commentID uint) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *interactionRepository) GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *interactionRepository) DeleteComment(ctx context.Context, commentID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&entities.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
