package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	RecipeStatusActive  = "active"
	RecipeStatusPending = "pending"
	RecipeStatusBanned  = "banned"
	RecipeStatusDeleted = "deleted"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	MediaKindImage = "image"
	MediaKindVideo = "video"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe published successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetNotebook     = "success get notebook"
	MessageSuccessGetCatalog      = "success get catalog"
	MessageSuccessAddCatalogEntry = "catalog entry added"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetNotebook     = "failed to get notebook"
	MessageFailedGetCatalog      = "failed to get catalog"
	MessageFailedUploadMedia     = "failed to upload media"
	MessageFailedAddCatalogEntry = "failed to add catalog entry"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrNoIngredients            = errors.New("a recipe needs at least one ingredient")
	ErrNoSteps                  = errors.New("a recipe needs at least one step")
	ErrUnknownCategory          = errors.New("unknown recipe category")
	ErrUnsupportedMedia         = errors.New("unsupported media type")
	ErrMediaTooLarge            = errors.New("media file is too large")
	ErrCatalogEntryExists       = errors.New("catalog entry already exists")
	ErrCatalogNameRequired      = errors.New("catalog entry name is required")
)

type (
	CreateRecipeRequest struct {
		Name            string                `json:"name" form:"name" validate:"required,max=200"`
		Description     string                `json:"description" form:"description" validate:"omitempty,max=5000"`
		Difficulty      string                `json:"difficulty" form:"difficulty" validate:"required,oneof=easy medium hard"`
		CookTimeMinutes int                   `json:"cook_time_minutes" form:"cook_time_minutes" validate:"min=0,max=10080"`
		Servings        int                   `json:"servings" form:"servings" validate:"min=0,max=1000"`
		Ingredients     []string              `json:"ingredients" form:"ingredients" validate:"required,min=1,dive,required,max=255"`
		CategoryIDs     []uint                `json:"categories" form:"categories" validate:"omitempty,dive,min=1"`
		Steps           []string              `json:"steps" form:"steps" validate:"required,min=1,dive,required"`
		StepIDs         []uint                `json:"step_ids" form:"step_ids"`
		Thumbnail       *multipart.FileHeader `json:"-" form:"-"`
		// StepMedia holds the uploaded files per step index.
		StepMedia map[int][]*multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateRecipeRequest struct {
		CreateRecipeRequest
		RecipeID uint `json:"recipe_id" form:"-" validate:"required"`
	}

	RecipeSummary struct {
		ID           uint      `json:"id"`
		Name         string    `json:"name"`
		ThumbnailURL string    `json:"thumbnail_url,omitempty"`
		Difficulty   string    `json:"difficulty"`
		Status       string    `json:"status"`
		AuthorID     uint      `json:"author_id"`
		AuthorName   string    `json:"author_name"`
		AuthorAvatar string    `json:"author_avatar,omitempty"`
		LikeCount    int64     `json:"like_count"`
		CreatedAt    time.Time `json:"created_at"`
	}

	MediaDetail struct {
		ID   uint   `json:"id"`
		URL  string `json:"url"`
		Kind string `json:"kind"`
	}

	StepDetail struct {
		ID       uint          `json:"id"`
		Position int           `json:"position"`
		Content  string        `json:"content"`
		Media    []MediaDetail `json:"media"`
	}

	CategoryDetail struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	RecipeDetail struct {
		ID              uint             `json:"id"`
		Name            string           `json:"name"`
		Description     string           `json:"description"`
		ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
		Difficulty      string           `json:"difficulty"`
		CookTimeMinutes int              `json:"cook_time_minutes"`
		Servings        int              `json:"servings"`
		Status          string           `json:"status"`
		Author          UserSummary      `json:"author"`
		Ingredients     []string         `json:"ingredients"`
		Categories      []CategoryDetail `json:"categories"`
		Steps           []StepDetail     `json:"steps"`
		Comments        []CommentDetail  `json:"comments"`
		LikeCount       int64            `json:"like_count"`
		Liked           bool             `json:"liked"`
		Saved           bool             `json:"saved"`
		CanEdit         bool             `json:"can_edit"`
		CreatedAt       time.Time        `json:"created_at"`
	}

	FeedResponse struct {
		Latest    []RecipeSummary `json:"latest"`
		Following []RecipeSummary `json:"following"`
	}

	CatalogResponse struct {
		Ingredients []string         `json:"ingredients,omitempty"`
		Categories  []CategoryDetail `json:"categories,omitempty"`
	}

	AddCatalogEntryRequest struct {
		Name string `json:"name" form:"name" validate:"required,max=100"`
	}
)
