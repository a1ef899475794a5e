package domain

import "errors"

const (
	SearchModeRecipe = "recipe"
	SearchModeUser   = "user"

	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortLikesDesc = "likes_desc"
	SortLikesAsc  = "likes_asc"
)

var (
	MessageSuccessSearch = "success search recipes"
	MessageFailedSearch  = "failed to search recipes"

	ErrInvalidSortKey = errors.New("invalid sort key")
)

type (
	SearchRequest struct {
		Term         string   `json:"q" query:"q" validate:"omitempty,max=100"`
		Mode         string   `json:"mode" query:"mode" validate:"omitempty,oneof=recipe user"`
		Ingredients  []string `json:"ingredients" query:"ingredients" validate:"omitempty,dive,max=100"`
		Categories   []string `json:"categories" query:"categories" validate:"omitempty,dive,max=100"`
		Difficulties []string `json:"difficulty" query:"difficulty" validate:"omitempty,dive,oneof=easy medium hard"`
		Sort         string   `json:"sort" query:"sort" validate:"omitempty,oneof=newest oldest likes_desc likes_asc"`
	}

	SearchResult struct {
		RecipeID     uint   `json:"recipe_id"`
		Name         string `json:"name"`
		ThumbnailURL string `json:"thumbnail_url,omitempty"`
		Difficulty   string `json:"difficulty"`
		AuthorName   string `json:"author_name"`
		AuthorAvatar string `json:"author_avatar,omitempty"`
		LikeCount    int64  `json:"like_count"`
	}

	SearchResponse struct {
		Query   SearchRequest  `json:"query"`
		Results []SearchResult `json:"results"`
		Total   int            `json:"total"`
	}
)
