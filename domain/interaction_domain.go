package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessToggleLike    = "like state updated"
	MessageSuccessToggleSave    = "notebook updated"
	MessageSuccessAddComment    = "comment posted"
	MessageSuccessDeleteComment = "comment deleted"

	MessageFailedToggleLike    = "failed to update like"
	MessageFailedToggleSave    = "failed to update notebook"
	MessageFailedAddComment    = "failed to post comment"
	MessageFailedDeleteComment = "failed to delete comment"

	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentEmpty    = errors.New("comment cannot be empty")
)

type (
	RecipeTargetRequest struct {
		RecipeID uint `json:"recipe_id" form:"recipe_id" validate:"required"`
	}

	AddCommentRequest struct {
		RecipeID uint   `json:"recipe_id" form:"recipe_id" validate:"required"`
		Content  string `json:"content" form:"content" validate:"required,min=1,max=1000"`
	}

	DeleteCommentRequest struct {
		CommentID uint `json:"comment_id" form:"comment_id" validate:"required"`
	}

	ToggleLikeResponse struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}

	ToggleSaveResponse struct {
		Saved bool `json:"saved"`
	}

	CommentDetail struct {
		ID           uint      `json:"id"`
		RecipeID     uint      `json:"recipe_id"`
		AuthorID     uint      `json:"author_id"`
		AuthorName   string    `json:"author_name"`
		AuthorAvatar string    `json:"author_avatar,omitempty"`
		Content      string    `json:"content"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
