package interaction

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/metrics"
	"context"
	"strings"
)

type (
	InteractionService interface {
		ToggleLike(ctx context.Context, userID uint, req domain.RecipeTargetRequest) (domain.ToggleLikeResponse, error)
		ToggleSave(ctx context.Context, userID uint, req domain.RecipeTargetRequest) (domain.ToggleSaveResponse, error)
		AddComment(ctx context.Context, userID uint, req domain.AddCommentRequest) (domain.CommentDetail, error)
		DeleteComment(ctx context.Context, viewer domain.SessionUser, req domain.DeleteCommentRequest) error

		GetComments(ctx context.Context, recipeID uint) ([]domain.CommentDetail, error)
		GetViewerState(ctx context.Context, userID, recipeID uint) (liked bool, saved bool, err error)
		CountLikes(ctx context.Context, recipeID uint) (int64, error)
	}

	interactionService struct {
		interactionRepository InteractionRepository
	}
)

func NewInteractionService(interactionRepository InteractionRepository) InteractionService {
	return &interactionService{
		interactionRepository: interactionRepository,
	}
}

// activeRecipe loads a recipe that ordinary users may interact with.
func (s *interactionService) activeRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	recipe, err := s.interactionRepository.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.Status != domain.RecipeStatusActive {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *interactionService) ToggleLike(ctx context.Context, userID uint, req domain.RecipeTargetRequest) (domain.ToggleLikeResponse, error) {
	if _, err := s.activeRecipe(ctx, req.RecipeID); err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	liked, err := s.interactionRepository.ToggleLike(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}
	metrics.RecordToggle("like", liked)

	count, err := s.interactionRepository.CountLikes(ctx, req.RecipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}

func (s *interactionService) ToggleSave(ctx context.Context, userID uint, req domain.RecipeTargetRequest) (domain.ToggleSaveResponse, error) {
	if _, err := s.activeRecipe(ctx, req.RecipeID); err != nil {
		return domain.ToggleSaveResponse{}, err
	}

	saved, err := s.interactionRepository.ToggleSave(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.ToggleSaveResponse{}, err
	}
	metrics.RecordToggle("save", saved)

	return domain.ToggleSaveResponse{Saved: saved}, nil
}

func (s *interactionService) AddComment(ctx context.Context, userID uint, req domain.AddCommentRequest) (domain.CommentDetail, error) {
	if _, err := s.activeRecipe(ctx, req.RecipeID); err != nil {
		return domain.CommentDetail{}, err
	}

	comment := entities.Comment{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Content:  strings.TrimSpace(req.Content),
	}
	if comment.Content == "" {
		return domain.CommentDetail{}, domain.ErrCommentEmpty
	}

	if err := s.interactionRepository.CreateComment(ctx, &comment); err != nil {
		return domain.CommentDetail{}, err
	}

	return toCommentDetail(&comment), nil
}

// DeleteComment is allowed for the comment author, the recipe owner and
// administrators.
func (s *interactionService) DeleteComment(ctx context.Context, viewer domain.SessionUser, req domain.DeleteCommentRequest) error {
	comment, err := s.interactionRepository.GetCommentByID(ctx, req.CommentID)
	if err != nil {
		return err
	}

	if comment.UserID != viewer.ID && !viewer.IsAdmin() {
		recipe, err := s.interactionRepository.GetRecipe(ctx, comment.RecipeID)
		if err != nil {
			return err
		}
		if recipe.UserID != viewer.ID {
			return domain.ErrUserNotAllowed
		}
	}

	return s.interactionRepository.DeleteComment(ctx, comment.ID)
}

func (s *interactionService) GetComments(ctx context.Context, recipeID uint) ([]domain.CommentDetail, error) {
	comments, err := s.interactionRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDetail(c))
	}
	return res, nil
}

func (s *interactionService) GetViewerState(ctx context.Context, userID, recipeID uint) (bool, bool, error) {
	liked, err := s.interactionRepository.HasLiked(ctx, userID, recipeID)
	if err != nil {
		return false, false, err
	}
	saved, err := s.interactionRepository.HasSaved(ctx, userID, recipeID)
	if err != nil {
		return false, false, err
	}
	return liked, saved, nil
}

func (s *interactionService) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	return s.interactionRepository.CountLikes(ctx, recipeID)
}

func toCommentDetail(c *entities.Comment) domain.CommentDetail {
	detail := domain.CommentDetail{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		AuthorID:  c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		detail.AuthorName = c.User.DisplayName()
		detail.AuthorAvatar = c.User.AvatarURL
	}
	return detail
}
