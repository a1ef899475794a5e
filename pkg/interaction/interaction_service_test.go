package interaction

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/pkg/interaction/mock"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type likeKey struct {
	user   uint
	recipe uint
}

// likeTable backs the mocked like queries with in-memory state.
func likeTable(repo *mock.MockInteractionRepository, initial ...likeKey) {
	likes := map[likeKey]bool{}
	for _, k := range initial {
		likes[k] = true
	}

	repo.EXPECT().
		ToggleLike(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID, recipeID uint) (bool, error) {
			k := likeKey{userID, recipeID}
			if likes[k] {
				delete(likes, k)
				return false, nil
			}
			likes[k] = true
			return true, nil
		}).AnyTimes()

	repo.EXPECT().
		CountLikes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recipeID uint) (int64, error) {
			var n int64
			for k := range likes {
				if k.recipe == recipeID {
					n++
				}
			}
			return n, nil
		}).AnyTimes()
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	tests := []struct {
		name    string
		initial []likeKey
	}{
		{name: "not liked", initial: []likeKey{{user: 2, recipe: 10}}},
		{name: "already liked", initial: []likeKey{{user: 1, recipe: 10}, {user: 2, recipe: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockInteractionRepository(gomock.NewController(t))
			repo.EXPECT().
				GetRecipe(gomock.Any(), uint(10)).
				Return(&entities.Recipe{ID: 10, Status: domain.RecipeStatusActive}, nil).
				AnyTimes()
			likeTable(repo, tt.initial...)

			svc := NewInteractionService(repo)
			ctx := context.Background()

			before, err := repo.CountLikes(ctx, 10)
			require.NoError(t, err)

			first, err := svc.ToggleLike(ctx, 1, domain.RecipeTargetRequest{RecipeID: 10})
			require.NoError(t, err)
			second, err := svc.ToggleLike(ctx, 1, domain.RecipeTargetRequest{RecipeID: 10})
			require.NoError(t, err)

			assert.NotEqual(t, first.Liked, second.Liked)
			assert.Equal(t, before, second.LikeCount)
		})
	}
}

func TestToggleLikeRejectsHiddenRecipe(t *testing.T) {
	repo := mock.NewMockInteractionRepository(gomock.NewController(t))
	repo.EXPECT().
		GetRecipe(gomock.Any(), uint(10)).
		Return(&entities.Recipe{ID: 10, Status: domain.RecipeStatusBanned}, nil)

	_, err := NewInteractionService(repo).ToggleLike(context.Background(), 1, domain.RecipeTargetRequest{RecipeID: 10})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestToggleSave(t *testing.T) {
	repo := mock.NewMockInteractionRepository(gomock.NewController(t))
	repo.EXPECT().
		GetRecipe(gomock.Any(), uint(10)).
		Return(&entities.Recipe{ID: 10, Status: domain.RecipeStatusActive}, nil)
	repo.EXPECT().ToggleSave(gomock.Any(), uint(1), uint(10)).Return(true, nil)

	got, err := NewInteractionService(repo).ToggleSave(context.Background(), 1, domain.RecipeTargetRequest{RecipeID: 10})
	require.NoError(t, err)
	assert.True(t, got.Saved)
}

func TestAddComment(t *testing.T) {
	repo := mock.NewMockInteractionRepository(gomock.NewController(t))
	repo.EXPECT().
		GetRecipe(gomock.Any(), uint(10)).
		Return(&entities.Recipe{ID: 10, Status: domain.RecipeStatusActive}, nil).
		Times(2)
	repo.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *entities.Comment) error {
			c.ID = 5
			return nil
		})
	svc := NewInteractionService(repo)

	got, err := svc.AddComment(context.Background(), 1, domain.AddCommentRequest{RecipeID: 10, Content: "  tasty  "})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "tasty", got.Content)

	_, err = svc.AddComment(context.Background(), 1, domain.AddCommentRequest{RecipeID: 10, Content: "   "})
	assert.ErrorIs(t, err, domain.ErrCommentEmpty)
}

func TestDeleteComment(t *testing.T) {
	comment := &entities.Comment{ID: 5, UserID: 1, RecipeID: 10}
	recipe := &entities.Recipe{ID: 10, UserID: 2, Status: domain.RecipeStatusActive}

	tests := []struct {
		name    string
		viewer  domain.SessionUser
		wantErr error
	}{
		{name: "author", viewer: domain.SessionUser{ID: 1, Role: domain.RoleUser}},
		{name: "recipe owner", viewer: domain.SessionUser{ID: 2, Role: domain.RoleUser}},
		{name: "admin", viewer: domain.SessionUser{ID: 9, Role: domain.RoleAdmin}},
		{name: "stranger", viewer: domain.SessionUser{ID: 3, Role: domain.RoleUser}, wantErr: domain.ErrUserNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockInteractionRepository(gomock.NewController(t))
			repo.EXPECT().GetCommentByID(gomock.Any(), uint(5)).Return(comment, nil)
			repo.EXPECT().GetRecipe(gomock.Any(), uint(10)).Return(recipe, nil).AnyTimes()
			if tt.wantErr == nil {
				repo.EXPECT().DeleteComment(gomock.Any(), uint(5)).Return(nil)
			}

			err := NewInteractionService(repo).DeleteComment(context.Background(), tt.viewer, domain.DeleteCommentRequest{CommentID: 5})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
