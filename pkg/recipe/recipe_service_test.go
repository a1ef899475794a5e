package recipe

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/utils/storage"
	storagemock "RecipeHub/internal/utils/storage/mock"
	interactionmock "RecipeHub/pkg/interaction/mock"
	"RecipeHub/pkg/recipe/mock"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo         *mock.MockRecipeRepository
	interactions *interactionmock.MockInteractionService
	s3           *storagemock.MockAwsS3
	svc          RecipeService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		repo:         mock.NewMockRecipeRepository(ctrl),
		interactions: interactionmock.NewMockInteractionService(ctrl),
		s3:           storagemock.NewMockAwsS3(ctrl),
	}
	f.svc = NewRecipeService(f.repo, f.interactions, f.s3)
	return f
}

func baseRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:        "Tomato soup",
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []string{"2 ripe tomato", "Onion", "salt and pepper"},
		Steps:       []string{"Chop everything", "", "Simmer for 20 minutes"},
	}
}

func catalog() []*entities.Ingredient {
	return []*entities.Ingredient{
		{ID: 1, Name: "tomato"},
		{ID: 2, Name: "onion"},
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	t.Run("blank ingredients", func(t *testing.T) {
		f := newFixture(t)
		req := baseRequest()
		req.Ingredients = []string{"  ", ""}

		_, err := f.svc.CreateRecipe(context.Background(), 1, req)
		assert.ErrorIs(t, err, domain.ErrNoIngredients)
	})

	t.Run("blank steps", func(t *testing.T) {
		f := newFixture(t)
		req := baseRequest()
		req.Steps = []string{" "}

		_, err := f.svc.CreateRecipe(context.Background(), 1, req)
		assert.ErrorIs(t, err, domain.ErrNoSteps)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newFixture(t)
		req := baseRequest()
		req.CategoryIDs = []uint{3, 4, 3}
		f.repo.EXPECT().CountCategories(gomock.Any(), []uint{3, 4}).Return(int64(1), nil)

		_, err := f.svc.CreateRecipe(context.Background(), 1, req)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)
	req := baseRequest()
	req.CategoryIDs = []uint{3}
	req.Thumbnail = &multipart.FileHeader{Filename: "soup.png"}
	req.StepMedia = map[int][]*multipart.FileHeader{
		2: {{Filename: "simmer.mp4"}},
	}

	f.repo.EXPECT().CountCategories(gomock.Any(), []uint{3}).Return(int64(1), nil)
	f.repo.EXPECT().FindIngredientsByNames(gomock.Any(), gomock.Any()).Return(catalog(), nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), req.Thumbnail, "thumbnails", gomock.Any()).
		Return(storage.UploadedObject{Key: "thumbnails/a.png", URL: "https://cdn/thumbnails/a.png", Kind: domain.MediaKindImage}, nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), req.StepMedia[2][0], "steps", gomock.Any()).
		Return(storage.UploadedObject{Key: "steps/b.mp4", URL: "https://cdn/steps/b.mp4", Kind: domain.MediaKindVideo}, nil)
	f.repo.EXPECT().
		CreateRecipe(gomock.Any(), gomock.Any(), []uint{3}).
		DoAndReturn(func(_ context.Context, r *entities.Recipe, _ []uint) error {
			assert.Equal(t, uint(7), r.UserID)
			assert.Equal(t, domain.RecipeStatusActive, r.Status)
			assert.Equal(t, "https://cdn/thumbnails/a.png", r.ThumbnailURL)

			require.Len(t, r.Ingredients, 3)
			require.NotNil(t, r.Ingredients[0].IngredientID)
			assert.Equal(t, uint(1), *r.Ingredients[0].IngredientID)
			require.NotNil(t, r.Ingredients[1].IngredientID)
			assert.Equal(t, uint(2), *r.Ingredients[1].IngredientID)
			assert.Nil(t, r.Ingredients[2].IngredientID)

			require.Len(t, r.Steps, 2)
			assert.Empty(t, r.Steps[0].Media)
			require.Len(t, r.Steps[1].Media, 1)
			assert.Equal(t, domain.MediaKindVideo, r.Steps[1].Media[0].Media.Kind)

			r.ID = 42
			return nil
		})

	id, err := f.svc.CreateRecipe(context.Background(), 7, req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestCreateRecipeRemovesUploadsWhenWriteFails(t *testing.T) {
	f := newFixture(t)
	req := baseRequest()
	req.Thumbnail = &multipart.FileHeader{Filename: "soup.png"}

	f.repo.EXPECT().FindIngredientsByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), "thumbnails", gomock.Any()).
		Return(storage.UploadedObject{Key: "thumbnails/a.png", URL: "https://cdn/thumbnails/a.png"}, nil)
	f.repo.EXPECT().CreateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	f.s3.EXPECT().DeleteFile(gomock.Any(), "thumbnails/a.png").Return(nil)

	_, err := f.svc.CreateRecipe(context.Background(), 7, req)
	assert.Error(t, err)
}

func TestUpdateRecipe(t *testing.T) {
	current := &entities.Recipe{
		ID:           10,
		UserID:       7,
		Status:       domain.RecipeStatusActive,
		ThumbnailURL: "https://cdn/thumbnails/old.png",
		Steps: []*entities.RecipeStep{
			{ID: 1, Media: []*entities.StepMedia{{MediaID: 99, Media: &entities.Media{ID: 99, URL: "https://cdn/steps/keep.png"}}}},
		},
	}

	t.Run("stranger", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetRecipeDetail(gomock.Any(), uint(10)).Return(current, nil)

		err := f.svc.UpdateRecipe(context.Background(), domain.SessionUser{ID: 8}, domain.UpdateRecipeRequest{CreateRecipeRequest: baseRequest(), RecipeID: 10})
		assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	})

	t.Run("owner keeps media and replaces thumbnail", func(t *testing.T) {
		f := newFixture(t)
		req := domain.UpdateRecipeRequest{CreateRecipeRequest: baseRequest(), RecipeID: 10}
		req.StepIDs = []uint{1, 0, 0}
		req.Thumbnail = &multipart.FileHeader{Filename: "new.png"}

		f.repo.EXPECT().GetRecipeDetail(gomock.Any(), uint(10)).Return(current, nil)
		f.repo.EXPECT().FindIngredientsByNames(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), req.Thumbnail, "thumbnails", gomock.Any()).
			Return(storage.UploadedObject{Key: "thumbnails/new.png", URL: "https://cdn/thumbnails/new.png"}, nil)
		f.repo.EXPECT().
			UpdateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entities.Recipe, _ []uint) ([]string, error) {
				assert.Equal(t, uint(10), r.ID)
				assert.Equal(t, "https://cdn/thumbnails/new.png", r.ThumbnailURL)
				require.Len(t, r.Steps, 2)
				require.Len(t, r.Steps[0].Media, 1)
				assert.Equal(t, uint(99), r.Steps[0].Media[0].MediaID)
				return nil, nil
			})
		f.s3.EXPECT().GetObjectKeyFromLink("https://cdn/thumbnails/old.png").Return("thumbnails/old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "thumbnails/old.png").Return(nil)

		assert.NoError(t, f.svc.UpdateRecipe(context.Background(), domain.SessionUser{ID: 7}, req))
	})
}

func TestUpdateRecipeKeepsMediaWithItsStep(t *testing.T) {
	current := &entities.Recipe{
		ID:     10,
		UserID: 7,
		Status: domain.RecipeStatusActive,
		Steps: []*entities.RecipeStep{
			{ID: 1, Position: 1, Content: "Chop"},
			{ID: 2, Position: 2, Content: "Fry", Media: []*entities.StepMedia{{MediaID: 55, Media: &entities.Media{ID: 55, URL: "https://cdn/steps/fry.png"}}}},
			{ID: 3, Position: 3, Content: "Serve", Media: []*entities.StepMedia{{MediaID: 77, Media: &entities.Media{ID: 77, URL: "https://cdn/steps/serve.png"}}}},
		},
	}

	f := newFixture(t)
	req := domain.UpdateRecipeRequest{CreateRecipeRequest: baseRequest(), RecipeID: 10}
	req.Steps = []string{"Chop", "Serve", "Wash up"}
	req.StepIDs = []uint{1, 3, 0}

	f.repo.EXPECT().GetRecipeDetail(gomock.Any(), uint(10)).Return(current, nil)
	f.repo.EXPECT().FindIngredientsByNames(gomock.Any(), gomock.Any()).Return(catalog(), nil)
	f.repo.EXPECT().
		UpdateRecipe(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *entities.Recipe, _ []uint) ([]string, error) {
			require.Len(t, r.Steps, 3)
			assert.Empty(t, r.Steps[0].Media)
			require.Len(t, r.Steps[1].Media, 1)
			assert.Equal(t, uint(77), r.Steps[1].Media[0].MediaID)
			assert.Empty(t, r.Steps[2].Media)
			return []string{"https://cdn/steps/fry.png"}, nil
		})
	f.s3.EXPECT().GetObjectKeyFromLink("https://cdn/steps/fry.png").Return("steps/fry.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "steps/fry.png").Return(nil)

	assert.NoError(t, f.svc.UpdateRecipe(context.Background(), domain.SessionUser{ID: 7}, req))
}

func TestDeleteRecipe(t *testing.T) {
	recipe := &entities.Recipe{ID: 10, UserID: 7, Status: domain.RecipeStatusActive}

	tests := []struct {
		name    string
		viewer  domain.SessionUser
		wantErr error
	}{
		{name: "owner", viewer: domain.SessionUser{ID: 7, Role: domain.RoleUser}},
		{name: "admin", viewer: domain.SessionUser{ID: 1, Role: domain.RoleAdmin}},
		{name: "stranger", viewer: domain.SessionUser{ID: 8, Role: domain.RoleUser}, wantErr: domain.ErrUnauthorizedRecipeAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetRecipeByID(gomock.Any(), uint(10)).Return(recipe, nil)
			if tt.wantErr == nil {
				f.repo.EXPECT().UpdateRecipeStatus(gomock.Any(), uint(10), domain.RecipeStatusDeleted).Return(nil)
			}

			err := f.svc.DeleteRecipe(context.Background(), tt.viewer, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetRecipeDetailVisibility(t *testing.T) {
	banned := &entities.Recipe{ID: 10, UserID: 7, Status: domain.RecipeStatusBanned, User: &entities.User{ID: 7, Username: "chef"}}

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetRecipeDetail(gomock.Any(), uint(10)).Return(banned, nil)

		_, err := f.svc.GetRecipeDetail(context.Background(), 10, nil)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("owner", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetRecipeDetail(gomock.Any(), uint(10)).Return(banned, nil)
		f.interactions.EXPECT().GetComments(gomock.Any(), uint(10)).Return([]domain.CommentDetail{}, nil)
		f.interactions.EXPECT().CountLikes(gomock.Any(), uint(10)).Return(int64(3), nil)
		f.interactions.EXPECT().GetViewerState(gomock.Any(), uint(7), uint(10)).Return(true, false, nil)

		got, err := f.svc.GetRecipeDetail(context.Background(), 10, &domain.SessionUser{ID: 7})
		require.NoError(t, err)
		assert.True(t, got.CanEdit)
		assert.True(t, got.Liked)
		assert.Equal(t, int64(3), got.LikeCount)
		assert.Equal(t, "chef", got.Author.Username)
	})
}

func TestGetFeedCountsLikesOnce(t *testing.T) {
	f := newFixture(t)
	latest := []*entities.Recipe{{ID: 5}, {ID: 3}}
	following := []*entities.Recipe{{ID: 3}, {ID: 1}}

	f.repo.EXPECT().GetLatestRecipes(gomock.Any(), FeedSize).Return(latest, nil)
	f.repo.EXPECT().GetFollowedRecipes(gomock.Any(), uint(7), FeedSize).Return(following, nil)
	f.repo.EXPECT().
		CountLikesByRecipeIDs(gomock.Any(), []uint{1, 3, 5}).
		Return(map[uint]int64{3: 4}, nil).
		Times(1)

	got, err := f.svc.GetFeed(context.Background(), &domain.SessionUser{ID: 7})
	require.NoError(t, err)
	require.Len(t, got.Latest, 2)
	assert.Equal(t, int64(4), got.Latest[1].LikeCount)
	assert.Equal(t, int64(0), got.Following[1].LikeCount)
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindCategoryByName(gomock.Any(), "Dessert").Return(&entities.RecipeType{ID: 1, Name: "Dessert"}, nil)

	err := f.svc.AddCategory(context.Background(), domain.AddCatalogEntryRequest{Name: " Dessert "})
	assert.ErrorIs(t, err, domain.ErrCatalogEntryExists)
}

func TestAddIngredient(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindIngredientsByNames(gomock.Any(), []string{"garlic"}).Return(nil, nil)
	f.repo.EXPECT().CreateIngredient(gomock.Any(), &entities.Ingredient{Name: "garlic"}).Return(nil)

	assert.NoError(t, f.svc.AddIngredient(context.Background(), domain.AddCatalogEntryRequest{Name: "Garlic"}))
}
