package search

import (
	"RecipeHub/domain"
	"RecipeHub/internal/metrics"
	"context"
)

type (
	SearchService interface {
		Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
	}
)

func NewSearchService(searchRepository SearchRepository) SearchService {
	return &searchService{
		searchRepository: searchRepository,
	}
}

// Search loads the active recipes with the catalog links the request needs,
// runs them through Filter and Rank, and decorates the survivors with author
// and like data fetched in one query each.
func (s *searchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if req.Mode == "" {
		req.Mode = domain.SearchModeRecipe
	}
	if req.Sort == "" {
		req.Sort = domain.SortNewest
	}

	ds, err := s.load(ctx, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	survivors := Filter(ds, req)

	ids := make([]uint, 0, len(survivors))
	for _, c := range survivors {
		ids = append(ids, c.ID)
	}
	likes, err := s.searchRepository.CountLikes(ctx, ids)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	ranked, err := Rank(survivors, likes, req.Sort)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	if len(ds.Authors) == 0 {
		ds.Authors, err = s.searchRepository.GetAuthors(ctx, authorIDs(survivors))
		if err != nil {
			return domain.SearchResponse{}, err
		}
	}

	results := make([]domain.SearchResult, 0, len(ranked))
	for _, r := range ranked {
		author := ds.Authors[r.UserID]
		name := author.FullName
		if name == "" {
			name = author.Username
		}
		results = append(results, domain.SearchResult{
			RecipeID:     r.ID,
			Name:         r.Name,
			ThumbnailURL: r.ThumbnailURL,
			Difficulty:   r.Difficulty,
			AuthorName:   name,
			AuthorAvatar: author.AvatarURL,
			LikeCount:    r.LikeCount,
		})
	}
	metrics.SearchResults.Observe(float64(len(results)))

	return domain.SearchResponse{
		Query:   req,
		Results: results,
		Total:   len(results),
	}, nil
}

// load builds the dataset for req. Catalog links are only fetched for facets
// that are in use, and only for the ids the request names.
func (s *searchService) load(ctx context.Context, req domain.SearchRequest) (*Dataset, error) {
	recipes, err := s.searchRepository.GetActiveRecipes(ctx)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		Recipes:           recipes,
		Authors:           map[uint]Author{},
		Ingredients:       map[string]uint{},
		Categories:        map[string]uint{},
		RecipeIngredients: map[uint][]uint{},
		RecipeCategories:  map[uint][]uint{},
	}

	if req.Mode == domain.SearchModeUser && req.Term != "" {
		ds.Authors, err = s.searchRepository.GetAuthors(ctx, authorIDs(recipes))
		if err != nil {
			return nil, err
		}
	}

	if names := Normalize(req.Ingredients); len(names) > 0 {
		ds.Ingredients, err = s.searchRepository.ResolveIngredients(ctx, names)
		if err != nil {
			return nil, err
		}
		ds.RecipeIngredients, err = s.searchRepository.GetIngredientLinks(ctx, values(ds.Ingredients))
		if err != nil {
			return nil, err
		}
	}

	if names := Normalize(req.Categories); len(names) > 0 {
		ds.Categories, err = s.searchRepository.ResolveCategories(ctx, names)
		if err != nil {
			return nil, err
		}
		ds.RecipeCategories, err = s.searchRepository.GetCategoryLinks(ctx, values(ds.Categories))
		if err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func authorIDs(candidates []Candidate) []uint {
	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, c := range candidates {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}
	return ids
}

func values(m map[string]uint) []uint {
	ids := make([]uint, 0, len(m))
	for _, id := range m {
		ids = append(ids, id)
	}
	return ids
}
