package search

import (
	"RecipeHub/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fixtureDataset: ingredient ids 1 tomato, 2 onion, 3 basil; category ids
// 10 soup, 11 salad.
func fixtureDataset() *Dataset {
	return &Dataset{
		Recipes: []Candidate{
			{ID: 1, UserID: 100, Name: "Tomato Soup", Difficulty: domain.DifficultyEasy, CreatedAt: base.Add(1 * time.Hour)},
			{ID: 2, UserID: 101, Name: "Onion Soup", Difficulty: domain.DifficultyMedium, CreatedAt: base.Add(2 * time.Hour)},
			{ID: 3, UserID: 100, Name: "Caprese Salad", Difficulty: domain.DifficultyEasy, CreatedAt: base.Add(3 * time.Hour)},
			{ID: 4, UserID: 102, Name: "Tomato Onion Salad", Difficulty: domain.DifficultyHard, CreatedAt: base.Add(4 * time.Hour)},
			{ID: 5, UserID: 101, Name: "Plain Rice", Difficulty: domain.DifficultyEasy, CreatedAt: base.Add(5 * time.Hour)},
		},
		Authors: map[uint]Author{
			100: {Username: "mario", FullName: "Mario Rossi"},
			101: {Username: "chef_anna", FullName: "Anna Bell"},
			102: {Username: "bob", FullName: ""},
		},
		Ingredients: map[string]uint{"tomato": 1, "onion": 2, "basil": 3},
		Categories:  map[string]uint{"soup": 10, "salad": 11},
		RecipeIngredients: map[uint][]uint{
			1: {1, 3},
			2: {2},
			3: {1, 3},
			4: {1, 2},
		},
		RecipeCategories: map[uint][]uint{
			1: {10},
			2: {10},
			3: {11},
			4: {11},
		},
	}
}

func ids(cs []Candidate) []uint {
	out := make([]uint, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterIngredientsRequireEveryName(t *testing.T) {
	got := Filter(fixtureDataset(), domain.SearchRequest{Ingredients: []string{"Tomato", " onion "}})
	assert.Equal(t, []uint{4}, ids(got))
}

func TestFilterUnknownIngredientFailsClosed(t *testing.T) {
	got := Filter(fixtureDataset(), domain.SearchRequest{Ingredients: []string{"tomato", "unicorn"}})
	assert.Empty(t, got)
}

func TestFilterCategoriesMatchAny(t *testing.T) {
	got := Filter(fixtureDataset(), domain.SearchRequest{Categories: []string{"soup", "salad"}})
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(got))

	got = Filter(fixtureDataset(), domain.SearchRequest{Categories: []string{"dessert"}})
	assert.Empty(t, got)
}

func TestFilterTerm(t *testing.T) {
	got := Filter(fixtureDataset(), domain.SearchRequest{Term: "SOUP"})
	assert.Equal(t, []uint{1, 2}, ids(got))

	got = Filter(fixtureDataset(), domain.SearchRequest{Term: "anna", Mode: domain.SearchModeUser})
	assert.Equal(t, []uint{2, 5}, ids(got))

	got = Filter(fixtureDataset(), domain.SearchRequest{Term: "nobody", Mode: domain.SearchModeUser})
	assert.Empty(t, got)
}

func TestFilterEmptyFacetsKeepEverything(t *testing.T) {
	got := Filter(fixtureDataset(), domain.SearchRequest{Ingredients: []string{" "}, Difficulties: []string{}})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestFilterIsIntersectionOfFacets(t *testing.T) {
	terms := []string{"", "tomato", "salad"}
	ingredientSets := [][]string{nil, {"tomato"}, {"tomato", "basil"}, {"onion"}, {"ghost"}}
	categorySets := [][]string{nil, {"soup"}, {"salad"}, {"soup", "salad"}}
	difficultySets := [][]string{nil, {"easy"}, {"easy", "hard"}}

	ds := fixtureDataset()
	toSet := func(cs []Candidate) map[uint]bool {
		m := map[uint]bool{}
		for _, c := range cs {
			m[c.ID] = true
		}
		return m
	}

	for _, term := range terms {
		for _, ings := range ingredientSets {
			for _, cats := range categorySets {
				for _, diffs := range difficultySets {
					facets := []domain.SearchRequest{
						{Term: term},
						{Ingredients: ings},
						{Categories: cats},
						{Difficulties: diffs},
					}
					want := toSet(ds.Recipes)
					for _, f := range facets {
						single := toSet(Filter(ds, f))
						for id := range want {
							if !single[id] {
								delete(want, id)
							}
						}
					}

					got := toSet(Filter(ds, domain.SearchRequest{
						Term: term, Ingredients: ings, Categories: cats, Difficulties: diffs,
					}))
					assert.Equal(t, want, got, "term=%q ingredients=%v categories=%v difficulties=%v", term, ings, cats, diffs)
				}
			}
		}
	}
}

func TestRankLikesDescIsNonIncreasing(t *testing.T) {
	ds := fixtureDataset()
	likes := map[uint]int64{1: 3, 2: 7, 3: 3, 5: 10}

	ranked, err := Rank(ds.Recipes, likes, domain.SortLikesDesc)
	require.NoError(t, err)
	require.Len(t, ranked, 5)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].LikeCount, ranked[i].LikeCount)
	}

	// ties keep input order
	assert.Equal(t, uint(1), ranked[2].ID)
	assert.Equal(t, uint(3), ranked[3].ID)
}

func TestRankByDate(t *testing.T) {
	ds := fixtureDataset()

	newest, err := Rank(ds.Recipes, nil, domain.SortNewest)
	require.NoError(t, err)
	assert.Equal(t, uint(5), newest[0].ID)

	oldest, err := Rank(ds.Recipes, nil, domain.SortOldest)
	require.NoError(t, err)
	assert.Equal(t, uint(1), oldest[0].ID)

	asc, err := Rank(ds.Recipes, map[uint]int64{1: 2}, domain.SortLikesAsc)
	require.NoError(t, err)
	assert.Equal(t, uint(1), asc[len(asc)-1].ID)
}

func TestRankRejectsUnknownKey(t *testing.T) {
	_, err := Rank(nil, nil, "random")
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}
