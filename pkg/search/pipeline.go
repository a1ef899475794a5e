package search

import (
	"RecipeHub/domain"
	"sort"
	"strings"
	"time"
)

type (
	// Candidate is a recipe row as seen by the search pipeline.
	Candidate struct {
		ID           uint
		UserID       uint
		Name         string
		ThumbnailURL string
		Difficulty   string
		CreatedAt    time.Time
	}

	Author struct {
		Username  string
		FullName  string
		AvatarURL string
	}

	// Dataset holds everything a search needs in memory. Recipes must be in
	// a fixed order (id ascending) so that ties sort deterministically.
	// Ingredients and Categories map lower-cased catalog names to ids for the
	// names that could be resolved; the link maps hold recipe id -> linked ids.
	Dataset struct {
		Recipes           []Candidate
		Authors           map[uint]Author
		Ingredients       map[string]uint
		Categories        map[string]uint
		RecipeIngredients map[uint][]uint
		RecipeCategories  map[uint][]uint
	}

	// Ranked is a surviving candidate decorated with its like count.
	Ranked struct {
		Candidate
		LikeCount int64
	}
)

// Normalize trims, lower-cases and de-duplicates facet values, dropping
// blanks. Order of first appearance is kept.
func Normalize(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func keep(in []Candidate, pred func(Candidate) bool) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// resolve maps every name to its id. ok is false when any name is unknown.
func resolve(catalog map[string]uint, names []string) (ids map[uint]bool, ok bool) {
	ids = make(map[uint]bool, len(names))
	for _, n := range names {
		id, found := catalog[n]
		if !found {
			return nil, false
		}
		ids[id] = true
	}
	return ids, true
}

// Filter narrows ds.Recipes by every non-empty facet of req. Each facet is a
// set intersection, so the result is the same whatever the order the facets
// are applied in. A facet naming an ingredient or category that does not exist
// yields no results.
func Filter(ds *Dataset, req domain.SearchRequest) []Candidate {
	set := ds.Recipes

	if term := strings.ToLower(strings.TrimSpace(req.Term)); term != "" {
		if req.Mode == domain.SearchModeUser {
			set = keep(set, func(c Candidate) bool {
				a, ok := ds.Authors[c.UserID]
				if !ok {
					return false
				}
				return strings.Contains(strings.ToLower(a.Username), term) ||
					strings.Contains(strings.ToLower(a.FullName), term)
			})
		} else {
			set = keep(set, func(c Candidate) bool {
				return strings.Contains(strings.ToLower(c.Name), term)
			})
		}
	}

	if names := Normalize(req.Ingredients); len(names) > 0 {
		required, ok := resolve(ds.Ingredients, names)
		if !ok {
			return []Candidate{}
		}
		set = keep(set, func(c Candidate) bool {
			linked := make(map[uint]bool, len(ds.RecipeIngredients[c.ID]))
			for _, id := range ds.RecipeIngredients[c.ID] {
				linked[id] = true
			}
			for id := range required {
				if !linked[id] {
					return false
				}
			}
			return true
		})
	}

	if names := Normalize(req.Categories); len(names) > 0 {
		wanted, ok := resolve(ds.Categories, names)
		if !ok {
			return []Candidate{}
		}
		set = keep(set, func(c Candidate) bool {
			for _, id := range ds.RecipeCategories[c.ID] {
				if wanted[id] {
					return true
				}
			}
			return false
		})
	}

	if levels := Normalize(req.Difficulties); len(levels) > 0 {
		allowed := make(map[string]bool, len(levels))
		for _, l := range levels {
			allowed[l] = true
		}
		set = keep(set, func(c Candidate) bool {
			return allowed[strings.ToLower(c.Difficulty)]
		})
	}

	return set
}

// Rank decorates candidates with like counts and sorts them by key. The sort
// is stable, so candidates that tie keep their input order. An empty key
// sorts newest first.
func Rank(candidates []Candidate, likes map[uint]int64, key string) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{Candidate: c, LikeCount: likes[c.ID]})
	}

	var less func(a, b Ranked) bool
	switch key {
	case "", domain.SortNewest:
		less = func(a, b Ranked) bool { return a.CreatedAt.After(b.CreatedAt) }
	case domain.SortOldest:
		less = func(a, b Ranked) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case domain.SortLikesDesc:
		less = func(a, b Ranked) bool { return a.LikeCount > b.LikeCount }
	case domain.SortLikesAsc:
		less = func(a, b Ranked) bool { return a.LikeCount < b.LikeCount }
	default:
		return nil, domain.ErrInvalidSortKey
	}

	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	return ranked, nil
}
