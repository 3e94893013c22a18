package scoring

import "sort"

type scoredItem struct {
	item  CatalogItem
	score float64
}

// Rank scores every catalog item the user has not interacted with and
// returns the topN best matches, best first.
//
// Exclusion is hard: any item referenced by an interaction (rated or
// merely collected/wishlisted) never appears in the output. With an
// empty profile the ranking degrades to the first topN candidates in
// catalog order, so callers control the cold-start ordering by how they
// order the catalog (typically curation/recency).
//
// Scores are unbounded positive reals and only meaningful as a relative
// ordering within a single invocation. Ties keep their catalog order.
func Rank(catalog []CatalogItem, interactions []Interaction, profile Profile, topN int) []CatalogItem {
	seen := make(map[string]struct{}, len(interactions))
	for _, in := range interactions {
		seen[in.ItemID] = struct{}{}
	}

	candidates := make([]CatalogItem, 0, len(catalog))
	for _, item := range catalog {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		candidates = append(candidates, item)
	}

	if profile.IsEmpty() {
		return clip(candidates, topN)
	}

	scored := make([]scoredItem, len(candidates))
	for i, item := range candidates {
		scored[i] = scoredItem{item: item, score: Score(item, profile)}
	}

	// Stable: equal scores keep the caller's catalog order, which
	// encodes curation priority.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for i, s := range scored {
		candidates[i] = s.item
	}
	return clip(candidates, topN)
}

// Score computes the preference score of a single candidate against a
// profile: the mean rating of every matching tag bucket, plus the mean
// of every matching note bucket down-weighted by the note's prominence
// in this candidate. Items matching nothing score exactly 0.
func Score(item CatalogItem, profile Profile) float64 {
	var total float64

	for _, tag := range item.Tags {
		if b, ok := profile.Tags[tag]; ok {
			total += b.Mean()
		}
	}

	for _, group := range item.Notes {
		for _, note := range group.Notes {
			if b, ok := profile.Notes[note.Name]; ok {
				total += b.Mean() * (note.Weight / 100)
			}
		}
	}

	return total
}

func clip(items []CatalogItem, topN int) []CatalogItem {
	if topN < 0 {
		topN = 0
	}
	if topN > len(items) {
		topN = len(items)
	}
	out := make([]CatalogItem, topN)
	copy(out, items[:topN])
	return out
}
