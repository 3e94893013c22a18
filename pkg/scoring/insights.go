package scoring

// RatingSource selects which rating feeds the insights sum. The legacy
// call sites disagreed on whether "average rating" meant the user's own
// rating or the item's catalog average; the flag makes the choice
// explicit. RatingSourcePersonal is the canonical one: insights are
// framed as "your collection".
type RatingSource int

const (
	RatingSourcePersonal RatingSource = iota
	RatingSourceCatalog
)

// RatedItem is an already-resolved interaction: the join between
// interaction and catalog happened upstream, so Aggregate does no lookup.
// Rating is the user's personal rating, nil when unrated.
type RatedItem struct {
	Item   CatalogItem
	Rating *float64
}

// Summary is the display-only aggregation of a user's collection.
// TotalRating is a running sum; consumers divide by RatedCount for a
// mean and must special-case RatedCount == 0 themselves. Keeping the
// division out of here means it can never divide by zero.
type Summary struct {
	Notes       map[string]int
	Brands      map[string]int
	TotalRating float64
	RatedCount  int
}

// Aggregate tallies note and brand frequency across the given items and
// accumulates the selected rating. Note counts are plain presence counts,
// not prominence-weighted: this is a shelf tally, not a ranking signal.
func Aggregate(entries []RatedItem, source RatingSource) Summary {
	summary := Summary{
		Notes:  make(map[string]int),
		Brands: make(map[string]int),
	}

	for _, entry := range entries {
		for _, group := range entry.Item.Notes {
			for _, note := range group.Notes {
				summary.Notes[note.Name]++
			}
		}

		if entry.Item.Brand != "" {
			summary.Brands[entry.Item.Brand]++
		}

		var rating *float64
		switch source {
		case RatingSourceCatalog:
			rating = entry.Item.AvgRating
		default:
			rating = entry.Rating
		}
		if rating != nil {
			summary.TotalRating += *rating
			summary.RatedCount++
		}
	}

	return summary
}
