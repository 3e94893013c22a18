// Package scoring holds the preference-scoring core used by the
// recommendation and insights views. Everything in here is pure: plain
// data in, plain data out, no storage or framework dependencies, so the
// same logic can back every call site instead of being re-derived per view.
package scoring

// Note is a weighted scent descriptor on a catalog item.
// Weight is the note's prominence within the item as a percentage (0-100).
type Note struct {
	Name   string
	Weight float64
}

// NoteGroup groups notes by pyramid layer (top/middle/base).
// The grouping is presentational; scoring flattens it.
type NoteGroup struct {
	Label string
	Notes []Note
}

// CatalogItem is the scoring view of one perfume.
type CatalogItem struct {
	ID    string
	Brand string
	Tags  []string
	Notes []NoteGroup

	// AvgRating is the item's catalog-wide average rating, when known.
	// Only consulted by Aggregate with RatingSourceCatalog.
	AvgRating *float64
}

// Interaction is one user's relationship to one catalog item.
// Rating is nil when the user has not rated the item; possession flags
// are independent of rating.
type Interaction struct {
	ItemID       string
	Rating       *float64
	InCollection bool
	Wishlisted   bool
}

// Bucket accumulates rating mass for one attribute tag or note name.
// A bucket exists only if at least one rated interaction touched its key,
// so Count >= 1 wherever a bucket is present and Mean never divides by zero.
type Bucket struct {
	Total float64
	Count int
}

// Mean returns the bucket's average contribution per occurrence.
func (b Bucket) Mean() float64 {
	return b.Total / float64(b.Count)
}

// Profile is the derived per-user preference profile. It is computed
// fresh per request and never persisted.
type Profile struct {
	Tags  map[string]Bucket
	Notes map[string]Bucket
}

// IsEmpty reports whether the profile carries no rated signal at all,
// which triggers the cold-start path in Rank.
func (p Profile) IsEmpty() bool {
	return len(p.Tags) == 0 && len(p.Notes) == 0
}
