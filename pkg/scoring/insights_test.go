package scoring

import "testing"

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, RatingSourcePersonal)

	if got.Notes == nil || len(got.Notes) != 0 {
		t.Errorf("Notes = %v, want empty map", got.Notes)
	}
	if got.Brands == nil || len(got.Brands) != 0 {
		t.Errorf("Brands = %v, want empty map", got.Brands)
	}
	if got.TotalRating != 0 || got.RatedCount != 0 {
		t.Errorf("ratings = {%v %d}, want zeroes", got.TotalRating, got.RatedCount)
	}
}

func TestAggregateCountsPresenceNotWeight(t *testing.T) {
	entries := []RatedItem{
		{Item: CatalogItem{
			ID:    "p1",
			Brand: "Maison Lune",
			Notes: []NoteGroup{
				{Label: "top", Notes: []Note{{Name: "Rose", Weight: 5}}},
				{Label: "base", Notes: []Note{{Name: "Musk", Weight: 95}}},
			},
		}},
		{Item: CatalogItem{
			ID:    "p2",
			Brand: "Maison Lune",
			Notes: []NoteGroup{
				{Label: "top", Notes: []Note{{Name: "Rose", Weight: 100}}},
			},
		}},
	}

	got := Aggregate(entries, RatingSourcePersonal)

	// A trace note and a dominant note count the same: shelf tally, not ranking.
	if got.Notes["Rose"] != 2 || got.Notes["Musk"] != 1 {
		t.Errorf("Notes = %v, want Rose:2 Musk:1", got.Notes)
	}
	if got.Brands["Maison Lune"] != 2 {
		t.Errorf("Brands = %v, want Maison Lune:2", got.Brands)
	}
}

func TestAggregateRatingSources(t *testing.T) {
	entries := []RatedItem{
		{Item: CatalogItem{ID: "p1", Brand: "A", AvgRating: rating(4.5)}, Rating: rating(2)},
		{Item: CatalogItem{ID: "p2", Brand: "B"}, Rating: rating(5)},
		{Item: CatalogItem{ID: "p3", Brand: "C", AvgRating: rating(3)}},
	}

	personal := Aggregate(entries, RatingSourcePersonal)
	if personal.TotalRating != 7 || personal.RatedCount != 2 {
		t.Errorf("personal = {%v %d}, want {7 2}", personal.TotalRating, personal.RatedCount)
	}

	catalog := Aggregate(entries, RatingSourceCatalog)
	if catalog.TotalRating != 7.5 || catalog.RatedCount != 2 {
		t.Errorf("catalog = {%v %d}, want {7.5 2}", catalog.TotalRating, catalog.RatedCount)
	}
}

func TestAggregateNeverDivides(t *testing.T) {
	// The summary exposes a running sum and a count, no mean. With zero
	// rated entries a naive mean would be NaN; the division is the
	// caller's job, guarded by RatedCount == 0.
	got := Aggregate([]RatedItem{
		{Item: CatalogItem{ID: "p1", Brand: "A"}},
	}, RatingSourcePersonal)

	if got.RatedCount != 0 {
		t.Fatalf("RatedCount = %d, want 0", got.RatedCount)
	}
	if got.TotalRating != 0 {
		t.Fatalf("TotalRating = %v, want 0", got.TotalRating)
	}
}
