package scoring

import "testing"

func ids(items []CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestRankColdStart(t *testing.T) {
	catalog := []CatalogItem{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	empty := BuildProfile(catalog, nil)

	got := Rank(catalog, nil, empty, 3)

	want := []string{"a", "b", "c"}
	if g := ids(got); len(g) != 3 || g[0] != want[0] || g[1] != want[1] || g[2] != want[2] {
		t.Errorf("cold start order = %v, want %v", g, want)
	}
}

func TestRankColdStartStillExcludesInteracted(t *testing.T) {
	catalog := []CatalogItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	// Collected but never rated: profile is empty, exclusion still applies.
	interactions := []Interaction{{ItemID: "a", InCollection: true}}
	empty := BuildProfile(catalog, interactions)

	got := ids(Rank(catalog, interactions, empty, 3))

	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("got %v, want [b c]", got)
	}
}

func TestRankExcludesAllInteractedItems(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "p1", Rating: rating(5)},
		{ItemID: "p2", Wishlisted: true},
	}
	profile := BuildProfile(catalog, interactions)

	got := ids(Rank(catalog, interactions, profile, 10))

	if len(got) != 1 || got[0] != "p3" {
		t.Errorf("ranked = %v, want only [p3]: interacted items are hard-excluded", got)
	}
}

func TestRankPrefersMatchingCandidate(t *testing.T) {
	catalog := []CatalogItem{
		{ID: "rated", Tags: []string{"floral"}, Notes: []NoteGroup{
			{Notes: []Note{{Name: "Rose", Weight: 100}}},
		}},
		{ID: "plain", Tags: []string{"aquatic"}},
		{ID: "rosey", Tags: []string{"floral"}, Notes: []NoteGroup{
			{Notes: []Note{{Name: "Rose", Weight: 60}}},
		}},
	}
	interactions := []Interaction{{ItemID: "rated", Rating: rating(5)}}
	profile := BuildProfile(catalog, interactions)

	got := ids(Rank(catalog, interactions, profile, 2))

	if len(got) != 2 || got[0] != "rosey" || got[1] != "plain" {
		t.Errorf("ranked = %v, want [rosey plain]", got)
	}
}

func TestRankScoreUsesCandidateNoteWeight(t *testing.T) {
	profile := Profile{
		Tags:  map[string]Bucket{"floral": {Total: 5, Count: 1}},
		Notes: map[string]Bucket{"Rose": {Total: 4, Count: 1}},
	}
	item := CatalogItem{
		ID:   "x",
		Tags: []string{"floral", "unknown"},
		Notes: []NoteGroup{
			{Notes: []Note{{Name: "Rose", Weight: 25}, {Name: "Oud", Weight: 90}}},
		},
	}

	got := Score(item, profile)

	// 5 (floral mean) + 4 * 25/100 (Rose, candidate prominence) = 6.
	if got != 6 {
		t.Errorf("score = %v, want 6", got)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	catalog := []CatalogItem{
		{ID: "first", Tags: []string{"citrus"}},
		{ID: "second", Tags: []string{"citrus"}},
		{ID: "loser", Tags: []string{"nothing"}},
		{ID: "trainer", Tags: []string{"citrus"}},
	}
	interactions := []Interaction{{ItemID: "trainer", Rating: rating(4)}}
	profile := BuildProfile(catalog, interactions)

	got := ids(Rank(catalog, interactions, profile, 3))

	// first and second tie; catalog order decides. loser scores 0 and sinks.
	want := []string{"first", "second", "loser"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranked = %v, want %v", got, want)
		}
	}
}

func TestRankTopNLargerThanCandidates(t *testing.T) {
	catalog := []CatalogItem{{ID: "a"}, {ID: "b"}}

	got := Rank(catalog, nil, Profile{}, 50)

	if len(got) != 2 {
		t.Errorf("len = %d, want all 2 candidates", len(got))
	}
}

func TestRankOutputDoesNotAliasCatalog(t *testing.T) {
	catalog := []CatalogItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := Rank(catalog, nil, Profile{}, 2)
	got[0] = CatalogItem{ID: "mutated"}

	if catalog[0].ID != "a" {
		t.Error("mutating the output must not touch the caller's catalog")
	}
}
