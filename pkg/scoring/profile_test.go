package scoring

import (
	"reflect"
	"testing"
)

func rating(v float64) *float64 {
	return &v
}

func testCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:    "p1",
			Brand: "Maison Lune",
			Tags:  []string{"Maison Lune", "floral"},
			Notes: []NoteGroup{
				{Label: "top", Notes: []Note{{Name: "Rose", Weight: 50}}},
				{Label: "base", Notes: []Note{{Name: "Musk", Weight: 20}}},
			},
		},
		{
			ID:    "p2",
			Brand: "Atelier Noir",
			Tags:  []string{"Atelier Noir", "woody"},
			Notes: []NoteGroup{
				{Label: "top", Notes: []Note{{Name: "Cedar", Weight: 80}}},
			},
		},
		{
			ID:    "p3",
			Brand: "Maison Lune",
			Tags:  []string{"Maison Lune", "floral"},
			Notes: []NoteGroup{
				{Label: "top", Notes: []Note{{Name: "Rose", Weight: 100}}},
			},
		},
	}
}

func TestBuildProfileNoteWeighting(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "p1", Rating: rating(5)},
	}

	profile := BuildProfile(catalog, interactions)

	rose, ok := profile.Notes["Rose"]
	if !ok {
		t.Fatal("expected a Rose bucket")
	}
	if rose.Total != 2.5 {
		t.Errorf("Rose total = %v, want 2.5 (5 * 50/100)", rose.Total)
	}
	if rose.Count != 1 {
		t.Errorf("Rose count = %d, want 1", rose.Count)
	}

	musk := profile.Notes["Musk"]
	if musk.Total != 1.0 {
		t.Errorf("Musk total = %v, want 1.0 (5 * 20/100)", musk.Total)
	}

	for _, tag := range []string{"Maison Lune", "floral"} {
		b, ok := profile.Tags[tag]
		if !ok {
			t.Fatalf("expected bucket for tag %q", tag)
		}
		if b.Total != 5 || b.Count != 1 {
			t.Errorf("tag %q = %+v, want {5 1}", tag, b)
		}
	}
}

func TestBuildProfileUnratedContributeNothing(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "p1", InCollection: true},
		{ItemID: "p2", Wishlisted: true},
	}

	profile := BuildProfile(catalog, interactions)

	if !profile.IsEmpty() {
		t.Errorf("profile from unrated interactions should be empty, got %+v", profile)
	}
}

func TestBuildProfileStaleReference(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "gone", Rating: rating(5)},
		{ItemID: "p2", Rating: rating(4)},
	}

	profile := BuildProfile(catalog, interactions)

	if len(profile.Tags) != 2 {
		t.Errorf("tag buckets = %d, want 2 (only p2's tags)", len(profile.Tags))
	}
	if _, ok := profile.Notes["Cedar"]; !ok {
		t.Error("expected Cedar bucket from the resolvable interaction")
	}
}

func TestBuildProfileEmptyInteractions(t *testing.T) {
	profile := BuildProfile(testCatalog(), nil)

	if profile.Tags == nil || profile.Notes == nil {
		t.Fatal("empty profile must still carry initialized maps")
	}
	if !profile.IsEmpty() {
		t.Errorf("profile = %+v, want empty", profile)
	}
}

func TestBuildProfileRepeatedInteractionsAccumulate(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "p1", Rating: rating(5)},
		{ItemID: "p1", Rating: rating(3)},
	}

	profile := BuildProfile(catalog, interactions)

	floral := profile.Tags["floral"]
	if floral.Total != 8 || floral.Count != 2 {
		t.Errorf("floral = %+v, want {8 2}: re-ratings count independently", floral)
	}
}

func TestBuildProfileDeterministic(t *testing.T) {
	catalog := testCatalog()
	interactions := []Interaction{
		{ItemID: "p1", Rating: rating(5)},
		{ItemID: "p2", Rating: rating(2)},
		{ItemID: "p3", InCollection: true},
	}

	first := BuildProfile(catalog, interactions)
	second := BuildProfile(catalog, interactions)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different profiles:\n%+v\n%+v", first, second)
	}
}
