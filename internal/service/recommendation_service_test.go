package service

import (
	"testing"

	"quickie-be/internal/entity"

	"github.com/google/uuid"
)

func TestBuildInteractionsMergesPerPerfume(t *testing.T) {
	perfumeA := uuid.New()
	perfumeB := uuid.New()
	perfumeC := uuid.New()

	reviews := []*entity.Review{
		{PerfumeId: perfumeA, Rating: 5},
	}
	collection := []*entity.CollectionItem{
		{PerfumeId: perfumeA},
		{PerfumeId: perfumeB},
	}
	wishlist := []*entity.WishlistItem{
		{PerfumeId: perfumeC},
	}

	got := buildInteractions(reviews, collection, wishlist)
	if len(got) != 3 {
		t.Fatalf("buildInteractions() returned %d interactions, want 3", len(got))
	}

	byId := make(map[string]int)
	for i, in := range got {
		byId[in.ItemID] = i
	}

	a := got[byId[perfumeA.String()]]
	if a.Rating == nil || *a.Rating != 5 {
		t.Errorf("perfume A rating = %v, want 5", a.Rating)
	}
	if !a.InCollection {
		t.Errorf("perfume A should be in collection")
	}

	b := got[byId[perfumeB.String()]]
	if b.Rating != nil {
		t.Errorf("perfume B rating = %v, want nil", b.Rating)
	}
	if !b.InCollection || b.Wishlisted {
		t.Errorf("perfume B flags = %+v", b)
	}

	c := got[byId[perfumeC.String()]]
	if !c.Wishlisted || c.InCollection || c.Rating != nil {
		t.Errorf("perfume C flags = %+v", c)
	}
}

func TestBuildInteractionsEmpty(t *testing.T) {
	if got := buildInteractions(nil, nil, nil); len(got) != 0 {
		t.Errorf("buildInteractions() = %v, want empty", got)
	}
}

func TestToCatalogItem(t *testing.T) {
	perfume := &entity.Perfume{
		Id:    uuid.New(),
		Brand: "Maison Test",
		Tags:  []string{"woody", "fresh"},
		NoteGroups: []entity.PerfumeNoteGroup{
			{Label: "top", Notes: []entity.PerfumeNote{{Name: "bergamot", Weight: 60}}},
		},
		AvgRating:   4.2,
		RatingCount: 3,
	}

	item := toCatalogItem(perfume)
	if item.ID != perfume.Id.String() {
		t.Errorf("ID = %s, want %s", item.ID, perfume.Id)
	}
	if item.Brand != "Maison Test" {
		t.Errorf("Brand = %s", item.Brand)
	}
	if len(item.Notes) != 1 || len(item.Notes[0].Notes) != 1 {
		t.Fatalf("Notes = %+v", item.Notes)
	}
	if item.Notes[0].Notes[0].Weight != 60 {
		t.Errorf("note weight = %v, want 60", item.Notes[0].Notes[0].Weight)
	}
	if item.AvgRating == nil || *item.AvgRating != 4.2 {
		t.Errorf("AvgRating = %v, want 4.2", item.AvgRating)
	}
}

func TestToCatalogItemUnrated(t *testing.T) {
	perfume := &entity.Perfume{Id: uuid.New(), RatingCount: 0, AvgRating: 0}
	if item := toCatalogItem(perfume); item.AvgRating != nil {
		t.Errorf("AvgRating = %v, want nil for unrated perfume", item.AvgRating)
	}
}
