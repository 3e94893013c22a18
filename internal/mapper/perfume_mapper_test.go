package mapper

import (
	"reflect"
	"testing"
	"time"

	"quickie-be/internal/entity"

	"github.com/google/uuid"
)

func TestPerfumeMapperRoundTrip(t *testing.T) {
	m := NewPerfumeMapper()
	now := time.Now().Truncate(time.Second)
	updated := now.Add(time.Hour)

	src := &entity.Perfume{
		Id:          uuid.New(),
		Name:        "Midnight Oud",
		Brand:       "Maison Test",
		Description: "deep resinous oud",
		Price:       120,
		ImageURL:    "https://cdn.example.com/oud.jpg",
		Tags:        []string{"woody", "evening"},
		NoteGroups: []entity.PerfumeNoteGroup{
			{Label: "top", Notes: []entity.PerfumeNote{{Name: "saffron", Weight: 40}}},
			{Label: "base", Notes: []entity.PerfumeNote{{Name: "oud", Weight: 80}, {Name: "amber", Weight: 20}}},
		},
		AvgRating:   4.2,
		RatingCount: 17,
		CreatedAt:   now,
		UpdatedAt:   &updated,
	}

	got := m.ToEntity(m.ToModel(src))
	if !reflect.DeepEqual(got, src) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, src)
	}
}

func TestPerfumeMapperNil(t *testing.T) {
	m := NewPerfumeMapper()
	if m.ToEntity(nil) != nil {
		t.Error("ToEntity(nil) should be nil")
	}
	if m.ToModel(nil) != nil {
		t.Error("ToModel(nil) should be nil")
	}
}

func TestPerfumeMapperEmptyJSONColumns(t *testing.T) {
	m := NewPerfumeMapper()
	e := m.ToEntity(m.ToModel(&entity.Perfume{Name: "bare"}))
	if len(e.Tags) != 0 || len(e.NoteGroups) != 0 {
		t.Errorf("expected empty tags and note groups, got %v / %v", e.Tags, e.NoteGroups)
	}
}
