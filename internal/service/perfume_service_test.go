package service

import (
	"testing"

	"quickie-be/internal/repository/specification"
)

func TestListSortSpec(t *testing.T) {
	tests := []struct {
		sort     string
		wantSpec specification.OrderBy
	}{
		{sort: "price_asc", wantSpec: specification.OrderBy{Field: "price"}},
		{sort: "price_desc", wantSpec: specification.OrderBy{Field: "price", Desc: true}},
		{sort: "rating", wantSpec: specification.OrderBy{Field: "avg_rating", Desc: true}},
		{sort: "", wantSpec: specification.OrderBy{Field: "created_at", Desc: true}},
		{sort: "bogus", wantSpec: specification.OrderBy{Field: "created_at", Desc: true}},
	}

	for _, tt := range tests {
		got, ok := listSortSpec(tt.sort).(specification.OrderBy)
		if !ok {
			t.Fatalf("listSortSpec(%q) is not an OrderBy", tt.sort)
		}
		if got != tt.wantSpec {
			t.Errorf("listSortSpec(%q) = %+v, want %+v", tt.sort, got, tt.wantSpec)
		}
	}
}
