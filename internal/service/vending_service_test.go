package service

import (
	"math"
	"testing"

	"quickie-be/internal/entity"

	"github.com/google/uuid"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{name: "same point", lat1: 48.85, lon1: 2.35, lat2: 48.85, lon2: 2.35, want: 0, tolerance: 0.001},
		{name: "paris to london", lat1: 48.8566, lon1: 2.3522, lat2: 51.5074, lon2: -0.1278, want: 343.5, tolerance: 2},
		{name: "one degree of latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, want: 111.2, tolerance: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("haversineKm() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lon, radius := 48.8566, 2.3522, 10.0
	box := boundingBox(lat, lon, radius)

	// Points exactly radius away along each axis must fall inside the box.
	north := lat + radius/111.0
	if north > box.MaxLat {
		t.Errorf("northern edge %v outside box max lat %v", north, box.MaxLat)
	}
	if box.MinLat >= lat || box.MaxLat <= lat {
		t.Errorf("box does not contain center latitude")
	}
	if box.MinLon >= lon || box.MaxLon <= lon {
		t.Errorf("box does not contain center longitude")
	}
	// Longitude span must be wider than latitude span away from the equator.
	if (box.MaxLon - box.MinLon) <= (box.MaxLat - box.MinLat) {
		t.Errorf("longitude span should exceed latitude span at lat %v", lat)
	}
}

func TestRestockedEntries(t *testing.T) {
	perfumeA := uuid.New()
	perfumeB := uuid.New()
	perfumeC := uuid.New()

	before := []entity.StockEntry{
		{PerfumeId: perfumeA, Quantity: 0},
		{PerfumeId: perfumeB, Quantity: 3},
	}
	after := []entity.StockEntry{
		{PerfumeId: perfumeA, Quantity: 5}, // zero to five: restocked
		{PerfumeId: perfumeB, Quantity: 7}, // already in stock
		{PerfumeId: perfumeC, Quantity: 2}, // new entry: restocked
	}

	got := restockedEntries(before, after)
	if len(got) != 2 {
		t.Fatalf("restockedEntries() returned %d entries, want 2", len(got))
	}
	if got[0].PerfumeId != perfumeA || got[0].Quantity != 5 {
		t.Errorf("first restocked entry = %+v", got[0])
	}
	if got[1].PerfumeId != perfumeC || got[1].Quantity != 2 {
		t.Errorf("second restocked entry = %+v", got[1])
	}
}

func TestRestockedEntriesNoChange(t *testing.T) {
	perfumeA := uuid.New()
	stock := []entity.StockEntry{{PerfumeId: perfumeA, Quantity: 4}}

	if got := restockedEntries(stock, stock); len(got) != 0 {
		t.Errorf("restockedEntries() = %v, want empty", got)
	}

	// Dropping to zero is not a restock.
	after := []entity.StockEntry{{PerfumeId: perfumeA, Quantity: 0}}
	if got := restockedEntries(stock, after); len(got) != 0 {
		t.Errorf("restockedEntries() on depletion = %v, want empty", got)
	}
}
