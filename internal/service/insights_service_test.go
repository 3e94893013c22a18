package service

import (
	"reflect"
	"testing"

	"quickie-be/internal/dto"
)

func TestTopCounts(t *testing.T) {
	counts := map[string]int{
		"vanilla":  4,
		"bergamot": 4,
		"cedar":    7,
		"musk":     1,
	}

	got := topCounts(counts, 3)
	want := []dto.NameCount{
		{Name: "cedar", Count: 7},
		{Name: "bergamot", Count: 4}, // alphabetical tiebreak
		{Name: "vanilla", Count: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topCounts() = %v, want %v", got, want)
	}
}

func TestTopCountsFewerThanN(t *testing.T) {
	got := topCounts(map[string]int{"amber": 2}, 5)
	if len(got) != 1 || got[0].Name != "amber" {
		t.Errorf("topCounts() = %v", got)
	}
}

func TestTopCountsEmpty(t *testing.T) {
	if got := topCounts(map[string]int{}, 5); len(got) != 0 {
		t.Errorf("topCounts() = %v, want empty", got)
	}
}
