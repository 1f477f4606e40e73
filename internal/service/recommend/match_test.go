package recommend_test

import (
	"testing"

	"github.com/traction-team/korail-mate/backend/internal/data"
	model "github.com/traction-team/korail-mate/backend/internal/model/recommend"
	"github.com/traction-team/korail-mate/backend/internal/service/recommend"
)

func matchQuery() model.Input {
	return model.Input{
		TravelType: model.TravelPackage,
		Region1:    "부산",
		Period:     model.PeriodOneNight,
		Purposes:   []string{"여유롭게 힐링"},
		Intensity:  "여유",
		People:     "단둘이",
	}
}

func TestMatchRegionMismatchStillIncluded(t *testing.T) {
	catalog := []model.PackageItem{
		{ID: "busan", Region: "부산", Period: model.PeriodOneNight, Purposes: []string{"여유롭게 힐링"}},
		{ID: "seoul", Region: "서울", Period: model.PeriodOneNight, Purposes: []string{"여유롭게 힐링"}},
	}

	got := recommend.Match(matchQuery(), catalog)
	if len(got) != 2 {
		t.Fatalf("expected both packages (scores 6 and 3), got %d", len(got))
	}
	if got[0].ID != "busan" || got[1].ID != "seoul" {
		t.Fatalf("order = %s, %s; want busan, seoul", got[0].ID, got[1].ID)
	}
}

func TestMatchExcludesZeroScores(t *testing.T) {
	catalog := []model.PackageItem{
		{ID: "nohit", Region: "광주", Period: model.PeriodFourPlus, Purposes: []string{"체험·액티비티"}},
		{ID: "hit", Region: "부산", Period: model.PeriodDayTrip, Purposes: nil},
	}

	got := recommend.Match(matchQuery(), catalog)
	if len(got) != 1 || got[0].ID != "hit" {
		t.Fatalf("expected only the scoring package, got %+v", got)
	}
}

func TestMatchScoresMonotone(t *testing.T) {
	q := matchQuery()
	got := recommend.Match(q, data.Packages())
	for i := 1; i < len(got); i++ {
		if recommend.Score(q, got[i-1]) < recommend.Score(q, got[i]) {
			t.Fatalf("scores not monotone at %d: %d < %d",
				i, recommend.Score(q, got[i-1]), recommend.Score(q, got[i]))
		}
	}
	for _, p := range got {
		if recommend.Score(q, p) == 0 {
			t.Fatalf("zero-score package %s leaked into results", p.ID)
		}
	}
}

func TestMatchStableAmongTies(t *testing.T) {
	catalog := []model.PackageItem{
		{ID: "a", Region: "부산", Period: model.PeriodDayTrip},
		{ID: "b", Region: "부산", Period: model.PeriodDayTrip},
		{ID: "c", Region: "부산", Period: model.PeriodDayTrip},
	}
	got := recommend.Match(matchQuery(), catalog)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("tie order not catalog order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRefinePurposeFilterAndPriceSort(t *testing.T) {
	items := []model.PackageItem{
		{ID: "x", Price: 300, Purposes: []string{"여유롭게 힐링"}},
		{ID: "y", Price: 100, Purposes: []string{"SNS 핫플"}},
		{ID: "z", Price: 200, Purposes: []string{"여유롭게 힐링", "SNS 핫플"}},
	}

	filtered := recommend.Refine(items, "여유롭게 힐링", recommend.SortRelevance)
	if len(filtered) != 2 || filtered[0].ID != "x" || filtered[1].ID != "z" {
		t.Fatalf("purpose filter wrong: %+v", filtered)
	}

	cheapFirst := recommend.Refine(items, recommend.PurposeAll, recommend.SortPriceLow)
	if cheapFirst[0].ID != "y" || cheapFirst[1].ID != "z" || cheapFirst[2].ID != "x" {
		t.Fatalf("price sort wrong: %+v", cheapFirst)
	}

	// Refine must not mutate the matched set.
	if items[0].ID != "x" {
		t.Fatal("input slice mutated")
	}
}

func TestPurposeOptions(t *testing.T) {
	items := []model.PackageItem{
		{Purposes: []string{"여유롭게 힐링", "SNS 핫플"}},
		{Purposes: []string{"SNS 핫플", "자연과 함께"}},
	}
	got := recommend.PurposeOptions(items)
	want := []string{"ALL", "여유롭게 힐링", "SNS 핫플", "자연과 함께"}
	if len(got) != len(want) {
		t.Fatalf("options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("options[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
