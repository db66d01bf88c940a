package catalog

import (
	"reflect"
	"testing"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Midnight Truffle", Desc: "dark ganache", Category: "Dark"},
		{ID: "2", Name: "Velvet Praline", Desc: "almond praline", Category: "Milk"},
		{ID: "3", Name: "Alpine White Dream", Desc: "vanilla bean", Category: "White"},
		{ID: "4", Name: "Sea Salt Caramel Hearts", Desc: "soft caramel", Category: "Filled"},
	}
}

func TestFilterByCategoryExactMatch(t *testing.T) {
	items := sampleCatalog()
	for _, category := range []string{"Dark", "Milk", "White", "Filled"} {
		got := Filter(items, category, "")
		if len(got) == 0 {
			t.Fatalf("expected matches for category %q", category)
		}
		for _, p := range got {
			if p.Category != category {
				t.Fatalf("category %q filter returned product in %q", category, p.Category)
			}
		}
	}
}

func TestFilterAllEmptyQueryReturnsEverythingInOrder(t *testing.T) {
	items := sampleCatalog()
	got := Filter(items, AllCategories, "")
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected catalog unchanged, got %+v", got)
	}
}

func TestFilterSearchMatchesNameDescAndCategory(t *testing.T) {
	items := sampleCatalog()
	cases := []struct {
		query string
		want  []string
	}{
		{"truffle", []string{"1"}},   // name
		{"VANILLA", []string{"3"}},   // desc, case-insensitive
		{"filled", []string{"4"}},    // category
		{"nothing-here", []string{}}, // no match
	}
	for _, tc := range cases {
		got := Filter(items, AllCategories, tc.query)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("query %q: expected ids %v, got %v", tc.query, tc.want, ids)
		}
	}
}

func TestFilterMatchesQueryWhitespaceAsTyped(t *testing.T) {
	items := []Product{
		{ID: "1", Name: "Darkness Bar", Desc: "bitter", Category: "Dark"},
		{ID: "4", Name: "Sea Salt Caramel Hearts", Desc: "soft caramel", Category: "Filled"},
	}
	// padded query is not trimmed; " dark" is absent from "darkness barbitterdark"
	if got := Filter(items, AllCategories, " dark"); len(got) != 0 {
		t.Fatalf("expected no match for padded query, got %+v", got)
	}
	// interior whitespace still matches where the haystack carries it
	got := Filter(items, AllCategories, "salt car")
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("expected Sea Salt Caramel Hearts for 'salt car', got %+v", got)
	}
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	items := sampleCatalog()
	got := Filter(items, "Milk", "truffle")
	if len(got) != 0 {
		t.Fatalf("expected no Milk products matching 'truffle', got %d", len(got))
	}
	got = Filter(items, "Milk", "praline")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only Velvet Praline, got %+v", got)
	}
}

func TestCategoriesFirstSeenOrderWithSentinel(t *testing.T) {
	items := []Product{
		{Category: "Milk"},
		{Category: "Dark"},
		{Category: "Milk"},
		{Category: "Filled"},
	}
	got := Categories(items)
	want := []string{AllCategories, "Milk", "Dark", "Filled"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSeedDarkHoldsOnlyMidnightTruffle(t *testing.T) {
	seed := Seed()
	if len(seed) != 6 {
		t.Fatalf("expected 6 seed products, got %d", len(seed))
	}
	got := Filter(seed, "Dark", "")
	if len(got) != 1 {
		t.Fatalf("expected exactly one Dark product, got %d", len(got))
	}
	if got[0].Name != "Midnight Truffle" {
		t.Fatalf("expected Midnight Truffle, got %q", got[0].Name)
	}
}
