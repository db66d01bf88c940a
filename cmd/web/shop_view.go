package main

import (
	"net/url"

	"cacaoloom.org/cacao-web/internal/catalog"
	"cacaoloom.org/cacao-web/internal/format"
)

// ShopView aggregates everything the storefront page renders: hero copy,
// category chips, the filtered grid, and the search state.
type ShopView struct {
	Query          string
	ActiveCategory string
	Categories     []CategoryChip
	Hero           HeroView
	Grid           GridView
}

// CategoryChip is one entry of the category selector (and mobile drawer).
type CategoryChip struct {
	Label  string
	Active bool
}

// HeroView carries the static promotional copy above the grid.
type HeroView struct {
	Eyebrow string
	Title   string
	Lead    string
	CTA     string
}

// GridView is the filtered product grid fragment's view model.
type GridView struct {
	Query          string
	ActiveCategory string
	Cards          []ProductCard
	Empty          bool
	PushURL        string
}

// ProductCard is a single grid tile.
type ProductCard struct {
	ID         string
	Name       string
	Desc       string
	Category   string
	PriceLabel string
	ImageURL   string
	Anchor     string
}

// ProductDetailView backs the detail overlay.
type ProductDetailView struct {
	Card ProductCard
}

// buildShopView assembles the storefront page view model.
func buildShopView(items []catalog.Product, category, query string) ShopView {
	view := ShopView{
		Query:          query,
		ActiveCategory: normalizeCategory(items, category),
		Hero: HeroView{
			Eyebrow: "Small-batch chocolate",
			Title:   "Bean to bonbon, made down the street",
			Lead:    "Every piece is tempered by hand in our atelier kitchen. Order through a direct message and pick up the same week.",
			CTA:     "Browse the counter",
		},
	}
	view.Categories = buildCategoryChips(items, view.ActiveCategory)
	view.Grid = buildGridView(items, view.ActiveCategory, query)
	return view
}

func buildCategoryChips(items []catalog.Product, active string) []CategoryChip {
	names := catalog.Categories(items)
	chips := make([]CategoryChip, 0, len(names))
	for _, name := range names {
		chips = append(chips, CategoryChip{Label: name, Active: name == active})
	}
	return chips
}

func buildGridView(items []catalog.Product, category, query string) GridView {
	category = normalizeCategory(items, category)
	filtered := catalog.Filter(items, category, query)
	cards := make([]ProductCard, 0, len(filtered))
	for _, p := range filtered {
		cards = append(cards, buildProductCard(p))
	}

	push := url.Values{}
	if category != catalog.AllCategories {
		push.Set("category", category)
	}
	if query != "" {
		push.Set("q", query)
	}
	pushURL := "/"
	if encoded := push.Encode(); encoded != "" {
		pushURL += "?" + encoded
	}

	return GridView{
		Query:          query,
		ActiveCategory: category,
		Cards:          cards,
		Empty:          len(cards) == 0,
		PushURL:        pushURL,
	}
}

func buildProductCard(p catalog.Product) ProductCard {
	return ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Desc:       p.Desc,
		Category:   p.Category,
		PriceLabel: format.Price(p.Price),
		ImageURL:   "/products/" + url.PathEscape(p.ID) + "/image.svg",
		Anchor:     format.Slug(p.Name),
	}
}

// normalizeCategory collapses unknown selections to the sentinel so a
// stale chip (category removed by the admin) degrades to "All".
func normalizeCategory(items []catalog.Product, category string) string {
	if category == "" || category == catalog.AllCategories {
		return catalog.AllCategories
	}
	for _, name := range catalog.Categories(items) {
		if name == category {
			return category
		}
	}
	return catalog.AllCategories
}
