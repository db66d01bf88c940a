package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cacaoloom.org/cacao-web/internal/artwork"
	"cacaoloom.org/cacao-web/internal/handlers"
)

// HomeHandler renders the storefront page: hero, category chips, and the
// filtered product grid. Search and category state arrive as query
// parameters so filtered views stay linkable.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	view := buildShopView(store.Products(), category, q)

	vm := handlers.NewPageData(
		handlers.Brand+" — Small-batch chocolate",
		"Hand-tempered bonbons, bars, and truffles. Order by direct message.",
		r.URL.Path,
	)
	vm.Shop = view
	renderPage(w, r, vm)
}

// ShopGridFrag re-renders the product grid for the current filter state.
// The search input fires this on every keystroke; no debouncing, the
// filter is a cheap pure function.
func ShopGridFrag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	view := buildGridView(store.Products(), category, q)
	w.Header().Set("HX-Push-Url", view.PushURL)
	renderFrag(w, r, "frag_shop_grid", http.StatusOK, view)
}

// ProductModalFrag renders the detail overlay for a selected product.
func ProductModalFrag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	p, ok := store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	renderFrag(w, r, "frag_product_modal", http.StatusOK, ProductDetailView{Card: buildProductCard(p)})
}

// ProductImageHandler serves the generated placeholder tile. Tiles are
// derived from catalog state, so caching is short and private to keep
// admin edits visible.
func ProductImageHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	p, ok := store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "private, max-age=60")
	_, _ = w.Write([]byte(artwork.SVG(p.Name, p.Color)))
}
