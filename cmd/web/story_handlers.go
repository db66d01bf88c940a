package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"cacaoloom.org/cacao-web/internal/content"
	"cacaoloom.org/cacao-web/internal/handlers"
)

// StoryHandler renders the markdown-backed story page with conditional
// caching, since its content only changes when the file does.
func StoryHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pages.Page("our-story")
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "story unavailable", http.StatusInternalServerError)
		return
	}

	etag := contentETag(string(page.Body))
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Header().Set("ETag", etag)
	if !page.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", page.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	vm := handlers.NewPageData(page.Title+" | "+handlers.Brand, page.Summary, r.URL.Path)
	vm.Story = page
	renderPage(w, r, vm)
}

func contentETag(body string) string {
	sum := sha256.Sum256([]byte(body))
	return `W/"` + hex.EncodeToString(sum[:8]) + `"`
}
