package handlers

import (
	"time"

	"cacaoloom.org/cacao-web/internal/nav"
)

// Brand is the storefront display name.
const Brand = "Cacao Loom"

// PageData is the generic view model for pages using the shared layout.
type PageData struct {
	Title       string
	Description string

	Path string
	Nav  []nav.RenderedItem
	Year int

	// Optional per-page view model payloads
	Shop  any
	Story any
}

// NewPageData fills the shared layout fields for the given request path.
func NewPageData(title, description, path string) PageData {
	return PageData{
		Title:       title,
		Description: description,
		Path:        path,
		Nav:         nav.Build(path),
		Year:        time.Now().Year(),
	}
}
