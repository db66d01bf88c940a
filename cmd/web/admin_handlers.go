package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cacaoloom.org/cacao-web/internal/admin"
	"cacaoloom.org/cacao-web/internal/catalog"
	"cacaoloom.org/cacao-web/internal/middleware"
)

// AdminUnlockFrag renders the passphrase prompt overlay.
func AdminUnlockFrag(w http.ResponseWriter, r *http.Request) {
	renderFrag(w, r, "frag_admin_unlock", http.StatusOK, AdminUnlockView{CSRF: csrfToken(r)})
}

// AdminUnlockHandler runs the gate: an exact passphrase match swaps in
// the unlocked panel, anything else re-renders the prompt with a notice
// and the gate stays disabled.
func AdminUnlockHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	gate := admin.NewGate(passphrase)
	if !gate.Unlock(r.PostFormValue("passphrase")) {
		renderFrag(w, r, "frag_admin_unlock", http.StatusOK, AdminUnlockView{
			CSRF:  csrfToken(r),
			Error: "That passphrase is not right.",
		})
		return
	}
	session := middleware.GetSession(r)
	token := tokenMinter.Mint(session.ID)
	logger.Info("admin panel unlocked", zap.String("session", session.ID))
	renderFrag(w, r, "frag_admin_panel", http.StatusOK, buildAdminPanelView(store.Products(), csrfToken(r), token))
}

// AdminExitHandler closes the panel unconditionally.
func AdminExitHandler(w http.ResponseWriter, r *http.Request) {
	renderFrag(w, r, "frag_admin_closed", http.StatusOK, nil)
}

// AdminAddHandler creates a product from the add-form. A blank name
// aborts with a visible notice and no mutation; price and category
// follow the coercion rules of the catalog package.
func AdminAddHandler(w http.ResponseWriter, r *http.Request) {
	if !adminTokenOK(r) {
		http.Error(w, "admin panel locked", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	candidate := catalog.Candidate{
		Name:     r.PostFormValue("name"),
		Desc:     r.PostFormValue("desc"),
		Price:    r.PostFormValue("price"),
		Category: r.PostFormValue("category"),
		Color:    r.PostFormValue("color"),
	}
	view := buildAdminPanelView(store.Products(), csrfToken(r), r.PostFormValue("admin_token"))
	p, err := store.Add(candidate)
	if err != nil {
		if !errors.Is(err, catalog.ErrEmptyName) {
			http.Error(w, "add failed", http.StatusInternalServerError)
			return
		}
		view.Form = AdminFormView{
			Name:     candidate.Name,
			Desc:     candidate.Desc,
			Price:    candidate.Price,
			Category: candidate.Category,
			Color:    candidate.Color,
			Error:    "A product needs a name.",
		}
		renderFrag(w, r, "frag_admin_panel", http.StatusOK, view)
		return
	}
	view = buildAdminPanelView(store.Products(), csrfToken(r), r.PostFormValue("admin_token"))
	view.Notice = p.Name + " added to the counter."
	view.NoticeTone = "success"
	w.Header().Set("HX-Trigger", "catalog:changed")
	renderFrag(w, r, "frag_admin_panel", http.StatusOK, view)
}

// AdminRemoveHandler deletes a product. The confirmation prompt happens
// client-side before the request; an unknown id is a quiet no-op.
func AdminRemoveHandler(w http.ResponseWriter, r *http.Request) {
	if !adminTokenOK(r) {
		http.Error(w, "admin panel locked", http.StatusForbidden)
		return
	}
	id := chi.URLParam(r, "productID")
	removed := store.Remove(id)
	view := buildAdminPanelView(store.Products(), csrfToken(r), r.PostFormValue("admin_token"))
	if removed {
		view.Notice = "Product removed."
		view.NoticeTone = "muted"
		w.Header().Set("HX-Trigger", "catalog:changed")
	}
	renderFrag(w, r, "frag_admin_panel", http.StatusOK, view)
}

func adminTokenOK(r *http.Request) bool {
	token := r.Header.Get("X-Admin-Token")
	if token == "" {
		token = r.PostFormValue("admin_token")
	}
	return tokenMinter.Verify(token, middleware.GetSession(r).ID)
}
