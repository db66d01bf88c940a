package main

import (
	"cacaoloom.org/cacao-web/internal/catalog"
	"cacaoloom.org/cacao-web/internal/format"
)

// AdminUnlockView backs the passphrase prompt overlay.
type AdminUnlockView struct {
	CSRF  string
	Error string
}

// AdminPanelView backs the unlocked admin overlay: the add-form plus a
// removable list of every catalog item. The Token field is what keeps
// the panel "enabled" across its own posts; it is never embedded in a
// full page, so reloads always come back locked.
type AdminPanelView struct {
	CSRF       string
	Token      string
	Items      []AdminItem
	Form       AdminFormView
	Notice     string
	NoticeTone string
}

// AdminItem is one row of the removable catalog list.
type AdminItem struct {
	ID         string
	Name       string
	Category   string
	PriceLabel string
}

// AdminFormView preserves add-form input across a failed submission.
type AdminFormView struct {
	Name     string
	Desc     string
	Price    string
	Category string
	Color    string
	Error    string
}

func buildAdminPanelView(items []catalog.Product, csrf, token string) AdminPanelView {
	rows := make([]AdminItem, 0, len(items))
	for _, p := range items {
		rows = append(rows, AdminItem{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			PriceLabel: format.Price(p.Price),
		})
	}
	return AdminPanelView{
		CSRF:  csrf,
		Token: token,
		Items: rows,
		Form:  AdminFormView{Color: "#6b4226"},
	}
}
