package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cacaoloom.org/cacao-web/internal/order"
)

// OrderView backs the order hand-off overlay. CopyText and OpenURL are
// executed by the page script: one clipboard attempt, then the profile
// opens in a new tab. When the clipboard write is denied the script
// leaves the message selected for manual copying instead.
type OrderView struct {
	ProductName string
	Message     string
	ProfileURL  string
	CopyText    string
	OpenURL     string
}

// directiveChannel implements the dispatcher capabilities by recording
// what the fragment should instruct the browser to do.
type directiveChannel struct {
	copyText string
	openURL  string
}

func (d *directiveChannel) WriteText(_ context.Context, text string) error {
	d.copyText = text
	return nil
}

func (d *directiveChannel) OpenExternal(url string) error {
	d.openURL = url
	return nil
}

// OrderModalFrag builds the hand-off message for a product and renders
// the overlay that carries it to the visitor's direct-message client.
func OrderModalFrag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	p, ok := store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	channel := &directiveChannel{}
	dispatcher := order.NewDispatcher(profileURL, channel, channel)
	result := dispatcher.Dispatch(r.Context(), p)

	renderFrag(w, r, "frag_order_modal", http.StatusOK, OrderView{
		ProductName: p.Name,
		Message:     result.Message,
		ProfileURL:  result.ProfileURL,
		CopyText:    channel.copyText,
		OpenURL:     channel.openURL,
	})
}
