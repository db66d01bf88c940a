// Package order hands a purchase intent off to the shop's direct-message
// channel. Nothing is processed or persisted here: the dispatcher builds
// a ready-to-paste message, makes one best-effort attempt to place it on
// the visitor's clipboard, and sends them to the shop profile.
package order

import (
	"context"
	"fmt"

	"cacaoloom.org/cacao-web/internal/catalog"
	"cacaoloom.org/cacao-web/internal/format"
)

// DefaultProfileURL is the shop profile opened for every order action.
const DefaultProfileURL = "https://www.instagram.com/cacaoloom.chocolate/"

// Clipboard is the capability to place text on the visitor's clipboard.
// Writes may be denied or unsupported; that is an expected outcome, not
// an application error.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Navigator opens an external URL in a new browsing context.
type Navigator interface {
	OpenExternal(url string) error
}

// Result describes how a single dispatch attempt went. When Copied is
// false the message must be shown for manual copying.
type Result struct {
	Message    string
	ProfileURL string
	Copied     bool
}

// Dispatcher routes order intents to the external channel.
type Dispatcher struct {
	profileURL string
	clipboard  Clipboard
	navigator  Navigator
}

// NewDispatcher wires the dispatcher with its capabilities. An empty
// profile URL falls back to the default.
func NewDispatcher(profileURL string, clipboard Clipboard, navigator Navigator) *Dispatcher {
	if profileURL == "" {
		profileURL = DefaultProfileURL
	}
	return &Dispatcher{profileURL: profileURL, clipboard: clipboard, navigator: navigator}
}

// Message builds the fixed-template order message for a product.
func Message(p catalog.Product) string {
	return fmt.Sprintf("Hi Cacao Loom! I'd like to order: %s (%s). Is it available for pickup or delivery?", p.Name, format.Price(p.Price))
}

// Dispatch makes a single attempt per click: copy the message, open the
// profile. The profile opens on both paths; a clipboard failure only
// downgrades the result to manual copy. No retries, no queuing.
func (d *Dispatcher) Dispatch(ctx context.Context, p catalog.Product) Result {
	msg := Message(p)
	copied := false
	if d.clipboard != nil {
		copied = d.clipboard.WriteText(ctx, msg) == nil
	}
	if d.navigator != nil {
		_ = d.navigator.OpenExternal(d.profileURL)
	}
	return Result{Message: msg, ProfileURL: d.profileURL, Copied: copied}
}
