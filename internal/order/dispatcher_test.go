package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cacaoloom.org/cacao-web/internal/catalog"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeNavigator struct {
	opened []string
}

func (f *fakeNavigator) OpenExternal(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func TestMessageEmbedsNameAndPrice(t *testing.T) {
	msg := Message(catalog.Product{Name: "Midnight Truffle", Price: 9.5})
	if !strings.Contains(msg, "Midnight Truffle") {
		t.Fatalf("expected product name in message, got %q", msg)
	}
	if !strings.Contains(msg, "$9.50") {
		t.Fatalf("expected formatted price in message, got %q", msg)
	}
}

func TestDispatchCopiesAndOpensProfile(t *testing.T) {
	clip := &fakeClipboard{}
	nav := &fakeNavigator{}
	d := NewDispatcher("https://example.test/shop", clip, nav)

	res := d.Dispatch(context.Background(), catalog.Product{Name: "Velvet Praline", Price: 8})
	if !res.Copied {
		t.Fatalf("expected Copied=true on clipboard success")
	}
	if clip.text != res.Message {
		t.Fatalf("expected clipboard to hold the message, got %q", clip.text)
	}
	if len(nav.opened) != 1 || nav.opened[0] != "https://example.test/shop" {
		t.Fatalf("expected one navigation to profile, got %v", nav.opened)
	}
}

func TestDispatchClipboardFailureStillOpensProfile(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("permission denied")}
	nav := &fakeNavigator{}
	d := NewDispatcher("", clip, nav)

	res := d.Dispatch(context.Background(), catalog.Product{Name: "Velvet Praline", Price: 8})
	if res.Copied {
		t.Fatalf("expected Copied=false when clipboard rejects")
	}
	if res.Message == "" {
		t.Fatalf("expected message still built for manual copy")
	}
	if res.ProfileURL != DefaultProfileURL {
		t.Fatalf("expected default profile URL, got %q", res.ProfileURL)
	}
	if len(nav.opened) != 1 {
		t.Fatalf("expected profile still opened on failure, got %v", nav.opened)
	}
}

func TestDispatchSingleAttemptPerCall(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("denied")}
	nav := &fakeNavigator{}
	d := NewDispatcher("", clip, nav)

	d.Dispatch(context.Background(), catalog.Product{Name: "Velvet Praline"})
	d.Dispatch(context.Background(), catalog.Product{Name: "Velvet Praline"})
	if len(nav.opened) != 2 {
		t.Fatalf("expected exactly one navigation per dispatch, got %d", len(nav.opened))
	}
}
