package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBoltPutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	b, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if v, err := b.Get("missing"); err != nil || v != nil {
		t.Fatalf("expected nil for missing key, got %v err=%v", v, err)
	}
	if err := b.Put("k", []byte("v1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := b.Put("k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := b.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, []byte("v2")) {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	b, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := b.Put("k", []byte("payload")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b2, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	got, err := b2.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("expected persisted payload, got %q", got)
	}
}
