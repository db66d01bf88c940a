package admin

import "testing"

func TestGateUnlocksOnlyOnExactMatch(t *testing.T) {
	g := NewGate("cocoa-door")
	if g.State() != Disabled {
		t.Fatalf("expected new gate disabled")
	}
	for _, wrong := range []string{"", "cocoa", "COCOA-DOOR", "cocoa-door ", "cocoa-doors"} {
		if g.Unlock(wrong) {
			t.Fatalf("expected %q to be rejected", wrong)
		}
		if g.State() != Disabled {
			t.Fatalf("expected gate to stay disabled after %q", wrong)
		}
	}
	if !g.Unlock("cocoa-door") {
		t.Fatalf("expected exact passphrase to unlock")
	}
	if g.State() != Enabled {
		t.Fatalf("expected gate enabled after unlock")
	}
}

func TestGateExitAlwaysDisables(t *testing.T) {
	g := NewGate("cocoa-door")
	g.Exit()
	if g.State() != Disabled {
		t.Fatalf("exit on disabled gate should stay disabled")
	}
	g.Unlock("cocoa-door")
	g.Exit()
	if g.State() != Disabled {
		t.Fatalf("expected exit to disable the gate")
	}
}

func TestGateEmptyPassphraseFallsBackToDefault(t *testing.T) {
	g := NewGate("")
	if g.Unlock("anything") {
		t.Fatalf("expected wrong phrase rejected")
	}
	if !g.Unlock(DefaultPassphrase) {
		t.Fatalf("expected default passphrase to unlock")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenMinter([]byte("test-key"))
	token := m.Mint("sess-1")
	if !m.Verify(token, "sess-1") {
		t.Fatalf("expected minted token to verify")
	}
	if m.Verify(token, "sess-2") {
		t.Fatalf("expected token bound to its session")
	}
	if m.Verify(token+"x", "sess-1") {
		t.Fatalf("expected tampered token rejected")
	}
	if m.Verify("", "sess-1") {
		t.Fatalf("expected empty token rejected")
	}
}

func TestTokenRejectsForeignKey(t *testing.T) {
	token := NewTokenMinter([]byte("key-a")).Mint("sess-1")
	if NewTokenMinter([]byte("key-b")).Verify(token, "sess-1") {
		t.Fatalf("expected token signed with another key rejected")
	}
}
