// Package admin gates the in-page catalog editing panel. The gate is a
// two-state machine unlocked by an exact passphrase match. This is a
// placeholder access-control mechanism, not a security boundary: the
// passphrase is compared as a plaintext literal, there is no lockout and
// no rate limiting, and the enabled state never outlives the rendered
// page. Do not mistake it for authentication.
package admin

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPassphrase unlocks the panel unless the deployment overrides it.
const DefaultPassphrase = "cocoa-door"

// State of the gate. Reloading the page always starts Disabled.
type State int

const (
	Disabled State = iota
	Enabled
)

// Gate is the admin state machine.
type Gate struct {
	passphrase string
	state      State
}

// NewGate builds a gate in the Disabled state. An empty passphrase falls
// back to the default constant.
func NewGate(passphrase string) *Gate {
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	return &Gate{passphrase: passphrase}
}

// State reports the current state.
func (g *Gate) State() State { return g.state }

// Unlock transitions Disabled → Enabled only on an exact match. Any other
// submission leaves the gate Disabled and reports false so the caller can
// raise a visible notice.
func (g *Gate) Unlock(submitted string) bool {
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(g.passphrase)) == 1 {
		g.state = Enabled
		return true
	}
	g.state = Disabled
	return false
}

// Exit unconditionally returns the gate to Disabled.
func (g *Gate) Exit() { g.state = Disabled }

// Panel tokens carry the Enabled state inside the rendered page. They are
// HMAC-signed over the session id and an expiry so mutation posts from an
// unlocked panel can be told apart from cold requests. A full page load
// never carries one, which is what makes reloads start Disabled.

const tokenTTL = 2 * time.Hour

// TokenMinter signs and verifies panel tokens with a per-process key.
type TokenMinter struct {
	key []byte
}

// NewTokenMinter wraps the signing key.
func NewTokenMinter(key []byte) *TokenMinter {
	return &TokenMinter{key: key}
}

// Mint issues a token bound to the given session id.
func (m *TokenMinter) Mint(sessionID string) string {
	exp := time.Now().Add(tokenTTL).Unix()
	payload := fmt.Sprintf("%s|%d", sessionID, exp)
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + m.sign(payload)
}

// Verify checks the signature, session binding, and expiry.
func (m *TokenMinter) Verify(token, sessionID string) bool {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	payload := string(raw)
	if !hmac.Equal([]byte(parts[1]), []byte(m.sign(payload))) {
		return false
	}
	fields := strings.SplitN(payload, "|", 2)
	if len(fields) != 2 || fields[0] != sessionID {
		return false
	}
	exp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return false
	}
	return time.Now().Unix() <= exp
}

func (m *TokenMinter) sign(payload string) string {
	mac := hmac.New(sha256.New, m.key)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
