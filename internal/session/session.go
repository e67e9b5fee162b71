// Package session guards the admin surface. There is a single admin
// identity; holding any live token grants full admin rights. Tokens live in
// process memory only, so a restart invalidates every outstanding session.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Guard issues and validates admin bearer tokens. It is an interface so the
// in-memory set can later be swapped for a persistent or distributed
// implementation without touching call sites.
type Guard interface {
	Issue() (string, error)
	Validate(token string) bool
	// Revoke is idempotent; revoking an unknown token is not an error.
	Revoke(token string)
}

type MemoryGuard struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{tokens: make(map[string]struct{})}
}

func (g *MemoryGuard) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	g.mu.Lock()
	g.tokens[token] = struct{}{}
	g.mu.Unlock()
	return token, nil
}

func (g *MemoryGuard) Validate(token string) bool {
	if token == "" {
		return false
	}
	g.mu.RLock()
	_, ok := g.tokens[token]
	g.mu.RUnlock()
	return ok
}

func (g *MemoryGuard) Revoke(token string) {
	g.mu.Lock()
	delete(g.tokens, token)
	g.mu.Unlock()
}
